package services

import (
	"math"
	"time"
)

// JulianDay converts a Gregorian calendar date plus fractional UT hours into
// a continuous Julian Day number. Hours outside [0, 24) are legal and carry
// into the day fraction, which the fixed-offset fallback path relies on.
func JulianDay(year, month, day int, utHours float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + b - 1524.5

	return jd + utHours/24
}

// JulianDayOf is JulianDay applied to a wall-clock instant, which is first
// viewed in UTC. Sub-second precision is dropped.
func JulianDayOf(t time.Time) float64 {
	utc := t.UTC()
	hours := float64(utc.Hour()) + float64(utc.Minute())/60 + float64(utc.Second())/3600
	return JulianDay(utc.Year(), int(utc.Month()), utc.Day(), hours)
}

// CalendarFromJulianDay inverts JulianDay for the Gregorian calendar. The
// returned utHours lies in [0, 24).
func CalendarFromJulianDay(jd float64) (year, month, day int, utHours float64) {
	z, f := math.Modf(jd + 0.5)

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))

	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}

	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}

	utHours = f * 24
	return year, month, day, utHours
}
