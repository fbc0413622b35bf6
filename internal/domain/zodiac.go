package domain

import "math"

// The twelve signs in ecliptic order, each spanning 30 degrees from 0 Aries.
var SignNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// NormalizeLongitude wraps an ecliptic longitude into [0, 360). Raw
// collaborator output may be negative or exceed a full circle.
func NormalizeLongitude(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// Adding 360 to a tiny negative remainder can round to exactly 360.
	if d >= 360 {
		d -= 360
	}
	return d
}

// SignIndex returns the zero-based sign for a longitude, normalizing first.
func SignIndex(longitude float64) int {
	return int(NormalizeLongitude(longitude) / 30)
}

// ZodiacPosition locates a longitude within its sign.
type ZodiacPosition struct {
	Sign         string
	DegreeInSign float64
}

// PositionOf decomposes an ecliptic longitude into sign and degree within
// the sign. DegreeInSign is taken by subtraction, so signIndex*30 +
// DegreeInSign reproduces the normalized longitude exactly.
func PositionOf(longitude float64) ZodiacPosition {
	l := NormalizeLongitude(longitude)
	idx := int(l / 30)
	return ZodiacPosition{
		Sign:         SignNames[idx],
		DegreeInSign: l - float64(idx)*30,
	}
}

// WholeSignHouse numbers a body's house by counting signs from the
// ascendant's sign. Every body sharing the ascendant's sign is in house 1.
func WholeSignHouse(bodyLongitude, ascendantLongitude float64) int {
	return (SignIndex(bodyLongitude)-SignIndex(ascendantLongitude)+12)%12 + 1
}

// QuadrantHouse places a body within unequal house intervals (Placidus and
// other quadrant systems). House n is the circular arc from cusp n inclusive
// to cusp n+1 exclusive.
func QuadrantHouse(bodyLongitude float64, cusps [12]float64) int {
	lon := NormalizeLongitude(bodyLongitude)
	for i := 0; i < 12; i++ {
		lo := NormalizeLongitude(cusps[i])
		hi := NormalizeLongitude(cusps[(i+1)%12])
		if lo <= hi {
			if lon >= lo && lon < hi {
				return i + 1
			}
		} else if lon >= lo || lon < hi {
			return i + 1
		}
	}
	// Only reachable with a degenerate cusp set that does not partition the
	// circle.
	return 1
}
