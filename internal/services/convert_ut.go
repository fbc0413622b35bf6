package services

import (
	"fmt"
	"log"
	"time"

	"natal-chart-service/internal/domain"
)

// Localization pins a civil birth moment to a real instant: the local wall
// clock, its UTC equivalent, the effective offset and the Julian Day (UT).
type Localization struct {
	Local         time.Time
	UTC           time.Time
	OffsetMinutes int
	JulianDay     float64
}

// ConvertToUT localizes a naive civil moment under the resolved timezone.
//
// Named zones are evaluated against their full historical rule table at the
// birth instant, with two fixed transition policies:
//   - a civil time repeated by a fall-back transition resolves to the
//     standard-time offset, never daylight;
//   - a civil time skipped by a spring-forward transition is shifted one
//     hour later and resolved under the daylight offset.
//
// Fallback zones convert by fixed-offset arithmetic with no rule table.
func ConvertToUT(m domain.CivilMoment, tz domain.ResolvedTimezone) (Localization, error) {
	if tz.IsFallback {
		return localizeFixed(m, tz.OffsetMinutes), nil
	}
	return localizeNamed(m, tz.Name)
}

func localizeFixed(m domain.CivilMoment, offsetMinutes int) Localization {
	zone := time.FixedZone(domain.FallbackZoneName, offsetMinutes*60)
	local := time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, m.Second, 0, zone)
	utc := local.UTC()

	return Localization{
		Local:         local,
		UTC:           utc,
		OffsetMinutes: offsetMinutes,
		JulianDay:     JulianDayOf(utc),
	}
}

func localizeNamed(m domain.CivilMoment, zoneName string) (Localization, error) {
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return Localization{}, fmt.Errorf("load zone %q: %w", zoneName, domain.ErrTimezoneResolution)
	}

	local, ok := localizeCivil(m, loc)
	if !ok {
		// Spring-forward gap: the requested civil time never happened.
		shifted := m.Shift(1)
		local, ok = localizeCivil(shifted, loc)
		if !ok {
			return Localization{}, fmt.Errorf(
				"zone %q: civil time %04d-%02d-%02d %02d:%02d:%02d has no instant even after gap shift: %w",
				zoneName, m.Year, m.Month, m.Day, m.Hour, m.Minute, m.Second,
				domain.ErrTimezoneResolution,
			)
		}
		log.Printf("stage=convert zone=%s gap_shift_hours=1", zoneName)
	}

	utc := local.UTC()
	_, offsetSec := local.Zone()

	return Localization{
		Local:         local,
		UTC:           utc,
		OffsetMinutes: offsetSec / 60,
		JulianDay:     JulianDayOf(utc),
	}, nil
}

// localizeCivil maps a naive civil moment onto the zone's timeline. A moment
// repeated by a fall-back transition has two valid instants; the one with
// the smaller UTC offset, standard time, wins. ok is false when the moment
// falls inside a transition gap and maps to no instant at all.
func localizeCivil(m domain.CivilMoment, loc *time.Location) (time.Time, bool) {
	naive := time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, m.Second, 0, time.UTC)

	// Offsets in force around the moment are the only plausible mappings.
	seen := make(map[int]bool, 3)
	var matches []time.Time

	for _, probe := range []time.Duration{-24 * time.Hour, 0, 24 * time.Hour} {
		_, offsetSec := naive.Add(probe).In(loc).Zone()
		if seen[offsetSec] {
			continue
		}
		seen[offsetSec] = true

		candidate := naive.Add(-time.Duration(offsetSec) * time.Second).In(loc)
		if sameCivil(candidate, m) {
			matches = append(matches, candidate)
		}
	}

	switch len(matches) {
	case 0:
		return time.Time{}, false
	case 1:
		return matches[0], true
	default:
		best := matches[0]
		_, bestOffset := best.Zone()
		for _, c := range matches[1:] {
			if _, offset := c.Zone(); offset < bestOffset {
				best, bestOffset = c, offset
			}
		}
		return best, true
	}
}

func sameCivil(t time.Time, m domain.CivilMoment) bool {
	return t.Year() == m.Year &&
		int(t.Month()) == m.Month &&
		t.Day() == m.Day &&
		t.Hour() == m.Hour &&
		t.Minute() == m.Minute &&
		t.Second() == m.Second
}
