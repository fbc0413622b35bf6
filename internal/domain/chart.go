package domain

import "time"

// Body identifies a charted celestial body using the ephemeris numbering.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
)

// TrackedBodies lists the bodies charted for every request, in report order.
var TrackedBodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}

func (b Body) String() string {
	switch b {
	case Sun:
		return "sun"
	case Moon:
		return "moon"
	case Mercury:
		return "mercury"
	case Venus:
		return "venus"
	case Mars:
		return "mars"
	case Jupiter:
		return "jupiter"
	case Saturn:
		return "saturn"
	default:
		return "unknown"
	}
}

// BodyPlacement is one body's computed position on the chart.
type BodyPlacement struct {
	Longitude float64
	Position  ZodiacPosition
	House     int
}

// HouseCusp is one house boundary with its zodiacal location.
type HouseCusp struct {
	House     int
	Longitude float64
	Sign      string
}

// AscendantPosition is the rising degree, the anchor for whole-sign house
// numbering.
type AscendantPosition struct {
	Longitude float64
	Position  ZodiacPosition
}

// NatalChart is the single output aggregate. It is assembled once per
// request, fully populated or not at all, and never mutated afterwards.
type NatalChart struct {
	Ascendant AscendantPosition
	Houses    [12]HouseCusp
	Bodies    map[Body]BodyPlacement
	System    HouseSystem
	Timezone  ResolvedTimezone
	Local     time.Time
	UTC       time.Time
	JulianDay float64
}
