package domain

import (
	"fmt"
	"strings"
)

// HouseSystem selects the convention used to number the chart's houses.
// Deployments have disagreed about which system was in effect, so it is an
// explicit configuration value and is never inferred.
type HouseSystem int

const (
	WholeSign HouseSystem = iota
	Placidus
)

// Code returns the single-letter ephemeris wire code for the system.
func (h HouseSystem) Code() byte {
	if h == Placidus {
		return 'P'
	}
	return 'W'
}

func (h HouseSystem) String() string {
	switch h {
	case WholeSign:
		return "whole-sign"
	case Placidus:
		return "placidus"
	default:
		return "unknown"
	}
}

// ParseHouseSystem reads a configuration or request value. Unknown names are
// rejected rather than defaulted.
func ParseHouseSystem(s string) (HouseSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "whole-sign", "whole_sign", "w":
		return WholeSign, nil
	case "placidus", "p":
		return Placidus, nil
	default:
		return WholeSign, fmt.Errorf("unknown house system %q: %w", s, ErrMalformedInput)
	}
}
