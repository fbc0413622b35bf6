package ports

import (
	"context"

	"natal-chart-service/internal/domain"
)

// Raw houses computation for one instant and birthplace. Longitudes are
// reported as received; normalization into [0, 360) is the caller's job.
type HouseResult struct {
	Ascendant float64
	Cusps     [12]float64
}

// Contract for the ephemeris computation service. Implementations are
// deterministic for a given input and never retry internally; a failed call
// fails the chart request outright.
type EphemerisProvider interface {
	// Return the ecliptic longitude of one body at a Julian Day (UT).
	BodyLongitude(ctx context.Context, julianDay float64, body domain.Body) (float64, error)
	// Return the ascendant and twelve house cusps for the given instant,
	// birthplace and house system wire code.
	Houses(ctx context.Context, julianDay float64, coord domain.GeoCoordinate, systemCode byte) (HouseResult, error)
}
