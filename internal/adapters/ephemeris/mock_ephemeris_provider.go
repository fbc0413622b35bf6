package ephemeris

import (
	"context"
	"fmt"

	"natal-chart-service/internal/domain"
	"natal-chart-service/internal/ports"
)

// MockBody fixes one body's longitude for tests and local development.
type MockBody struct {
	Body      domain.Body
	Longitude float64
}

// MockEphemerisProvider serves canned longitudes and houses without network
// access. Err, when set, is returned from every call.
type MockEphemerisProvider struct {
	m      map[domain.Body]float64
	houses ports.HouseResult
	Err    error
}

func NewMockEphemerisProvider(bodies []MockBody, houses ports.HouseResult) *MockEphemerisProvider {
	m := make(map[domain.Body]float64, len(bodies))
	for _, b := range bodies {
		m[b.Body] = b.Longitude
	}
	return &MockEphemerisProvider{m: m, houses: houses}
}

func (p *MockEphemerisProvider) BodyLongitude(ctx context.Context, julianDay float64, body domain.Body) (float64, error) {
	if p.Err != nil {
		return 0, p.Err
	}

	lon, ok := p.m[body]
	if !ok {
		return 0, fmt.Errorf("missing longitude for body %s", body)
	}

	return lon, nil
}

func (p *MockEphemerisProvider) Houses(ctx context.Context, julianDay float64, coord domain.GeoCoordinate, systemCode byte) (ports.HouseResult, error) {
	if p.Err != nil {
		return ports.HouseResult{}, p.Err
	}

	return p.houses, nil
}
