package services

import (
	"context"
	"fmt"

	"natal-chart-service/internal/domain"
	"natal-chart-service/internal/ports"
)

// ChartRequest carries one birth event through the pipeline.
type ChartRequest struct {
	Date                  string
	Time                  string
	Coordinate            domain.GeoCoordinate
	FallbackOffsetMinutes *int
	System                domain.HouseSystem
}

// ComputeChart runs the full pipeline for one birth event: parse the civil
// moment, resolve the timezone, convert to UT, fetch houses and body
// longitudes, and map everything onto the zodiac.
//
// A failure at any stage fails the request; the chart is returned complete
// or not at all. The ephemeris is called once for houses and once per
// tracked body, all at the same Julian Day.
func ComputeChart(
	ctx context.Context,
	req ChartRequest,
	eph ports.EphemerisProvider,
	lookup ports.ZoneLookup,
) (*domain.NatalChart, error) {
	if err := req.Coordinate.Validate(); err != nil {
		return nil, fmt.Errorf("compute chart: %w", err)
	}

	moment, err := ParseCivilMoment(req.Date, req.Time)
	if err != nil {
		return nil, fmt.Errorf("compute chart: %w", err)
	}

	tz := ResolveTimezone(lookup, req.Coordinate, req.FallbackOffsetMinutes)

	loc, err := ConvertToUT(moment, tz)
	if err != nil {
		return nil, fmt.Errorf("compute chart: %w", err)
	}

	houses, err := eph.Houses(ctx, loc.JulianDay, req.Coordinate, req.System.Code())
	if err != nil {
		return nil, fmt.Errorf("compute chart: houses: %w: %w", domain.ErrCollaboratorUnavailable, err)
	}

	ascendant := domain.NormalizeLongitude(houses.Ascendant)

	var cusps [12]domain.HouseCusp
	var cuspLongitudes [12]float64
	for i, raw := range houses.Cusps {
		lon := domain.NormalizeLongitude(raw)
		cuspLongitudes[i] = lon
		cusps[i] = domain.HouseCusp{
			House:     i + 1,
			Longitude: lon,
			Sign:      domain.PositionOf(lon).Sign,
		}
	}

	bodies := make(map[domain.Body]domain.BodyPlacement, len(domain.TrackedBodies))
	for _, body := range domain.TrackedBodies {
		raw, err := eph.BodyLongitude(ctx, loc.JulianDay, body)
		if err != nil {
			return nil, fmt.Errorf("compute chart: body %s: %w: %w", body, domain.ErrCollaboratorUnavailable, err)
		}

		lon := domain.NormalizeLongitude(raw)

		var house int
		switch req.System {
		case domain.Placidus:
			house = domain.QuadrantHouse(lon, cuspLongitudes)
		default:
			house = domain.WholeSignHouse(lon, ascendant)
		}

		bodies[body] = domain.BodyPlacement{
			Longitude: lon,
			Position:  domain.PositionOf(lon),
			House:     house,
		}
	}

	return &domain.NatalChart{
		Ascendant: domain.AscendantPosition{
			Longitude: ascendant,
			Position:  domain.PositionOf(ascendant),
		},
		Houses: cusps,
		Bodies: bodies,
		System: req.System,
		Timezone: domain.ResolvedTimezone{
			Name:          tz.Name,
			OffsetMinutes: loc.OffsetMinutes,
			IsFallback:    tz.IsFallback,
		},
		Local:     loc.Local,
		UTC:       loc.UTC,
		JulianDay: loc.JulianDay,
	}, nil
}
