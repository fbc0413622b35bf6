package services

import (
	"log"

	"natal-chart-service/internal/domain"
	"natal-chart-service/internal/ports"
)

// ResolveTimezone determines which zone's clock governed the birth moment.
//
// The covering polygon wins; failing that, the closest nearby candidate.
// When both come up empty the caller-supplied offset (or UTC) takes over and
// the result is marked as a fallback. This stage never fails.
func ResolveTimezone(
	lookup ports.ZoneLookup,
	coord domain.GeoCoordinate,
	fallbackOffsetMinutes *int,
) domain.ResolvedTimezone {
	if zone, ok := lookup.ZoneAt(coord.Lat, coord.Lon); ok {
		log.Printf("stage=timezone zone=%s lat=%v lon=%v", zone, coord.Lat, coord.Lon)
		return domain.ResolvedTimezone{Name: zone}
	}

	if candidates := lookup.NearestZones(coord.Lat, coord.Lon); len(candidates) > 0 {
		log.Printf("stage=timezone zone=%s nearest=true lat=%v lon=%v", candidates[0], coord.Lat, coord.Lon)
		return domain.ResolvedTimezone{Name: candidates[0]}
	}

	offset := 0
	if fallbackOffsetMinutes != nil {
		offset = *fallbackOffsetMinutes
	}

	log.Printf("stage=timezone zone=none fallback_offset_min=%d lat=%v lon=%v", offset, coord.Lat, coord.Lon)
	return domain.ResolvedTimezone{
		Name:          domain.FallbackZoneName,
		OffsetMinutes: offset,
		IsFallback:    true,
	}
}
