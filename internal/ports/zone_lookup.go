package ports

// Port: a boundary for mapping coordinates to IANA timezone identifiers.
// Implementations are read-only after construction and safe for concurrent
// use; lookups must not perform network calls.
type ZoneLookup interface {
	// Return the zone whose polygon covers the coordinate, or ok=false when
	// none does.
	ZoneAt(lat, lon float64) (zone string, ok bool)
	// Return best-effort candidates near a coordinate that no polygon
	// covers, such as coastal waters. May be empty.
	NearestZones(lat, lon float64) []string
}
