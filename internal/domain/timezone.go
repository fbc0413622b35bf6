package domain

// FallbackZoneName is the label reported when no IANA zone covers the
// birthplace and a fixed offset governs the conversion instead.
const FallbackZoneName = "Etc/UTC (fallback)"

// ResolvedTimezone records which clock governed the birth moment. For named
// zones OffsetMinutes is filled in during UT conversion from the zone's rule
// table; for fallback zones it is the caller-supplied offset (or zero) and is
// authoritative as-is.
type ResolvedTimezone struct {
	Name          string
	OffsetMinutes int
	IsFallback    bool
}
