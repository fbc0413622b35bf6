package domain

import "errors"

// Sentinel errors spanning the chart pipeline. Handlers map these to HTTP
// statuses with errors.Is, so every stage wraps rather than replaces them.
var (
	// ErrMalformedInput marks client input that failed structural or range
	// validation (dates, clock times, coordinates, house system names).
	ErrMalformedInput = errors.New("malformed input")

	// ErrTimezoneResolution marks a named zone that could not be localized,
	// either because the rule table is missing or because the civil time
	// cannot be placed on the zone's timeline.
	ErrTimezoneResolution = errors.New("timezone resolution failed")

	// ErrCollaboratorUnavailable marks a failed call to an external
	// computation service. The request fails as a whole; no partial chart is
	// ever returned.
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
)
