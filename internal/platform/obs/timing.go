// Package obs carries the service's observability plumbing: per-operation
// timing logs correlated by request id, and the Prometheus instruments
// exposed on /metrics.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries the request id through context so collaborator calls
// and stage logs can be correlated with the access log line.
const RequestIDKey ctxKey = "req_id"

// RequestIDFrom extracts the request id, or "" when the context has none.
func RequestIDFrom(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time logs the duration and outcome of one operation. Use as
//
//	defer obs.Time(ctx, "ephemeris.Houses")(&err)
//
// with a named error return so the failure is captured on the same line.
func Time(ctx context.Context, op string) func(errp *error) {
	start := time.Now()
	reqID := RequestIDFrom(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, op, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, op, dur.Milliseconds())
	}
}
