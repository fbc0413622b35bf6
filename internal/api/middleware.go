package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"natal-chart-service/internal/platform/obs"
)

// RequestID gives every request a stable id for log correlation. An inbound
// X-Request-Id is honored, otherwise one is generated; the id is echoed back,
// placed in the request context for stage logs, and written to the access
// log line with status and duration.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader("X-Request-Id"))
		if rid == "" {
			rid = newRequestID()
		}

		ctx := context.WithValue(c.Request.Context(), obs.RequestIDKey, rid)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-Id", rid)

		start := time.Now()
		c.Next()

		log.Printf(
			"req_id=%s method=%s path=%s status=%d dur=%dms",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start).Milliseconds(),
		)
	}
}

func newRequestID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// Timestamp stand-in when the entropy source is unavailable.
		return time.Now().UTC().Format("20060102T150405.000000000")
	}
	return hex.EncodeToString(b)
}
