package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// TraceIDMiddleware tags every request with an id that the response
// envelope echoes back. A well-formed id supplied by the caller is kept
// so the frontend can correlate its own logs with ours; anything else is
// replaced.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(traceHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set("trace_id", id)
		c.Writer.Header().Set(traceHeader, id)
		c.Next()
	}
}
