package middleware

import (
	"time"

	"recurring_dashboard/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

func Logging(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logg == nil {
			c.Next()
			return
		}

		ctx := logg.WithFields(c.Request.Context(), map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		logg.Debug(ctx, "request.start")

		c.Next()

		ctx = logg.WithFields(ctx, map[string]any{
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if len(c.Errors) > 0 {
			logg.Warn(ctx, "request.complete", c.Errors.Last())
			return
		}
		logg.Info(ctx, "request.complete")
	}
}
