package middleware

import (
	"time"

	"recurring_dashboard/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records every request under its route template, so /commitment/:id
// stays one series regardless of the id.
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.Observe(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
