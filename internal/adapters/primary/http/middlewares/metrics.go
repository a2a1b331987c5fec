package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/metrics"
)

// Metrics пишет счётчик и латентность по шаблону маршрута, а не по сырому пути
func Metrics(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
