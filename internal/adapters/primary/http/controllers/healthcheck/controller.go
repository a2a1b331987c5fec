package healthcheckController

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sony/gobreaker"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/cache"
)

// BreakerState состояние circuit breaker провайдера эфемерид
type BreakerState interface {
	State() gobreaker.State
}

type HealthCheckController struct {
	cache   cache.Cache
	breaker BreakerState
	log     *slog.Logger
}

// New cache и breaker могут быть nil, тогда соответствующая проверка пропускается
func New(c cache.Cache, breaker BreakerState, log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		cache:   c,
		breaker: breaker,
		log:     log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health базовая проверка (всегда возвращает 200)
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "jyotish",
	})
}

// ready проверяет кэш и что breaker эфемерид не разомкнут
func (c *HealthCheckController) ready(ctx *gin.Context) {
	if c.cache != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := c.cache.Ping(pingCtx); err != nil {
			c.log.Error("Cache not ready", "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  "cache unavailable",
			})
			return
		}
	}

	if c.breaker != nil && c.breaker.State() == gobreaker.StateOpen {
		c.log.Warn("Ephemeris breaker is open")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "ephemeris unavailable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}
