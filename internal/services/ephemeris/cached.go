// Package ephemeris кэширующая обёртка над портом эфемерид.
package ephemeris

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/metrics"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/cache"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/service"
)

const cacheName = "ephemeris"

// Cached отвечает из кэша, при промахе идёт к провайдеру и сохраняет ответ.
// Ошибки кэша не ломают расчёт, только логируются
type Cached struct {
	next    service.IEphemeris
	cache   cache.Cache
	ttl     time.Duration
	metrics *metrics.Collector
	log     *slog.Logger
}

func NewCached(next service.IEphemeris, c cache.Cache, ttl time.Duration, m *metrics.Collector, log *slog.Logger) *Cached {
	return &Cached{
		next:    next,
		cache:   c,
		ttl:     ttl,
		metrics: m,
		log:     log,
	}
}

// Key ключ кэша; jd округляется до ~0.1 секунды
func Key(jdUT float64, body domain.Body) string {
	return fmt.Sprintf("ephemeris:%s:%.6f", body, jdUT)
}

func (c *Cached) BodyLongitude(ctx context.Context, jdUT float64, body domain.Body) (domain.EclipticPosition, error) {
	key := Key(jdUT, body)

	raw, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var pos domain.EclipticPosition
		jsonErr := json.Unmarshal([]byte(raw), &pos)
		if jsonErr == nil {
			c.metrics.CacheHit(cacheName)
			return pos, nil
		}
		c.log.Warn("corrupted ephemeris cache entry", "key", key, "error", jsonErr)
	case errors.Is(err, cache.ErrNotFound):
	default:
		c.log.Warn("ephemeris cache get failed", "key", key, "error", err)
	}
	c.metrics.CacheMiss(cacheName)

	pos, err := c.next.BodyLongitude(ctx, jdUT, body)
	if err != nil {
		return domain.EclipticPosition{}, err
	}

	data, err := json.Marshal(pos)
	if err != nil {
		return pos, nil
	}
	if err := c.cache.Set(ctx, key, string(data), c.ttl); err != nil {
		c.log.Warn("ephemeris cache set failed", "key", key, "error", err)
	}
	return pos, nil
}
