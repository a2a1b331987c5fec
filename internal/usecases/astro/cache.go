package astro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/cache"
)

const transitsCacheKey = "transits:current"

// ComputeTransits сидерические позиции на момент at для опорной точки из конфига
func (s *Service) ComputeTransits(ctx context.Context, at time.Time) (*domain.Chart, error) {
	at = at.UTC()
	in := domain.BirthInput{
		Name:           "transits",
		Year:           at.Year(),
		Month:          int(at.Month()),
		Day:            at.Day(),
		Hour:           at.Hour(),
		Minute:         at.Minute(),
		Second:         at.Second(),
		TimezoneOffset: "+00:00",
		Latitude:       s.cfg.ReferenceLatitude,
		Longitude:      s.cfg.ReferenceLongitude,
	}
	return s.ComputeChart(ctx, in)
}

// UpdateCachedTransits пересчитывает транзитную карту и кладёт её в кэш
func (s *Service) UpdateCachedTransits(ctx context.Context, at time.Time) error {
	chart, err := s.ComputeTransits(ctx, at)
	if err != nil {
		return fmt.Errorf("failed to compute transits: %w", err)
	}

	if s.Cache == nil {
		s.Log.Warn("cache is not configured, skipping transits update")
		return nil
	}
	return s.storeTransits(ctx, chart)
}

func (s *Service) storeTransits(ctx context.Context, chart *domain.Chart) error {
	data, err := json.Marshal(chart)
	if err != nil {
		return fmt.Errorf("failed to marshal transits: %w", err)
	}
	if err := s.Cache.Set(ctx, transitsCacheKey, string(data), s.cfg.TransitsTTL); err != nil {
		return fmt.Errorf("failed to cache transits: %w", err)
	}
	return nil
}

// CachedTransits последняя транзитная карта из кэша, при промахе считается на текущий момент
func (s *Service) CachedTransits(ctx context.Context) (*domain.Chart, error) {
	if s.Cache == nil {
		return s.ComputeTransits(ctx, s.now())
	}

	raw, err := s.Cache.Get(ctx, transitsCacheKey)
	switch {
	case err == nil:
		var chart domain.Chart
		if err := json.Unmarshal([]byte(raw), &chart); err == nil {
			s.Metrics.CacheHit("transits")
			return &chart, nil
		}
		s.Log.WarnContext(ctx, "corrupted transits cache entry, recomputing")
	case !errors.Is(err, cache.ErrNotFound):
		s.Log.WarnContext(ctx, "transits cache get failed", "error", err)
	}
	s.Metrics.CacheMiss("transits")

	chart, err := s.ComputeTransits(ctx, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.storeTransits(ctx, chart); err != nil {
		s.Log.WarnContext(ctx, "failed to store transits", "error", err)
	}
	return chart, nil
}
