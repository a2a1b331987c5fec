package astro

import (
	"context"
	"fmt"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/koota"
	"golang.org/x/sync/errgroup"
)

// ComputeMatching строит обе карты параллельно и считает Аштакуту и мангал-дошу.
// Пустой ref берётся из конфига
func (s *Service) ComputeMatching(ctx context.Context, boy, girl domain.BirthInput, ref domain.DoshaReference) (res *domain.MatchingResult, err error) {
	started := time.Now()
	defer func() { s.Metrics.ObserveOperation("matching", started, err) }()

	if ref == "" {
		ref = s.defaultDoshaReference()
	}
	if !ref.IsValid() {
		return nil, fmt.Errorf("unknown dosha reference %q", ref)
	}

	var boyChart, girlChart *domain.Chart
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.ComputeChart(gctx, boy)
		if err != nil {
			return fmt.Errorf("boy chart: %w", err)
		}
		boyChart = c
		return nil
	})
	g.Go(func() error {
		c, err := s.ComputeChart(gctx, girl)
		if err != nil {
			return fmt.Errorf("girl chart: %w", err)
		}
		girlChart = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res, err = koota.Match(boyChart, girlChart, ref)
	if err != nil {
		s.Log.ErrorContext(ctx, "matching failed on computed charts", "error", err)
		return nil, err
	}

	s.Log.DebugContext(ctx, "matching computed",
		"total", res.Total,
		"verdict", res.Verdict,
		"dosha_cancelled", res.DoshaCancelled,
	)
	return res, nil
}
