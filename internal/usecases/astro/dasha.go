package astro

import (
	"context"
	"fmt"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/dasha"
)

// ComputeDasha дерево Вимшоттари от Луны карты. Нулевые поля opts берутся по умолчанию
func (s *Service) ComputeDasha(ctx context.Context, chart *domain.Chart, opts dasha.Options) (root *domain.DashaPeriod, err error) {
	started := time.Now()
	defer func() { s.Metrics.ObserveOperation("dasha", started, err) }()

	if chart == nil {
		return nil, fmt.Errorf("chart is nil")
	}

	moon, ok := chart.Nakshatra(domain.Moon)
	if !ok {
		// карта без Луны не может прийти из ComputeChart
		return nil, &domain.InvalidNakshatraError{Index: 0}
	}

	root, err = dasha.Build(moon, chart.Moment, opts.WithDefaults())
	if err != nil {
		if domain.IsInvalidNakshatra(err) {
			s.Log.ErrorContext(ctx, "invalid moon nakshatra in chart", "index", moon.Index, "error", err)
		}
		return nil, err
	}
	return root, nil
}
