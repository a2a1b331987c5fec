package usecase

import (
	"context"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/dasha"
)

// IAstroUseCase расчёты карты, даш и совместимости для входных адаптеров
type IAstroUseCase interface {
	ComputeChart(ctx context.Context, in domain.BirthInput) (*domain.Chart, error)
	ComputeDasha(ctx context.Context, chart *domain.Chart, opts dasha.Options) (*domain.DashaPeriod, error)
	ComputeMatching(ctx context.Context, boy, girl domain.BirthInput, ref domain.DoshaReference) (*domain.MatchingResult, error)
	ComputeTransits(ctx context.Context, at time.Time) (*domain.Chart, error)
	CachedTransits(ctx context.Context) (*domain.Chart, error)
}
