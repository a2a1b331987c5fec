package service

import (
	"context"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
)

// IEphemeris источник тропических эклиптических долгот.
// Реализация должна быть безопасна для параллельных вызовов
type IEphemeris interface {
	BodyLongitude(ctx context.Context, jdUT float64, body domain.Body) (domain.EclipticPosition, error)
}
