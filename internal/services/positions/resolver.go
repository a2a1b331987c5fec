// Package positions получает тропические долготы у эфемерид и переводит их в сидерические.
package positions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/ayanamsa"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/julian"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/service"
	"golang.org/x/sync/errgroup"
)

// Queried тела, которые спрашиваются у эфемерид. Кету считается от Раху
var Queried = [...]domain.Body{
	domain.Sun, domain.Moon, domain.Mars, domain.Mercury,
	domain.Jupiter, domain.Venus, domain.Saturn, domain.Rahu,
}

type Resolver struct {
	ephemeris service.IEphemeris
	log       *slog.Logger
}

func New(ephemeris service.IEphemeris, log *slog.Logger) *Resolver {
	return &Resolver{
		ephemeris: ephemeris,
		log:       log,
	}
}

// Result сидерические позиции девяти грах и аянамша, с которой они посчитаны
type Result struct {
	Ayanamsa float64
	Bodies   []domain.BodyPosition
}

// Resolve опрашивает эфемериды параллельно. Первая ошибка отменяет остальные
// запросы, частичного результата не бывает
func (r *Resolver) Resolve(ctx context.Context, moment domain.JulianMoment) (*Result, error) {
	var (
		mu       sync.Mutex
		tropical = make(map[domain.Body]domain.EclipticPosition, len(Queried))
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, body := range Queried {
		g.Go(func() error {
			pos, err := r.lookup(gctx, moment.UT, body)
			if err != nil {
				return err
			}
			mu.Lock()
			tropical[body] = pos
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.log.Debug("ephemeris lookup failed", "jd_ut", moment.UT, "error", err)
		return nil, err
	}

	rahu := tropical[domain.Rahu]
	tropical[domain.Ketu] = domain.EclipticPosition{
		Longitude: julian.Normalize(rahu.Longitude + 180),
		Speed:     rahu.Speed,
	}

	ayan := ayanamsa.Lahiri(moment.ET)
	bodies := make([]domain.BodyPosition, 0, len(domain.Planets))
	for _, body := range domain.Planets {
		bodies = append(bodies, Sidereal(body, tropical[body], ayan))
	}

	return &Result{Ayanamsa: ayan, Bodies: bodies}, nil
}

func (r *Resolver) lookup(ctx context.Context, jdUT float64, body domain.Body) (domain.EclipticPosition, error) {
	pos, err := r.ephemeris.BodyLongitude(ctx, jdUT, body)
	if err != nil {
		var unavailable *domain.EphemerisUnavailableError
		if errors.As(err, &unavailable) {
			return domain.EclipticPosition{}, err
		}
		return domain.EclipticPosition{}, &domain.EphemerisUnavailableError{Body: body, Err: err}
	}

	if math.IsNaN(pos.Longitude) || math.IsInf(pos.Longitude, 0) ||
		pos.Longitude < 0 || pos.Longitude >= 360 || math.IsNaN(pos.Speed) {
		return domain.EclipticPosition{}, &domain.EphemerisUnavailableError{
			Body: body,
			Err:  fmt.Errorf("provider returned invalid position %+v", pos),
		}
	}
	return pos, nil
}

// Sidereal переводит тропическую позицию в сидерическую. Скорость уменьшается
// на суточный дрейф аянамши, ретроградность по знаку скорости
func Sidereal(body domain.Body, tropical domain.EclipticPosition, ayan float64) domain.BodyPosition {
	lon := ayanamsa.Sidereal(tropical.Longitude, ayan)
	speed := tropical.Speed - ayanamsa.RatePerDay
	sign := SignOf(lon)
	return domain.BodyPosition{
		Body:       body,
		Longitude:  lon,
		Speed:      speed,
		Retrograde: speed < 0,
		Sign:       sign,
		SignDegree: lon - float64(sign-1)*30,
	}
}

// SignOf знак 1..12 для долготы из [0,360)
func SignOf(lon float64) int {
	sign := int(math.Floor(julian.Normalize(lon)/30)) + 1
	if sign > 12 {
		sign = 1
	}
	return sign
}
