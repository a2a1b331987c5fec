// Package positionstest детерминированные эфемериды для тестов.
package positionstest

import (
	"context"
	"fmt"
	"sync"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/julian"
)

// Default тропические позиции на любой момент, если нет переопределения по дате
var Default = map[domain.Body]domain.EclipticPosition{
	domain.Sun:     {Longitude: 54.7, Speed: 0.96},
	domain.Moon:    {Longitude: 190.2, Speed: 13.2},
	domain.Mars:    {Longitude: 10.5, Speed: 0.7},
	domain.Mercury: {Longitude: 40.1, Speed: 1.2},
	domain.Jupiter: {Longitude: 95.0, Speed: 0.2},
	domain.Venus:   {Longitude: 30.0, Speed: 1.1},
	domain.Saturn:  {Longitude: 296.0, Speed: -0.02},
	domain.Rahu:    {Longitude: 310.0, Speed: -0.053},
}

// Stub реализует порт эфемерид по таблице. Overrides ключуются датой UTC "2006-01-02"
type Stub struct {
	Positions map[domain.Body]domain.EclipticPosition
	Overrides map[string]map[domain.Body]domain.EclipticPosition
	Fail      map[domain.Body]error

	mu    sync.Mutex
	calls map[domain.Body]int
}

func New() *Stub {
	return &Stub{
		Positions: Default,
		Overrides: map[string]map[domain.Body]domain.EclipticPosition{},
		Fail:      map[domain.Body]error{},
		calls:     map[domain.Body]int{},
	}
}

// Override задаёт позицию тела для даты
func (s *Stub) Override(date string, body domain.Body, pos domain.EclipticPosition) *Stub {
	if s.Overrides[date] == nil {
		s.Overrides[date] = map[domain.Body]domain.EclipticPosition{}
	}
	s.Overrides[date][body] = pos
	return s
}

func (s *Stub) BodyLongitude(ctx context.Context, jdUT float64, body domain.Body) (domain.EclipticPosition, error) {
	s.mu.Lock()
	s.calls[body]++
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return domain.EclipticPosition{}, err
	}
	if err, ok := s.Fail[body]; ok {
		return domain.EclipticPosition{}, err
	}

	date := julian.ToTime(jdUT).Format("2006-01-02")
	if pos, ok := s.Overrides[date][body]; ok {
		return pos, nil
	}
	pos, ok := s.Positions[body]
	if !ok {
		return domain.EclipticPosition{}, fmt.Errorf("no fixture for %s", body)
	}
	return pos, nil
}

// Calls сколько раз спрашивали тело
func (s *Stub) Calls(body domain.Body) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[body]
}

func (s *Stub) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}
