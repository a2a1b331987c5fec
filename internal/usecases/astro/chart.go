package astro

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/ayanamsa"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/julian"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/nakshatra"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/services/positions"
)

// ComputeChart строит сидерическую карту рождения.
// Ошибки: InvalidDateError, InvalidLocationError, EphemerisUnavailableError
func (s *Service) ComputeChart(ctx context.Context, in domain.BirthInput) (chart *domain.Chart, err error) {
	started := time.Now()
	defer func() { s.Metrics.ObserveOperation("chart", started, err) }()

	moment, err := julian.FromBirth(in)
	if err != nil {
		s.Log.DebugContext(ctx, "invalid birth input", "error", err)
		return nil, err
	}

	resolved, err := s.Resolver.Resolve(ctx, moment)
	if err != nil {
		s.Log.WarnContext(ctx, "failed to resolve positions", "jd_ut", moment.UT, "error", err)
		return nil, fmt.Errorf("resolve positions: %w", err)
	}

	return BuildChart(in, moment, resolved), nil
}

// BuildChart собирает карту из готовых позиций: асцендент, дома по целым знакам, накшатры
func BuildChart(in domain.BirthInput, moment domain.JulianMoment, resolved *positions.Result) *domain.Chart {
	lst := julian.LocalSiderealTime(moment.UT, in.Longitude)
	eps := julian.MeanObliquity(moment.ET)
	ascLon := ayanamsa.Sidereal(Ascendant(lst, eps, in.Latitude), resolved.Ayanamsa)

	ascSign := positions.SignOf(ascLon)
	asc := domain.BodyPosition{
		Body:       domain.Ascendant,
		Longitude:  ascLon,
		Sign:       ascSign,
		SignDegree: ascLon - float64(ascSign-1)*30,
		House:      1,
	}

	chart := &domain.Chart{
		Input:         in,
		Moment:        moment,
		Ayanamsa:      resolved.Ayanamsa,
		AscendantSign: asc.Sign,
		Ascendant:     asc,
		Bodies:        make([]domain.BodyPosition, 0, len(resolved.Bodies)),
		Nakshatras:    make([]domain.NakshatraPlacement, 0, len(resolved.Bodies)+1),
	}

	for _, p := range resolved.Bodies {
		p.House = House(p.Sign, asc.Sign)
		chart.Bodies = append(chart.Bodies, p)
		chart.Nakshatras = append(chart.Nakshatras, nakshatra.Place(p.Body, p.Longitude))
	}
	chart.Nakshatras = append(chart.Nakshatras, nakshatra.Place(domain.Ascendant, ascLon))

	return chart
}

// Ascendant тропическая долгота восходящей точки эклиптики.
// lst - местное звёздное время, eps - наклон эклиптики, lat - широта, всё в градусах
func Ascendant(lst, eps, lat float64) float64 {
	theta, e, phi := rad(lst), rad(eps), rad(lat)
	y := math.Cos(theta)
	x := -(math.Sin(theta)*math.Cos(e) + math.Tan(phi)*math.Sin(e))
	return julian.Normalize(math.Atan2(y, x) * 180 / math.Pi)
}

// House дом по целым знакам от знака асцендента
func House(sign, ascSign int) int {
	return (sign-ascSign+12)%12 + 1
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}
