// Package dasha строит дерево периодов Вимшоттари: махадаша, антардаша, пратьянтардаша.
package dasha

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/julian"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/nakshatra"
)

const (
	CycleYears  = 120.0
	DaysPerYear = 365.25
	MaxDepth    = 3
)

// Years длительность махадаши каждого управителя
var Years = map[domain.Body]float64{
	domain.Ketu:    7,
	domain.Venus:   20,
	domain.Sun:     6,
	domain.Moon:    10,
	domain.Mars:    7,
	domain.Rahu:    18,
	domain.Jupiter: 16,
	domain.Saturn:  19,
	domain.Mercury: 17,
}

type Mode string

const (
	// Proportional каждый период делится на 9 частей пропорционально годам управителей,
	// первая махадаша делится по своему остатку
	Proportional Mode = "proportional"
	// Nominal первая махадаша делится по полной номинальной длительности
	// и обрезается моментом рождения
	Nominal Mode = "nominal"
)

type Options struct {
	Depth        int
	HorizonYears float64
	Mode         Mode
}

func DefaultOptions() Options {
	return Options{
		Depth:        MaxDepth,
		HorizonYears: CycleYears,
		Mode:         Proportional,
	}
}

// WithDefaults заполняет нулевые поля значениями по умолчанию
func (o Options) WithDefaults() Options {
	def := DefaultOptions()
	if o.Depth == 0 {
		o.Depth = def.Depth
	}
	if o.HorizonYears == 0 {
		o.HorizonYears = def.HorizonYears
	}
	if o.Mode == "" {
		o.Mode = def.Mode
	}
	return o
}

var ErrInvalidOptions = errors.New("invalid dasha options")

func (o Options) validate() error {
	if o.Depth < 1 || o.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %d, expected 1..%d", ErrInvalidOptions, o.Depth, MaxDepth)
	}
	if o.HorizonYears <= 0 {
		return fmt.Errorf("%w: horizon %g years", ErrInvalidOptions, o.HorizonYears)
	}
	if o.Mode != Proportional && o.Mode != Nominal {
		return fmt.Errorf("%w: mode %q", ErrInvalidOptions, o.Mode)
	}
	return nil
}

// Build строит дерево от положения Луны в накшатре на момент рождения.
// Корень покрывает все махадаши, его Lord - управитель накшатры рождения
func Build(moon domain.NakshatraPlacement, birth domain.JulianMoment, opts Options) (*domain.DashaPeriod, error) {
	if err := nakshatra.Validate(moon.Index); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	first, _ := nakshatra.Lord(moon.Index)
	elapsedFraction := moon.WithinDegrees / nakshatra.Span
	if elapsedFraction < 0 || elapsedFraction >= 1 {
		return nil, fmt.Errorf("moon within-nakshatra offset %g out of range", moon.WithinDegrees)
	}

	nominal := Years[first]
	balance := nominal * (1 - elapsedFraction)

	root := &domain.DashaPeriod{
		Lord:    first,
		Level:   domain.DashaRoot,
		StartJD: birth.UT,
	}

	cursor := birth.UT
	covered := 0.0
	lord := first
	for covered < opts.HorizonYears {
		years := Years[lord]
		var period domain.DashaPeriod
		if covered == 0 {
			period = newPeriod(lord, domain.DashaMaha, cursor, balance)
			period.ElapsedYears = nominal - balance
			period.Children = firstChildren(lord, period, opts)
		} else {
			period = newPeriod(lord, domain.DashaMaha, cursor, years)
			if opts.Depth > 1 {
				period.Children = subdivide(lord, period, opts.Depth)
			}
		}

		root.Children = append(root.Children, period)
		cursor = period.EndJD
		covered += period.DurationYears
		lord = next(lord)
	}

	root.EndJD = cursor
	root.DurationYears = covered
	stamp(root, birth)
	return root, nil
}

func firstChildren(lord domain.Body, period domain.DashaPeriod, opts Options) []domain.DashaPeriod {
	if opts.Depth < 2 {
		return nil
	}
	if opts.Mode == Proportional {
		return subdivide(lord, period, opts.Depth)
	}

	full := newPeriod(lord, domain.DashaMaha, period.StartJD-period.ElapsedYears*DaysPerYear, Years[lord])
	full.EndJD = period.EndJD
	return clip(subdivide(lord, full, opts.Depth), period.StartJD)
}

// subdivide делит период на 9 подпериодов начиная с его управителя.
// Глубина ограничена явно, последний ребёнок заканчивается ровно в конце родителя
func subdivide(lord domain.Body, parent domain.DashaPeriod, depth int) []domain.DashaPeriod {
	level := parent.Level + 1
	if int(level) > depth {
		return nil
	}

	children := make([]domain.DashaPeriod, 0, len(nakshatra.VimshottariOrder))
	cursor := parent.StartJD
	sub := lord
	for i := range nakshatra.VimshottariOrder {
		share := Years[sub] / CycleYears * parent.DurationYears
		child := newPeriod(sub, level, cursor, share)
		if i == len(nakshatra.VimshottariOrder)-1 {
			child.EndJD = parent.EndJD
		}
		child.Children = subdivide(sub, child, depth)

		children = append(children, child)
		cursor = child.EndJD
		sub = next(sub)
	}
	return children
}

// clip отбрасывает подпериоды, закончившиеся до рождения, и обрезает текущий
func clip(periods []domain.DashaPeriod, birthJD float64) []domain.DashaPeriod {
	out := make([]domain.DashaPeriod, 0, len(periods))
	for _, p := range periods {
		if p.EndJD <= birthJD {
			continue
		}
		if p.StartJD < birthJD {
			p.StartJD = birthJD
			p.DurationYears = (p.EndJD - p.StartJD) / DaysPerYear
			p.Children = clip(p.Children, birthJD)
		}
		out = append(out, p)
	}
	return out
}

func newPeriod(lord domain.Body, level domain.DashaLevel, startJD, years float64) domain.DashaPeriod {
	endJD := startJD + years*DaysPerYear
	return domain.DashaPeriod{
		Lord:          lord,
		Level:         level,
		StartJD:       startJD,
		EndJD:         endJD,
		DurationYears: years,
	}
}

// stamp проставляет Start/End всему дереву как смещение от момента рождения,
// так начало корня и первых периодов совпадает с birth.UTC точно
func stamp(p *domain.DashaPeriod, birth domain.JulianMoment) {
	p.Start = timeAt(birth, p.StartJD)
	p.End = timeAt(birth, p.EndJD)
	for i := range p.Children {
		stamp(&p.Children[i], birth)
	}
}

func timeAt(birth domain.JulianMoment, jd float64) time.Time {
	if birth.UTC.IsZero() {
		return julian.ToTime(jd)
	}
	ms := math.Round((jd - birth.UT) * 86400 * 1e3)
	return birth.UTC.Add(time.Duration(ms) * time.Millisecond)
}

func next(lord domain.Body) domain.Body {
	for i, b := range nakshatra.VimshottariOrder {
		if b == lord {
			return nakshatra.VimshottariOrder[(i+1)%len(nakshatra.VimshottariOrder)]
		}
	}
	return nakshatra.VimshottariOrder[0]
}

// ActiveAt цепочка периодов, идущих в момент jd: махадаша, антардаша, ...
func ActiveAt(root *domain.DashaPeriod, jd float64) []domain.DashaPeriod {
	var chain []domain.DashaPeriod
	periods := root.Children
	for len(periods) > 0 {
		found := false
		for _, p := range periods {
			if jd >= p.StartJD && jd < p.EndJD {
				chain = append(chain, p)
				periods = p.Children
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return chain
}
