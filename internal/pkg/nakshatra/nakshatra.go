// Package nakshatra классифицирует сидерическую долготу: накшатра, пада, пайя,
// и хранит статические таблицы атрибутов накшатр.
package nakshatra

import (
	"math"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/julian"
)

const (
	Count = 27
	// Span 13°20'
	Span = 360.0 / Count
	// PadaSpan 3°20'
	PadaSpan = Span / 4
)

// Долготы квантуются до микросекунд дуги, поэтому границы накшатр и пад
// (кратные 12000") попадают точно и floor не спотыкается о float
const (
	unitsPerDegree = 3600 * 1_000_000
	spanUnits      = 48000 * 1_000_000
	padaUnits      = 12000 * 1_000_000
	circleUnits    = 360 * unitsPerDegree
)

// Placement результат классификации без привязки к телу
type Placement struct {
	Index         int
	Pada          int
	WithinDegrees float64
}

// Classify index = floor(L/span)+1, pada = floor((L mod span)/padaSpan)+1
func Classify(longitude float64) Placement {
	units := int64(math.Round(julian.Normalize(longitude) * unitsPerDegree))
	if units >= circleUnits {
		units -= circleUnits
	}

	within := units % spanUnits
	return Placement{
		Index:         int(units/spanUnits) + 1,
		Pada:          int(within/padaUnits) + 1,
		WithinDegrees: float64(within) / unitsPerDegree,
	}
}

// Place полная раскладка тела по накшатре
func Place(body domain.Body, longitude float64) domain.NakshatraPlacement {
	p := Classify(longitude)
	lord, _ := Lord(p.Index)
	return domain.NakshatraPlacement{
		Body:          body,
		Index:         p.Index,
		Name:          Name(p.Index),
		Pada:          p.Pada,
		Paya:          PayaOf(p.Index),
		Lord:          lord,
		WithinDegrees: p.WithinDegrees,
	}
}

// Validate проверяет, что индекс в 1..27
func Validate(index int) error {
	if index < 1 || index > Count {
		return &domain.InvalidNakshatraError{Index: index}
	}
	return nil
}
