package domain

import "time"

type DashaLevel int

const (
	DashaRoot DashaLevel = iota
	DashaMaha
	DashaAntar
	DashaPratyantar
)

func (l DashaLevel) String() string {
	switch l {
	case DashaRoot:
		return "root"
	case DashaMaha:
		return "mahadasha"
	case DashaAntar:
		return "antardasha"
	case DashaPratyantar:
		return "pratyantardasha"
	default:
		return "unknown"
	}
}

// DashaPeriod узел дерева Вимшоттари. Корень покрывает весь горизонт от рождения,
// его дети - махадаши
type DashaPeriod struct {
	Lord          Body          `json:"lord"`
	Level         DashaLevel    `json:"level"`
	Start         time.Time     `json:"start"`
	End           time.Time     `json:"end"`
	StartJD       float64       `json:"start_jd"`
	EndJD         float64       `json:"end_jd"`
	DurationYears float64       `json:"duration_years"`
	ElapsedYears  float64       `json:"elapsed_years,omitempty"` // прошло до рождения, только у первой махадаши
	Children      []DashaPeriod `json:"children,omitempty"`
}
