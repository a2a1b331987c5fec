package domain

type Body string

const (
	Sun       Body = "Sun"
	Moon      Body = "Moon"
	Mars      Body = "Mars"
	Mercury   Body = "Mercury"
	Jupiter   Body = "Jupiter"
	Venus     Body = "Venus"
	Saturn    Body = "Saturn"
	Rahu      Body = "Rahu"
	Ketu      Body = "Ketu"
	Ascendant Body = "Ascendant"
)

// Planets девять классических грах в каноническом порядке
var Planets = [...]Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

func (b Body) IsValid() bool {
	if b == Ascendant {
		return true
	}
	for _, p := range Planets {
		if p == b {
			return true
		}
	}
	return false
}

// EclipticPosition ответ эфемерид: тропическая долгота и скорость
type EclipticPosition struct {
	Longitude float64 `json:"longitude"`
	Speed     float64 `json:"speed"` // градусов в сутки
}

type BodyPosition struct {
	Body       Body    `json:"body"`
	Longitude  float64 `json:"longitude"` // сидерическая, [0,360)
	Speed      float64 `json:"speed"`
	Retrograde bool    `json:"retrograde"`
	Sign       int     `json:"sign"`        // 1..12
	SignDegree float64 `json:"sign_degree"` // [0,30)
	House      int     `json:"house"`       // 1..12, целые знаки от асцендента
}

type Paya string

const (
	PayaGold    Paya = "Gold"
	PayaSilver  Paya = "Silver"
	PayaCopper  Paya = "Copper"
	PayaIron    Paya = "Iron"
	PayaUnknown Paya = "Unknown"
)

type NakshatraPlacement struct {
	Body          Body    `json:"body"`
	Index         int     `json:"index"` // 1..27
	Name          string  `json:"name"`
	Pada          int     `json:"pada"` // 1..4
	Paya          Paya    `json:"paya"`
	Lord          Body    `json:"lord"`
	WithinDegrees float64 `json:"within_degrees"`
}

// Chart сидерическая карта, после построения не меняется
type Chart struct {
	Input         BirthInput           `json:"input"`
	Moment        JulianMoment         `json:"moment"`
	Ayanamsa      float64              `json:"ayanamsa"`
	AscendantSign int                  `json:"ascendant_sign"`
	Ascendant     BodyPosition         `json:"ascendant"`
	Bodies        []BodyPosition       `json:"bodies"`
	Nakshatras    []NakshatraPlacement `json:"nakshatras"`
}

// Position возвращает позицию тела; Ascendant тоже ищется
func (c *Chart) Position(body Body) (BodyPosition, bool) {
	if body == Ascendant {
		return c.Ascendant, true
	}
	for _, p := range c.Bodies {
		if p.Body == body {
			return p, true
		}
	}
	return BodyPosition{}, false
}

func (c *Chart) Nakshatra(body Body) (NakshatraPlacement, bool) {
	for _, n := range c.Nakshatras {
		if n.Body == body {
			return n, true
		}
	}
	return NakshatraPlacement{}, false
}
