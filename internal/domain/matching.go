package domain

type KootaName string

const (
	KootaVarna       KootaName = "Varna"
	KootaVashya      KootaName = "Vashya"
	KootaTara        KootaName = "Tara"
	KootaYoni        KootaName = "Yoni"
	KootaGrahaMaitri KootaName = "Graha Maitri"
	KootaGana        KootaName = "Gana"
	KootaBhakoot     KootaName = "Bhakoot"
	KootaNadi        KootaName = "Nadi"
)

const MaxGunaScore = 36.0

type FactorScore struct {
	Name  KootaName `json:"name"`
	Max   float64   `json:"max"`
	Score float64   `json:"score"`
	Boy   string    `json:"boy"`
	Girl  string    `json:"girl"`
}

// DoshaReference от чего считается дом Марса
type DoshaReference string

const (
	DoshaFromAscendant DoshaReference = "ascendant"
	DoshaFromMoon      DoshaReference = "moon"
	DoshaFromEither    DoshaReference = "either"
)

func (r DoshaReference) IsValid() bool {
	switch r {
	case DoshaFromAscendant, DoshaFromMoon, DoshaFromEither:
		return true
	default:
		return false
	}
}

type ManglikStatus struct {
	HasDosha          bool `json:"has_dosha"`
	MarsHouse         int  `json:"mars_house"`
	MarsHouseFromMoon int  `json:"mars_house_from_moon"`
}

type Verdict string

const (
	VerdictNotRecommended Verdict = "not_recommended"
	VerdictAverage        Verdict = "average"
	VerdictGood           Verdict = "good"
	VerdictExcellent      Verdict = "excellent"
)

type MatchingResult struct {
	Factors        []FactorScore `json:"factors"`
	Total          float64       `json:"total"`
	RoundedTotal   int           `json:"rounded_total"` // только для отображения
	Boy            ManglikStatus `json:"boy_manglik"`
	Girl           ManglikStatus `json:"girl_manglik"`
	DoshaCancelled bool          `json:"dosha_cancelled"`
	Verdict        Verdict       `json:"verdict"`
	BoyChart       *Chart        `json:"boy_chart,omitempty"`
	GirlChart      *Chart        `json:"girl_chart,omitempty"`
}
