// Package koota считает совместимость по Аштакуте и мангал-дошу.
package koota

import (
	"fmt"
	"math"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/nakshatra"
)

// Максимальные баллы факторов, в сумме 36
var maxima = map[domain.KootaName]float64{
	domain.KootaVarna:       1,
	domain.KootaVashya:      2,
	domain.KootaTara:        3,
	domain.KootaYoni:        4,
	domain.KootaGrahaMaitri: 5,
	domain.KootaGana:        6,
	domain.KootaBhakoot:     7,
	domain.KootaNadi:        8,
}

// Order порядок факторов в результате
var Order = [...]domain.KootaName{
	domain.KootaVarna, domain.KootaVashya, domain.KootaTara, domain.KootaYoni,
	domain.KootaGrahaMaitri, domain.KootaGana, domain.KootaBhakoot, domain.KootaNadi,
}

func Max(name domain.KootaName) float64 {
	return maxima[name]
}

// moonFacts всё, что нужно о Луне одного партнёра
type moonFacts struct {
	sign       int
	signDegree float64
	nakshatra  int
}

func moonOf(chart *domain.Chart) (moonFacts, error) {
	pos, ok := chart.Position(domain.Moon)
	if !ok {
		return moonFacts{}, fmt.Errorf("chart has no Moon position")
	}
	nak, ok := chart.Nakshatra(domain.Moon)
	if !ok {
		return moonFacts{}, fmt.Errorf("chart has no Moon nakshatra")
	}
	if err := nakshatra.Validate(nak.Index); err != nil {
		return moonFacts{}, err
	}
	if pos.Sign < 1 || pos.Sign > 12 {
		return moonFacts{}, fmt.Errorf("moon sign %d out of range", pos.Sign)
	}
	return moonFacts{sign: pos.Sign, signDegree: pos.SignDegree, nakshatra: nak.Index}, nil
}

// Match считает все восемь факторов и дошу. Карты не изменяются
func Match(boy, girl *domain.Chart, ref domain.DoshaReference) (*domain.MatchingResult, error) {
	if ref == "" {
		ref = domain.DoshaFromAscendant
	}
	if !ref.IsValid() {
		return nil, fmt.Errorf("unknown dosha reference %q", ref)
	}

	b, err := moonOf(boy)
	if err != nil {
		return nil, fmt.Errorf("boy: %w", err)
	}
	g, err := moonOf(girl)
	if err != nil {
		return nil, fmt.Errorf("girl: %w", err)
	}

	factors, err := scoreFactors(b, g)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, f := range factors {
		total += f.Score
	}

	boyDosha, err := Manglik(boy, ref)
	if err != nil {
		return nil, fmt.Errorf("boy: %w", err)
	}
	girlDosha, err := Manglik(girl, ref)
	if err != nil {
		return nil, fmt.Errorf("girl: %w", err)
	}

	return &domain.MatchingResult{
		Factors:        factors,
		Total:          total,
		RoundedTotal:   int(math.Round(total)),
		Boy:            boyDosha,
		Girl:           girlDosha,
		DoshaCancelled: boyDosha.HasDosha && girlDosha.HasDosha,
		Verdict:        VerdictFor(total),
		BoyChart:       boy,
		GirlChart:      girl,
	}, nil
}

// scoreFactors восемь факторов в каноническом порядке
func scoreFactors(boy, girl moonFacts) ([]domain.FactorScore, error) {
	scorers := map[domain.KootaName]func(b, g moonFacts) (domain.FactorScore, error){
		domain.KootaVarna:       varna,
		domain.KootaVashya:      vashya,
		domain.KootaTara:        tara,
		domain.KootaYoni:        yoni,
		domain.KootaGrahaMaitri: grahaMaitri,
		domain.KootaGana:        gana,
		domain.KootaBhakoot:     bhakoot,
		domain.KootaNadi:        nadi,
	}

	out := make([]domain.FactorScore, 0, len(Order))
	for _, name := range Order {
		f, err := scorers[name](boy, girl)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		f.Name = name
		f.Max = maxima[name]
		out = append(out, f)
	}
	return out, nil
}

func varna(b, g moonFacts) (domain.FactorScore, error) {
	bv, gv := varnas[b.sign-1], varnas[g.sign-1]
	score := 0.0
	if bv >= gv {
		score = 1
	}
	return domain.FactorScore{Score: score, Boy: bv.String(), Girl: gv.String()}, nil
}

func vashya(b, g moonFacts) (domain.FactorScore, error) {
	bv, gv := vashyaOf(b.sign, b.signDegree), vashyaOf(g.sign, g.signDegree)
	return domain.FactorScore{Score: vashyaScores[bv][gv], Boy: bv.String(), Girl: gv.String()}, nil
}

// taraPoints 1.5 за направление, если остаток счёта не 3, 5 или 7
func taraPoints(from, to int) float64 {
	count := ((to-from+nakshatra.Count)%nakshatra.Count + 1) % 9
	if _, bad := inauspiciousTara[count]; bad {
		return 0
	}
	return 1.5
}

func tara(b, g moonFacts) (domain.FactorScore, error) {
	return domain.FactorScore{
		Score: taraPoints(b.nakshatra, g.nakshatra) + taraPoints(g.nakshatra, b.nakshatra),
		Boy:   nakshatra.Name(b.nakshatra),
		Girl:  nakshatra.Name(g.nakshatra),
	}, nil
}

func yoni(b, g moonFacts) (domain.FactorScore, error) {
	by, err := nakshatra.YoniOf(b.nakshatra)
	if err != nil {
		return domain.FactorScore{}, err
	}
	gy, err := nakshatra.YoniOf(g.nakshatra)
	if err != nil {
		return domain.FactorScore{}, err
	}
	return domain.FactorScore{Score: yoniScores[by][gy], Boy: by.String(), Girl: gy.String()}, nil
}

func grahaMaitri(b, g moonFacts) (domain.FactorScore, error) {
	bl, gl := signLords[b.sign-1], signLords[g.sign-1]
	return domain.FactorScore{
		Score: maitriScores[maitriIndex[bl]][maitriIndex[gl]],
		Boy:   string(bl),
		Girl:  string(gl),
	}, nil
}

func gana(b, g moonFacts) (domain.FactorScore, error) {
	bg, err := nakshatra.GanaOf(b.nakshatra)
	if err != nil {
		return domain.FactorScore{}, err
	}
	gg, err := nakshatra.GanaOf(g.nakshatra)
	if err != nil {
		return domain.FactorScore{}, err
	}
	return domain.FactorScore{Score: ganaScores[bg][gg], Boy: bg.String(), Girl: gg.String()}, nil
}

// bhakoot расстояние от знака жениха до знака невесты, считая оба
func bhakoot(b, g moonFacts) (domain.FactorScore, error) {
	distance := (g.sign-b.sign+12)%12 + 1
	score := 7.0
	if _, bad := bhakootDoshaDistances[distance]; bad {
		score = 0
	}
	return domain.FactorScore{
		Score: score,
		Boy:   SignName(b.sign),
		Girl:  SignName(g.sign),
	}, nil
}

func nadi(b, g moonFacts) (domain.FactorScore, error) {
	bn, err := nakshatra.NadiOf(b.nakshatra)
	if err != nil {
		return domain.FactorScore{}, err
	}
	gn, err := nakshatra.NadiOf(g.nakshatra)
	if err != nil {
		return domain.FactorScore{}, err
	}
	score := 8.0
	if bn == gn {
		score = 0
	}
	return domain.FactorScore{Score: score, Boy: bn.String(), Girl: gn.String()}, nil
}

// VerdictFor качественная оценка по неокруглённой сумме
func VerdictFor(total float64) domain.Verdict {
	switch {
	case total < 18:
		return domain.VerdictNotRecommended
	case total < 25:
		return domain.VerdictAverage
	case total < 33:
		return domain.VerdictGood
	default:
		return domain.VerdictExcellent
	}
}
