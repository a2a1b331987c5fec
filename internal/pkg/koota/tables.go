package koota

import (
	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/nakshatra"
)

// Знаки нумеруются с 1: Овен = 1 ... Рыбы = 12
const (
	Aries = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func SignName(sign int) string {
	if sign < 1 || sign > 12 {
		return ""
	}
	return signNames[sign-1]
}

type Varna int

const (
	Shudra Varna = iota + 1
	Vaishya
	Kshatriya
	Brahmin
)

func (v Varna) String() string {
	return [...]string{"", "Shudra", "Vaishya", "Kshatriya", "Brahmin"}[v]
}

var varnas = [12]Varna{
	Kshatriya, Vaishya, Shudra, Brahmin, // Овен - Рак
	Kshatriya, Vaishya, Shudra, Brahmin, // Лев - Скорпион
	Kshatriya, Vaishya, Shudra, Brahmin, // Стрелец - Рыбы
}

type Vashya int

const (
	Chatushpada Vashya = iota
	Manava
	Jalachara
	Vanachara
	Keeta
)

func (v Vashya) String() string {
	return [...]string{"Chatushpada", "Manava", "Jalachara", "Vanachara", "Keeta"}[v]
}

// vashyaOf Стрелец и Козерог делятся пополам по 15°
func vashyaOf(sign int, signDegree float64) Vashya {
	switch sign {
	case Aries, Taurus:
		return Chatushpada
	case Gemini, Virgo, Libra, Aquarius:
		return Manava
	case Cancer, Pisces:
		return Jalachara
	case Leo:
		return Vanachara
	case Scorpio:
		return Keeta
	case Sagittarius:
		if signDegree < 15 {
			return Manava
		}
		return Chatushpada
	default: // Capricorn
		if signDegree < 15 {
			return Chatushpada
		}
		return Jalachara
	}
}

// vashyaScores [жених][невеста]
var vashyaScores = [5][5]float64{
	Chatushpada: {2, 1, 1, 0.5, 1},
	Manava:      {1, 2, 0.5, 0, 1},
	Jalachara:   {1, 0.5, 2, 1, 1},
	Vanachara:   {0.5, 0, 1, 2, 0},
	Keeta:       {1, 1, 1, 0, 2},
}

// yoniScores симметричная матрица совместимости животных
var yoniScores = [nakshatra.YoniCount][nakshatra.YoniCount]float64{
	nakshatra.Horse:    {4, 2, 2, 3, 2, 2, 2, 1, 0, 1, 3, 3, 2, 1},
	nakshatra.Elephant: {2, 4, 3, 3, 2, 2, 2, 2, 3, 1, 2, 3, 2, 0},
	nakshatra.Sheep:    {2, 3, 4, 2, 1, 2, 1, 3, 3, 1, 2, 0, 3, 1},
	nakshatra.Serpent:  {3, 3, 2, 4, 2, 1, 1, 1, 1, 2, 2, 2, 0, 2},
	nakshatra.Dog:      {2, 2, 1, 2, 4, 2, 1, 2, 2, 1, 0, 2, 1, 1},
	nakshatra.Cat:      {2, 2, 2, 1, 2, 4, 0, 2, 2, 1, 3, 3, 2, 1},
	nakshatra.Rat:      {2, 2, 1, 1, 1, 0, 4, 2, 2, 2, 2, 2, 1, 2},
	nakshatra.Cow:      {1, 2, 3, 1, 2, 2, 2, 4, 3, 0, 3, 2, 2, 1},
	nakshatra.Buffalo:  {0, 3, 3, 1, 2, 2, 2, 3, 4, 1, 2, 2, 2, 1},
	nakshatra.Tiger:    {1, 1, 1, 2, 1, 1, 2, 0, 1, 4, 1, 1, 2, 1},
	nakshatra.Deer:     {3, 2, 2, 2, 0, 3, 2, 3, 2, 1, 4, 2, 2, 1},
	nakshatra.Monkey:   {3, 3, 0, 2, 2, 3, 2, 2, 2, 1, 2, 4, 3, 2},
	nakshatra.Mongoose: {2, 2, 3, 0, 1, 2, 1, 2, 2, 2, 2, 3, 4, 2},
	nakshatra.Lion:     {1, 0, 1, 2, 1, 1, 2, 1, 1, 1, 1, 2, 2, 4},
}

// signLords управитель знака
var signLords = [12]domain.Body{
	domain.Mars, domain.Venus, domain.Mercury, domain.Moon, domain.Sun, domain.Mercury,
	domain.Venus, domain.Mars, domain.Jupiter, domain.Saturn, domain.Saturn, domain.Jupiter,
}

var maitriIndex = map[domain.Body]int{
	domain.Sun:     0,
	domain.Moon:    1,
	domain.Mars:    2,
	domain.Mercury: 3,
	domain.Jupiter: 4,
	domain.Venus:   5,
	domain.Saturn:  6,
}

// maitriScores дружба управителей знаков Луны
var maitriScores = [7][7]float64{
	{5, 5, 5, 4, 5, 0, 0},
	{5, 5, 4, 1, 4, 0.5, 0.5},
	{5, 4, 5, 0.5, 5, 3, 0.5},
	{4, 1, 0.5, 5, 0.5, 5, 4},
	{5, 4, 5, 0.5, 5, 0.5, 3},
	{0, 0.5, 3, 5, 0.5, 5, 5},
	{0, 0.5, 0.5, 4, 3, 5, 5},
}

// ganaScores [жених][невеста]
var ganaScores = [3][3]float64{
	nakshatra.Deva:     {6, 6, 1},
	nakshatra.Manushya: {5, 6, 0},
	nakshatra.Rakshasa: {1, 0, 6},
}

// Расстояния между знаками, при которых бхакут даёт 0
var bhakootDoshaDistances = map[int]struct{}{2: {}, 12: {}, 5: {}, 9: {}, 6: {}, 8: {}}

// Остатки тары, считающиеся неблагоприятными
var inauspiciousTara = map[int]struct{}{3: {}, 5: {}, 7: {}}

// Дома Марса, дающие мангал-дошу
var manglikHouses = map[int]struct{}{1: {}, 2: {}, 4: {}, 7: {}, 8: {}, 12: {}}
