package nakshatra

import "github.com/Aayushsharma490/viprakarma-sub003/internal/domain"

var names = [Count]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra", "Punarvasu",
	"Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni", "Hasta",
	"Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

// Name название накшатры, пусто для индекса вне 1..27
func Name(index int) string {
	if Validate(index) != nil {
		return ""
	}
	return names[index-1]
}

// VimshottariOrder порядок управителей, он же цикл даш
var VimshottariOrder = [9]domain.Body{
	domain.Ketu, domain.Venus, domain.Sun, domain.Moon, domain.Mars,
	domain.Rahu, domain.Jupiter, domain.Saturn, domain.Mercury,
}

// Lord управитель накшатры: Ашвини - Кету, дальше по циклу из 9
func Lord(index int) (domain.Body, error) {
	if err := Validate(index); err != nil {
		return "", err
	}
	return VimshottariOrder[(index-1)%9], nil
}

// payas металл пайи по индексу накшатры
var payas = map[int]domain.Paya{
	1: domain.PayaGold, 9: domain.PayaGold, 13: domain.PayaGold,
	15: domain.PayaGold, 24: domain.PayaGold, 26: domain.PayaGold,

	2: domain.PayaSilver, 5: domain.PayaSilver, 8: domain.PayaSilver, 17: domain.PayaSilver,
	18: domain.PayaSilver, 21: domain.PayaSilver, 25: domain.PayaSilver,

	7: domain.PayaCopper, 10: domain.PayaCopper, 11: domain.PayaCopper, 12: domain.PayaCopper,
	16: domain.PayaCopper, 19: domain.PayaCopper, 23: domain.PayaCopper, 27: domain.PayaCopper,

	3: domain.PayaIron, 4: domain.PayaIron, 6: domain.PayaIron,
	14: domain.PayaIron, 20: domain.PayaIron, 22: domain.PayaIron,
}

// PayaOf металл пайи. Индекс 0 (нет накшатры) даёт Unknown, индекс вне таблицы даёт Iron
func PayaOf(index int) domain.Paya {
	if index == 0 {
		return domain.PayaUnknown
	}
	if paya, ok := payas[index]; ok {
		return paya
	}
	return domain.PayaIron
}

type Gana int

const (
	Deva Gana = iota
	Manushya
	Rakshasa
)

func (g Gana) String() string {
	return [...]string{"Deva", "Manushya", "Rakshasa"}[g]
}

var ganas = [Count]Gana{
	Deva, Manushya, Rakshasa, Manushya, Deva, Manushya, Deva, // 1-7
	Deva, Rakshasa, Rakshasa, Manushya, Manushya, Deva, Rakshasa, // 8-14
	Deva, Rakshasa, Deva, Rakshasa, Rakshasa, Manushya, Manushya, // 15-21
	Deva, Rakshasa, Rakshasa, Manushya, Manushya, Deva, // 22-27
}

func GanaOf(index int) (Gana, error) {
	if err := Validate(index); err != nil {
		return 0, err
	}
	return ganas[index-1], nil
}

type Yoni int

const (
	Horse Yoni = iota
	Elephant
	Sheep
	Serpent
	Dog
	Cat
	Rat
	Cow
	Buffalo
	Tiger
	Deer
	Monkey
	Mongoose
	Lion
)

// YoniCount число животных йони
const YoniCount = 14

func (y Yoni) String() string {
	return [...]string{
		"Horse", "Elephant", "Sheep", "Serpent", "Dog", "Cat", "Rat",
		"Cow", "Buffalo", "Tiger", "Deer", "Monkey", "Mongoose", "Lion",
	}[y]
}

var yonis = [Count]Yoni{
	Horse, Elephant, Sheep, Serpent, Serpent, Dog, Cat, // 1-7
	Sheep, Cat, Rat, Rat, Cow, Buffalo, Tiger, // 8-14
	Buffalo, Tiger, Deer, Deer, Dog, Monkey, Mongoose, // 15-21
	Monkey, Lion, Horse, Lion, Cow, Elephant, // 22-27
}

func YoniOf(index int) (Yoni, error) {
	if err := Validate(index); err != nil {
		return 0, err
	}
	return yonis[index-1], nil
}

type Nadi int

const (
	Adi Nadi = iota
	Madhya
	Antya
)

func (n Nadi) String() string {
	return [...]string{"Adi", "Madhya", "Antya"}[n]
}

// nadis идут змейкой: Ади, Мадхья, Антья, Антья, Мадхья, Ади, ...
var nadis = [Count]Nadi{
	Adi, Madhya, Antya, Antya, Madhya, Adi, // 1-6
	Adi, Madhya, Antya, Antya, Madhya, Adi, // 7-12
	Adi, Madhya, Antya, Antya, Madhya, Adi, // 13-18
	Adi, Madhya, Antya, Antya, Madhya, Adi, // 19-24
	Adi, Madhya, Antya, // 25-27
}

func NadiOf(index int) (Nadi, error) {
	if err := Validate(index); err != nil {
		return 0, err
	}
	return nadis[index-1], nil
}
