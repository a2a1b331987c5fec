package koota

import (
	"fmt"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
)

// houseFrom дом знака sign, если знак from считать первым
func houseFrom(sign, from int) int {
	return (sign-from+12)%12 + 1
}

// Manglik мангал-доша одного человека. Дом от асцендента берётся из карты,
// дом от Луны считается по целым знакам
func Manglik(chart *domain.Chart, ref domain.DoshaReference) (domain.ManglikStatus, error) {
	mars, ok := chart.Position(domain.Mars)
	if !ok {
		return domain.ManglikStatus{}, fmt.Errorf("chart has no Mars position")
	}
	moon, ok := chart.Position(domain.Moon)
	if !ok {
		return domain.ManglikStatus{}, fmt.Errorf("chart has no Moon position")
	}

	status := domain.ManglikStatus{
		MarsHouse:         mars.House,
		MarsHouseFromMoon: houseFrom(mars.Sign, moon.Sign),
	}

	_, fromAsc := manglikHouses[status.MarsHouse]
	_, fromMoon := manglikHouses[status.MarsHouseFromMoon]

	switch ref {
	case domain.DoshaFromMoon:
		status.HasDosha = fromMoon
	case domain.DoshaFromEither:
		status.HasDosha = fromAsc || fromMoon
	default:
		status.HasDosha = fromAsc
	}
	return status, nil
}
