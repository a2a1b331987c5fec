package astro

import (
	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
)

// BirthRequest данные рождения. Диапазоны даты и координат проверяет ядро,
// чтобы ошибки имели свой kind
type BirthRequest struct {
	Name           string  `json:"name" binding:"max=128"`
	Gender         string  `json:"gender" binding:"omitempty,oneof=male female"`
	Year           int     `json:"year" binding:"required"`
	Month          int     `json:"month" binding:"required"`
	Day            int     `json:"day" binding:"required"`
	Hour           int     `json:"hour"`
	Minute         int     `json:"minute"`
	Second         int     `json:"second"`
	TimezoneOffset string  `json:"timezone_offset" binding:"omitempty,tzoffset"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

func (r BirthRequest) ToDomain() domain.BirthInput {
	return domain.BirthInput{
		Name:           r.Name,
		Gender:         domain.Gender(r.Gender),
		Year:           r.Year,
		Month:          r.Month,
		Day:            r.Day,
		Hour:           r.Hour,
		Minute:         r.Minute,
		Second:         r.Second,
		TimezoneOffset: r.TimezoneOffset,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
	}
}

type DashaQuery struct {
	Depth int    `form:"depth" binding:"omitempty,min=1,max=3"`
	Mode  string `form:"mode" binding:"omitempty,oneof=proportional nominal"`
}

type MatchingRequest struct {
	Boy            BirthRequest `json:"boy"`
	Girl           BirthRequest `json:"girl"`
	DoshaReference string       `json:"dosha_reference" binding:"omitempty,oneof=ascendant moon either"`
}

type TransitsQuery struct {
	// At момент в RFC3339, пусто - последняя карта из кэша
	At string `form:"at" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type DashaResponse struct {
	Moon  domain.NakshatraPlacement `json:"moon"`
	Dasha *domain.DashaPeriod       `json:"dasha"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
