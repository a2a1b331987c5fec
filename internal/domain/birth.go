package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, "":
		return true
	default:
		return false
	}
}

// BirthInput гражданские данные рождения, как их вводит пользователь
type BirthInput struct {
	Name   string `json:"name"`
	Gender Gender `json:"gender,omitempty"`

	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`

	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`

	// TimezoneOffset в формате ±HH:MM, пустая строка - местное среднее время по долготе
	TimezoneOffset string `json:"timezone_offset"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"` // восточная долгота положительная
}

// JulianMoment юлианские дни момента рождения
type JulianMoment struct {
	UT     float64   `json:"jd_ut"`
	ET     float64   `json:"jd_et"`
	DeltaT float64   `json:"delta_t_seconds"`
	UTC    time.Time `json:"utc"`
}
