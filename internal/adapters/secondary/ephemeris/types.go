package ephemeris

// LongitudeRequest запрос долготы тела на юлианский день UT
type LongitudeRequest struct {
	JDUT float64 `json:"jd_ut"`
	Body string  `json:"body"`
}

// LongitudeResponse ответ провайдера. Отрицательный status - ошибка расчёта, текст в Error
type LongitudeResponse struct {
	Status    int     `json:"status"`
	Longitude float64 `json:"longitude"`
	Speed     float64 `json:"speed"`
	Error     string  `json:"error,omitempty"`
}
