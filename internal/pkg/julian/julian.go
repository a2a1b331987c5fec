// Package julian переводит гражданское время рождения в юлианские дни (UT и ET)
// и считает звёздное время для асцендента.
package julian

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
)

const (
	secondsPerDay = 86400.0
	// J2000 эпоха 2000-01-01 12:00 TT
	J2000 = 2451545.0
	// DaysPerCentury юлианское столетие
	DaysPerCentury = 36525.0
)

var tzOffsetRe = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

// ParseOffset разбирает смещение ±HH:MM в секунды
func ParseOffset(offset string) (int, error) {
	m := tzOffsetRe.FindStringSubmatch(offset)
	if m == nil {
		return 0, domain.NewInvalidDateError("timezone offset %q is not ±HH:MM", offset)
	}

	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	if hours > 14 || minutes > 59 {
		return 0, domain.NewInvalidDateError("timezone offset %q out of range", offset)
	}

	seconds := hours*3600 + minutes*60
	if m[1] == "-" {
		seconds = -seconds
	}
	return seconds, nil
}

// ValidateLocation проверяет диапазоны широты и долготы
func ValidateLocation(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return &domain.InvalidLocationError{Latitude: lat, Longitude: lon}
	}
	return nil
}

// UTC возвращает момент рождения в UTC.
// Если смещение пустое, используется местное среднее время по долготе
func UTC(in domain.BirthInput) (time.Time, error) {
	if err := validateCivil(in); err != nil {
		return time.Time{}, err
	}
	if err := ValidateLocation(in.Latitude, in.Longitude); err != nil {
		return time.Time{}, err
	}

	var offset int
	if in.TimezoneOffset == "" {
		offset = int(math.Round(in.Longitude / 15 * 3600))
	} else {
		var err error
		offset, err = ParseOffset(in.TimezoneOffset)
		if err != nil {
			return time.Time{}, err
		}
	}

	local := time.Date(in.Year, time.Month(in.Month), in.Day, in.Hour, in.Minute, in.Second, 0, time.UTC)
	return local.Add(-time.Duration(offset) * time.Second), nil
}

func validateCivil(in domain.BirthInput) error {
	if in.Year < 1 || in.Year > 9999 {
		return domain.NewInvalidDateError("year %d out of range", in.Year)
	}
	if in.Month < 1 || in.Month > 12 {
		return domain.NewInvalidDateError("month %d out of range", in.Month)
	}
	if in.Day < 1 || in.Day > daysIn(in.Year, in.Month) {
		return domain.NewInvalidDateError("%04d-%02d-%02d does not exist", in.Year, in.Month, in.Day)
	}
	if in.Hour < 0 || in.Hour > 23 {
		return domain.NewInvalidDateError("hour %d out of range", in.Hour)
	}
	if in.Minute < 0 || in.Minute > 59 {
		return domain.NewInvalidDateError("minute %d out of range", in.Minute)
	}
	if in.Second < 0 || in.Second > 59 {
		return domain.NewInvalidDateError("second %d out of range", in.Second)
	}
	return nil
}

func daysIn(year, month int) int {
	// нулевой день следующего месяца - последний день текущего
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FromBirth считает JulianMoment для входных данных рождения
func FromBirth(in domain.BirthInput) (domain.JulianMoment, error) {
	utc, err := UTC(in)
	if err != nil {
		return domain.JulianMoment{}, err
	}
	return FromTime(utc), nil
}

// FromTime считает JulianMoment для произвольного момента
func FromTime(t time.Time) domain.JulianMoment {
	t = t.UTC()
	dayFraction := float64(t.Day()) +
		(float64(t.Hour())*3600+float64(t.Minute())*60+float64(t.Second())+float64(t.Nanosecond())/1e9)/secondsPerDay

	ut := CalendarToJD(t.Year(), int(t.Month()), dayFraction)
	dt := DeltaT(decimalYear(t))

	return domain.JulianMoment{
		UT:     ut,
		ET:     ut + dt/secondsPerDay,
		DeltaT: dt,
		UTC:    t,
	}
}

// CalendarToJD стандартная формула Мееуса для григорианского календаря
func CalendarToJD(year, month int, day float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + day + b - 1524.5
}

// ToTime переводит юлианский день UT обратно во время UTC.
// float64 около 2.4e6 различает примерно 40µs, поэтому результат округляется до миллисекунды
func ToTime(jd float64) time.Time {
	days := jd - unixEpochJD
	whole := math.Floor(days)
	frac := days - whole
	millis := math.Round(frac * secondsPerDay * 1e3)
	return time.Unix(int64(whole)*86400, 0).UTC().Add(time.Duration(millis) * time.Millisecond)
}

const unixEpochJD = 2440587.5

func decimalYear(t time.Time) float64 {
	return float64(t.Year()) + (float64(t.Month())-0.5)/12
}

// Centuries юлианские столетия от J2000
func Centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}
