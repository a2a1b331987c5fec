package julian

import (
	"testing"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func birth(y, m, d, hh, mm int, tz string) domain.BirthInput {
	return domain.BirthInput{
		Year: y, Month: m, Day: d,
		Hour: hh, Minute: mm,
		TimezoneOffset: tz,
		Latitude:       26.44,
		Longitude:      74.62,
	}
}

func TestCalendarToJD(t *testing.T) {
	assert.InDelta(t, 2451545.0, CalendarToJD(2000, 1, 1.5), 1e-9)
	// Мееус, пример 7.a
	assert.InDelta(t, 2436116.31, CalendarToJD(1957, 10, 4.81), 1e-9)
	assert.InDelta(t, 2299160.5, CalendarToJD(1582, 10, 15), 1e-9)
}

func TestFromBirth_SubtractsOffset(t *testing.T) {
	m, err := FromBirth(birth(2006, 1, 19, 9, 40, "+05:30"))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2006, 1, 19, 4, 10, 0, 0, time.UTC), m.UTC)
	assert.InDelta(t, 2453754.5+4.0/24+10.0/1440, m.UT, 1e-9)
	assert.Greater(t, m.ET, m.UT)
	assert.InDelta(t, 64.8, m.DeltaT, 1.0)
}

func TestFromBirth_LocalMeanTime(t *testing.T) {
	in := birth(2000, 1, 1, 17, 0, "")
	in.Longitude = 75

	m, err := FromBirth(in)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), m.UTC)
}

func TestFromBirth_InvalidDate(t *testing.T) {
	cases := map[string]domain.BirthInput{
		"feb 30":        birth(2009, 2, 30, 10, 30, "+05:30"),
		"feb 29 common": birth(2009, 2, 29, 10, 30, "+05:30"),
		"month 13":      birth(2009, 13, 1, 10, 30, "+05:30"),
		"hour 24":       birth(2009, 2, 20, 24, 0, "+05:30"),
		"minute 60":     birth(2009, 2, 20, 10, 60, "+05:30"),
		"bad offset":    birth(2009, 2, 20, 10, 30, "+5:30"),
		"offset range":  birth(2009, 2, 20, 10, 30, "+15:00"),
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromBirth(in)
			require.Error(t, err)
			assert.True(t, domain.IsInvalidDate(err), err.Error())
		})
	}
}

func TestFromBirth_LeapDay(t *testing.T) {
	_, err := FromBirth(birth(2008, 2, 29, 0, 0, "+00:00"))
	assert.NoError(t, err)
}

func TestFromBirth_InvalidLocation(t *testing.T) {
	in := birth(2009, 2, 20, 10, 30, "+05:30")
	in.Latitude = 91

	_, err := FromBirth(in)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidLocation(err))
}

func TestParseOffset(t *testing.T) {
	s, err := ParseOffset("-03:30")
	require.NoError(t, err)
	assert.Equal(t, -12600, s)

	s, err = ParseOffset("+00:00")
	require.NoError(t, err)
	assert.Zero(t, s)
}

func TestToTime_RoundTrip(t *testing.T) {
	for _, ts := range []time.Time{
		time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC),
		time.Date(2006, 1, 19, 4, 10, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 23, 59, 59, 500_000_000, time.UTC),
	} {
		m := FromTime(ts)
		assert.Equal(t, ts, ToTime(m.UT), ts.String())
	}
}

func TestGreenwichSiderealTime(t *testing.T) {
	// Мееус, пример 12.a: 13h10m46.3668s
	assert.InDelta(t, 197.693195, GreenwichSiderealTime(2446895.5), 1e-5)
}

func TestMeanObliquity(t *testing.T) {
	assert.InDelta(t, 23.4392911, MeanObliquity(J2000), 1e-6)
}

func TestDeltaT_Continuity(t *testing.T) {
	for _, y := range []float64{1860, 1900, 1920, 1941, 1961, 1986, 2005, 2050} {
		assert.InDelta(t, DeltaT(y-1e-6), DeltaT(y), 1.5, "boundary %v", y)
	}
	assert.InDelta(t, 63.8, DeltaT(2000), 0.5)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.0, Normalize(360))
	assert.Equal(t, 350.0, Normalize(-10))
	assert.Equal(t, 10.0, Normalize(730))
}
