package ayanamsa

import (
	"testing"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/julian"
	"github.com/stretchr/testify/assert"
)

func TestMean_KnownValues(t *testing.T) {
	assert.InDelta(t, 23.857, Mean(julian.J2000), 0.001)
	assert.InDelta(t, 22.4605, Mean(julian.CalendarToJD(1900, 1, 1)), 0.001)
	assert.InDelta(t, lahiriEpochValue, Mean(lahiriEpochJD), 1e-5)
}

func TestMean_TableMatchesPolynomialAtEdges(t *testing.T) {
	first := lahiriMean[0]
	last := lahiriMean[len(lahiriMean)-1]

	assert.InDelta(t, first.value, Mean(first.jd-1e-3), 1e-5)
	assert.InDelta(t, last.value, Mean(last.jd+1e-3), 1e-5)
}

func TestMean_Drift(t *testing.T) {
	start := julian.CalendarToJD(2006, 1, 1)
	end := julian.CalendarToJD(2007, 1, 1)

	arcsecPerYear := (Mean(end) - Mean(start)) * 3600
	assert.InDelta(t, 50.3, arcsecPerYear, 0.2)
}

func TestMean_Monotonic(t *testing.T) {
	prev := Mean(julian.CalendarToJD(1750, 1, 1))
	for y := 1751; y <= 2250; y++ {
		cur := Mean(julian.CalendarToJD(y, 1, 1))
		assert.Greater(t, cur, prev, "year %d", y)
		prev = cur
	}
}

func TestNutation_Bounded(t *testing.T) {
	for y := 1900; y <= 2100; y += 3 {
		n := Nutation(julian.CalendarToJD(y, 6, 1)) * 3600
		assert.LessOrEqual(t, n, 19.0)
		assert.GreaterOrEqual(t, n, -19.0)
	}
}

func TestLahiri_IncludesNutation(t *testing.T) {
	jd := julian.CalendarToJD(2009, 2, 20)
	assert.InDelta(t, Mean(jd)+Nutation(jd), Lahiri(jd), 1e-12)
	assert.InDelta(t, 23.98, Lahiri(jd), 0.02)
}

func TestSidereal(t *testing.T) {
	assert.InDelta(t, 336.0, Sidereal(0, 24), 1e-9)
	assert.InDelta(t, 100.0, Sidereal(124, 24), 1e-9)
	assert.InDelta(t, 0.0, Sidereal(24, 24), 1e-9)
}
