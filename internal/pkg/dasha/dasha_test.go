package dasha

import (
	"testing"
	"time"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/julian"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/pkg/nakshatra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Луна в Хасте (13), 6.25° от начала накшатры
func hastaMoon() domain.NakshatraPlacement {
	return nakshatra.Place(domain.Moon, 166.25)
}

func birthMoment() domain.JulianMoment {
	return julian.FromTime(time.Date(1990, 5, 15, 4, 30, 0, 0, time.UTC))
}

func checkTree(t *testing.T, parent domain.DashaPeriod) {
	t.Helper()
	if len(parent.Children) == 0 {
		return
	}

	sum := 0.0
	for i, child := range parent.Children {
		sum += child.DurationYears
		assert.Equal(t, parent.Level+1, child.Level)
		if i == 0 {
			assert.Equal(t, parent.StartJD, child.StartJD, "first child starts with parent")
		} else {
			assert.Equal(t, parent.Children[i-1].EndJD, child.StartJD, "gap or overlap at %d", i)
		}
		checkTree(t, child)
	}
	assert.Equal(t, parent.EndJD, parent.Children[len(parent.Children)-1].EndJD, "last child ends with parent")
	assert.InDelta(t, parent.DurationYears, sum, 1e-6)
}

func TestBuild_MahadashaSequence(t *testing.T) {
	root, err := Build(hastaMoon(), birthMoment(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, domain.DashaRoot, root.Level)
	assert.Equal(t, domain.Moon, root.Lord)

	want := []domain.Body{
		domain.Moon, domain.Mars, domain.Rahu, domain.Jupiter, domain.Saturn,
		domain.Mercury, domain.Ketu, domain.Venus, domain.Sun, domain.Moon,
	}
	require.Len(t, root.Children, len(want))
	for i, p := range root.Children {
		assert.Equal(t, want[i], p.Lord, "mahadasha %d", i)
	}
	assert.GreaterOrEqual(t, root.DurationYears, CycleYears)
}

func TestBuild_FirstMahadashaBalance(t *testing.T) {
	root, err := Build(hastaMoon(), birthMoment(), DefaultOptions())
	require.NoError(t, err)

	first := root.Children[0]
	assert.InDelta(t, 5.3125, first.DurationYears, 1e-9)
	assert.InDelta(t, 4.6875, first.ElapsedYears, 1e-9)
	assert.InDelta(t, Years[domain.Moon], first.DurationYears+first.ElapsedYears, 1e-9)
	assert.Equal(t, birthMoment().UT, first.StartJD)
}

func TestBuild_StartsAtBirthInstant(t *testing.T) {
	birth := julian.FromTime(time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC))

	for _, mode := range []Mode{Proportional, Nominal} {
		root, err := Build(hastaMoon(), birth, Options{Mode: mode}.WithDefaults())
		require.NoError(t, err)

		first := root.Children[0]
		assert.Equal(t, birth.UTC, root.Start, mode)
		assert.Equal(t, birth.UTC, first.Start, mode)
		assert.Equal(t, birth.UTC, first.Children[0].Start, mode)
		assert.Equal(t, first.End, root.Children[1].Start, mode)
		assert.Equal(t, time.Duration(0), first.End.Sub(birth.UTC)%time.Millisecond, mode)
	}
}

func TestBuild_FullCycleIs120Years(t *testing.T) {
	root, err := Build(hastaMoon(), birthMoment(), DefaultOptions())
	require.NoError(t, err)

	first := root.Children[0]
	total := first.DurationYears + first.ElapsedYears
	for _, p := range root.Children[1:9] {
		total += p.DurationYears
	}
	assert.InDelta(t, CycleYears, total, 1e-9)

	sum := 0.0
	for _, y := range Years {
		sum += y
	}
	assert.Equal(t, CycleYears, sum)
}

func TestBuild_TreeIsContiguousAndProportional(t *testing.T) {
	for _, mode := range []Mode{Proportional, Nominal} {
		t.Run(string(mode), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Mode = mode
			root, err := Build(hastaMoon(), birthMoment(), opts)
			require.NoError(t, err)

			checkTree(t, *root)
		})
	}
}

func TestBuild_SubPeriodsStartFromParentLord(t *testing.T) {
	root, err := Build(hastaMoon(), birthMoment(), DefaultOptions())
	require.NoError(t, err)

	for _, maha := range root.Children {
		require.Len(t, maha.Children, 9)
		assert.Equal(t, maha.Lord, maha.Children[0].Lord)
		for _, antar := range maha.Children {
			require.Len(t, antar.Children, 9)
			assert.Equal(t, antar.Lord, antar.Children[0].Lord)
			for _, pratyantar := range antar.Children {
				assert.Empty(t, pratyantar.Children)
			}
		}
	}

	// Сатурн - Меркурий - Кету ...
	saturn := root.Children[4]
	require.Equal(t, domain.Saturn, saturn.Lord)
	assert.Equal(t, domain.Mercury, saturn.Children[1].Lord)
	assert.Equal(t, domain.Ketu, saturn.Children[2].Lord)
	assert.InDelta(t, 19.0*17.0/120.0, saturn.Children[1].DurationYears, 1e-9)
}

func TestBuild_DepthIsBounded(t *testing.T) {
	opts := DefaultOptions()
	opts.Depth = 1
	root, err := Build(hastaMoon(), birthMoment(), opts)
	require.NoError(t, err)
	for _, maha := range root.Children {
		assert.Empty(t, maha.Children)
	}

	opts.Depth = 2
	root, err = Build(hastaMoon(), birthMoment(), opts)
	require.NoError(t, err)
	for _, maha := range root.Children {
		require.Len(t, maha.Children, 9)
		for _, antar := range maha.Children {
			assert.Empty(t, antar.Children)
		}
	}
}

func TestBuild_NominalModeClipsAtBirth(t *testing.T) {
	opts := DefaultOptions()
	opts.Mode = Nominal
	root, err := Build(hastaMoon(), birthMoment(), opts)
	require.NoError(t, err)

	// 4.6875 лет из 10 прошли: Луна 0.83, Марс 0.58, Раху 1.5, Юпитер 1.33 уже закончились
	first := root.Children[0]
	require.Len(t, first.Children, 5)
	assert.Equal(t, domain.Saturn, first.Children[0].Lord)
	assert.Equal(t, birthMoment().UT, first.Children[0].StartJD)
	assert.Equal(t, domain.Sun, first.Children[4].Lord)

	// остальные махадаши делятся так же, как в пропорциональном режиме
	assert.Len(t, root.Children[1].Children, 9)
}

func TestBuild_HorizonExtendsCycle(t *testing.T) {
	opts := DefaultOptions()
	opts.HorizonYears = 200
	root, err := Build(hastaMoon(), birthMoment(), opts)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, root.DurationYears, 200.0)
	assert.Less(t, root.DurationYears-root.Children[len(root.Children)-1].DurationYears, 200.0)
}

func TestBuild_InvalidNakshatra(t *testing.T) {
	for _, idx := range []int{0, 28, -1} {
		moon := hastaMoon()
		moon.Index = idx
		_, err := Build(moon, birthMoment(), DefaultOptions())
		require.Error(t, err)
		assert.True(t, domain.IsInvalidNakshatra(err), "index %d", idx)
	}
}

func TestBuild_InvalidOptions(t *testing.T) {
	cases := []Options{
		{Depth: 0, HorizonYears: 120, Mode: Proportional},
		{Depth: 4, HorizonYears: 120, Mode: Proportional},
		{Depth: 2, HorizonYears: 0, Mode: Proportional},
		{Depth: 2, HorizonYears: 120, Mode: "other"},
	}
	for _, opts := range cases {
		_, err := Build(hastaMoon(), birthMoment(), opts)
		assert.ErrorIs(t, err, ErrInvalidOptions)
	}
}

func TestActiveAt(t *testing.T) {
	birth := birthMoment()
	root, err := Build(hastaMoon(), birth, DefaultOptions())
	require.NoError(t, err)

	chain := ActiveAt(root, birth.UT+1)
	require.Len(t, chain, 3)
	assert.Equal(t, domain.Moon, chain[0].Lord)
	assert.Equal(t, domain.Moon, chain[1].Lord)
	assert.Equal(t, domain.Moon, chain[2].Lord)

	// через 6 лет идёт махадаша Марса
	chain = ActiveAt(root, birth.UT+6*DaysPerYear)
	require.NotEmpty(t, chain)
	assert.Equal(t, domain.Mars, chain[0].Lord)

	assert.Empty(t, ActiveAt(root, birth.UT-1))
}

func TestOptions_WithDefaults(t *testing.T) {
	assert.Equal(t, DefaultOptions(), Options{}.WithDefaults())

	opts := Options{Depth: 1, Mode: Nominal}.WithDefaults()
	assert.Equal(t, 1, opts.Depth)
	assert.Equal(t, Nominal, opts.Mode)
	assert.Equal(t, CycleYears, opts.HorizonYears)
}
