package generator

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfields/diffthread/internal/catalog"
	"github.com/mfields/diffthread/internal/model"
)

func TestPairsSkipsEqualPitch(t *testing.T) {
	threads := []model.Thread{
		model.Metric(6, 1),
		model.Metric(8, 1), // same pitch as M6-1
		model.Metric(6, 0.75),
	}

	results := slices.Collect(Pairs(threads, Options{}))

	// Of the three combinations, M6-1 x M8-1 shares a pitch and is dropped.
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NotEqual(t, r.Inner.PitchIn, r.Outer.PitchIn)
	}
}

func TestPairsIsRestartable(t *testing.T) {
	threads, err := catalog.Load()
	require.NoError(t, err)

	seq := Pairs(threads, Options{})
	first := slices.Collect(seq)
	second := slices.Collect(seq)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestPairsStopsEarly(t *testing.T) {
	threads, err := catalog.Load()
	require.NoError(t, err)

	var count int
	for range Pairs(threads, Options{}) {
		count++
		if count == 5 {
			break
		}
	}
	assert.Equal(t, 5, count)
}

func TestPairsFilters(t *testing.T) {
	threads, err := catalog.Load()
	require.NoError(t, err)

	tests := []struct {
		check func(t *testing.T, r model.PairResult)
		name  string
		opts  Options
	}{
		{
			name: "standard restricts both threads",
			opts: Options{Standard: model.StandardUTS},
			check: func(t *testing.T, r model.PairResult) {
				assert.Equal(t, model.StandardUTS, r.Inner.Standard)
				assert.Equal(t, model.StandardUTS, r.Outer.Standard)
			},
		},
		{
			name: "same diameter only",
			opts: Options{SameDiameter: true},
			check: func(t *testing.T, r model.PairResult) {
				assert.True(t, r.SameNominalDiameter(),
					"%s x %s should share a diameter", r.Inner.Designation, r.Outer.Designation)
			},
		},
		{
			name: "nested only",
			opts: Options{NestedOnly: true},
			check: func(t *testing.T, r model.PairResult) {
				require.True(t, r.CanNest())
				assert.GreaterOrEqual(t, *r.RadialClearanceIn, 0.0)
			},
		},
		{
			name: "diameter range bounds both threads",
			opts: Options{MinDiameterIn: 0.2, MaxDiameterIn: 0.5},
			check: func(t *testing.T, r model.PairResult) {
				for _, thread := range []model.Thread{r.Inner, r.Outer} {
					assert.GreaterOrEqual(t, thread.MajorDiameterIn, 0.2)
					assert.LessOrEqual(t, thread.MajorDiameterIn, 0.5)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := slices.Collect(Pairs(threads, tt.opts))
			require.NotEmpty(t, results)
			for _, r := range results {
				tt.check(t, r)
			}
		})
	}
}

func TestPairsFilteredIsSubset(t *testing.T) {
	threads, err := catalog.Load()
	require.NoError(t, err)

	all := slices.Collect(Pairs(threads, Options{}))
	nested := slices.Collect(Pairs(threads, Options{NestedOnly: true}))

	assert.Less(t, len(nested), len(all))

	seen := make(map[[2]string]struct{}, len(all))
	for _, r := range all {
		seen[[2]string{r.Inner.Designation, r.Outer.Designation}] = struct{}{}
	}
	for _, r := range nested {
		assert.Contains(t, seen, [2]string{r.Inner.Designation, r.Outer.Designation})
	}
}
