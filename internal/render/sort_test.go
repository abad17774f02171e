package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfields/diffthread/internal/model"
)

func mustPair(t *testing.T, a, b model.Thread) model.PairResult {
	t.Helper()
	r, err := model.NewPairResult(a, b)
	require.NoError(t, err)
	return r
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SortKey
		wantErr bool
	}{
		{name: "pitch", input: "pitch", want: SortByPitch},
		{name: "diameter", input: "diameter", want: SortByDiameter},
		{name: "unknown", input: "clearance", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortByPitch(t *testing.T) {
	fine := mustPair(t, model.Fractional(1, 4, 28), model.Fractional(1, 4, 32))   // 1/224 in
	coarse := mustPair(t, model.Fractional(1, 4, 20), model.Fractional(1, 4, 28)) // 1/70 in
	medium := mustPair(t, model.Numbered(10, 24), model.Numbered(10, 28))         // 1/168 in

	results := []model.PairResult{coarse, fine, medium}
	Sort(results, SortByPitch)

	assert.Equal(t, []model.PairResult{fine, medium, coarse}, results)
}

func TestSortByPitchNilClearanceLast(t *testing.T) {
	// With equal effective pitch, a finite clearance sorts before nil.
	clearance := 0.02
	nesting := model.PairResult{
		Inner:             model.Numbered(4, 40),
		Outer:             model.Fractional(1, 4, 20),
		EffectivePitchIn:  0.005,
		EffectiveTPI:      200,
		RadialClearanceIn: &clearance,
	}
	interfering := model.PairResult{
		Inner:            model.Fractional(1, 4, 28),
		Outer:            model.Fractional(1, 4, 32),
		EffectivePitchIn: 0.005,
		EffectiveTPI:     200,
	}

	results := []model.PairResult{interfering, nesting}
	Sort(results, SortByPitch)

	assert.True(t, results[0].CanNest(), "finite clearance sorts before nil")
	assert.False(t, results[1].CanNest())
}

func TestSortByDiameter(t *testing.T) {
	small := mustPair(t, model.Numbered(0, 80), model.Numbered(1, 72))
	large := mustPair(t, model.Fractional(3, 4, 10), model.Fractional(3, 4, 16))

	results := []model.PairResult{large, small}
	Sort(results, SortByDiameter)

	assert.Equal(t, []model.PairResult{small, large}, results)
}

func TestSortDeterministic(t *testing.T) {
	a := mustPair(t, model.Metric(6, 1), model.Metric(6, 0.75))
	b := mustPair(t, model.Metric(8, 1.25), model.Metric(8, 1))
	c := mustPair(t, model.Numbered(4, 40), model.Numbered(4, 48))

	first := []model.PairResult{a, b, c}
	second := []model.PairResult{c, a, b}
	Sort(first, SortByPitch)
	Sort(second, SortByPitch)

	assert.Equal(t, first, second)
}
