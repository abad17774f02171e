package render

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mfields/diffthread/internal/common"
	"github.com/mfields/diffthread/internal/model"
)

// SortKey selects the ordering of rendered pair tables.
type SortKey string

const (
	// SortByPitch orders by effective pitch, then clearance, then
	// designations.
	SortByPitch SortKey = "pitch"
	// SortByDiameter orders by inner major diameter, then effective pitch,
	// then designations.
	SortByDiameter SortKey = "diameter"
)

// ParseSortKey validates a sort key string.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByPitch, SortByDiameter:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("%w: unknown sort key %q", common.ErrInvalidConfig, s)
	}
}

// Sort orders results in place. Every key is a total order over distinct
// pairs, so sorted output is deterministic for a fixed catalog.
func Sort(results []model.PairResult, key SortKey) {
	slices.SortFunc(results, func(a, b model.PairResult) int {
		switch key {
		case SortByDiameter:
			return cmp.Or(
				cmp.Compare(a.Inner.MajorDiameterIn, b.Inner.MajorDiameterIn),
				cmp.Compare(a.EffectivePitchIn, b.EffectivePitchIn),
				compareDesignations(a, b),
			)
		default:
			return cmp.Or(
				cmp.Compare(a.EffectivePitchIn, b.EffectivePitchIn),
				compareClearances(a.RadialClearanceIn, b.RadialClearanceIn),
				compareDesignations(a, b),
			)
		}
	})
}

// compareClearances orders larger clearance needs last; nil (cannot nest)
// sorts after every finite clearance.
func compareClearances(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

func compareDesignations(a, b model.PairResult) int {
	return cmp.Or(
		cmp.Compare(a.Inner.Designation, b.Inner.Designation),
		cmp.Compare(a.Outer.Designation, b.Outer.Designation),
	)
}
