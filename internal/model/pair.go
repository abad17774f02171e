package model

import (
	"math"

	"github.com/mfields/diffthread/internal/common"
)

// PairResult is the evaluated geometry of one differential thread pair. The
// inner thread is the smaller of the two by (major, minor) diameter; relative
// rotation of the pair advances by EffectivePitchIn per turn.
type PairResult struct {
	Inner            Thread
	Outer            Thread
	EffectivePitchIn float64
	EffectiveTPI     float64
	// RadialClearanceIn is the radial gap available when the inner thread
	// nests inside the outer. Nil when the threads interfere and cannot nest.
	RadialClearanceIn *float64
}

// NewPairResult evaluates a thread pair. The order of the two arguments does
// not matter; the result is symmetric. Returns ErrEqualPitch when the threads
// share a pitch, since a differential pair then has no finite effective TPI.
func NewPairResult(a, b Thread) (PairResult, error) {
	if a.PitchIn == b.PitchIn {
		return PairResult{}, common.ErrEqualPitch
	}

	inner, outer := a, b
	if outer.Less(inner) {
		inner, outer = outer, inner
	}

	// Net advance per relative turn is the pitch difference; in TPI space
	// this is the harmonic difference 1/((1/tpiA) - (1/tpiB)).
	effectivePitch := math.Abs(a.PitchIn - b.PitchIn)

	result := PairResult{
		Inner:            inner,
		Outer:            outer,
		EffectivePitchIn: effectivePitch,
		EffectiveTPI:     1 / effectivePitch,
	}

	if clearance := (outer.MinorDiameterIn - inner.MajorDiameterIn) / 2; clearance >= 0 {
		result.RadialClearanceIn = &clearance
	}

	return result, nil
}

// CanNest reports whether the inner thread fits inside the outer one.
func (r PairResult) CanNest() bool {
	return r.RadialClearanceIn != nil
}

// SameNominalDiameter reports whether both threads share a major diameter.
func (r PairResult) SameNominalDiameter() bool {
	return r.Inner.MajorDiameterIn == r.Outer.MajorDiameterIn
}
