// Package generator enumerates differential thread pairs from a thread
// catalog.
package generator

import (
	"iter"

	"github.com/mfields/diffthread/internal/model"
)

// Options filter the enumerated pairs. The zero value enumerates every
// unordered pair of catalog threads with differing pitch.
type Options struct {
	// Standard restricts both threads to one standard; empty admits any.
	Standard model.Standard
	// SameDiameter keeps only pairs sharing a nominal major diameter.
	SameDiameter bool
	// NestedOnly keeps only pairs whose threads can physically nest.
	NestedOnly bool
	// MinDiameterIn and MaxDiameterIn bound both major diameters, inclusive.
	// Zero means unbounded.
	MinDiameterIn float64
	MaxDiameterIn float64
}

// Pairs returns the differential pairs of the given threads as a lazy
// sequence: finite, restartable, and a pure function of its inputs, so
// iterating twice yields identical results. Equal-pitch pairs carry no
// differential action and are skipped.
func Pairs(threads []model.Thread, opts Options) iter.Seq[model.PairResult] {
	return func(yield func(model.PairResult) bool) {
		for i := 0; i < len(threads); i++ {
			a := threads[i]
			if !opts.admits(a) {
				continue
			}
			for j := i + 1; j < len(threads); j++ {
				b := threads[j]
				if !opts.admits(b) {
					continue
				}
				result, err := model.NewPairResult(a, b)
				if err != nil {
					// Equal pitch: no finite effective TPI.
					continue
				}
				if opts.SameDiameter && !result.SameNominalDiameter() {
					continue
				}
				if opts.NestedOnly && !result.CanNest() {
					continue
				}
				if !yield(result) {
					return
				}
			}
		}
	}
}

func (o Options) admits(t model.Thread) bool {
	if o.Standard != "" && t.Standard != o.Standard {
		return false
	}
	if o.MinDiameterIn > 0 && t.MajorDiameterIn < o.MinDiameterIn {
		return false
	}
	if o.MaxDiameterIn > 0 && t.MajorDiameterIn > o.MaxDiameterIn {
		return false
	}
	return true
}
