// Package model defines thread geometry types and the pure arithmetic used to
// evaluate differential thread pairs.
package model

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mfields/diffthread/internal/common"
)

// Standard identifies the thread standard a designation belongs to.
type Standard string

const (
	// StandardUTS represents the Unified Thread Standard (inch threads).
	StandardUTS Standard = "UTS"
	// StandardISO represents ISO metric threads.
	StandardISO Standard = "ISO"
)

// Form identifies how a thread's major diameter is designated.
type Form string

const (
	// FormMetric designates threads by millimeter diameter and pitch (M6-1).
	FormMetric Form = "metric"
	// FormNumbered designates UTS threads by gauge number (#4-40).
	FormNumbered Form = "numbered"
	// FormFractional designates UTS threads by fractional inch diameter (1/4"-20).
	FormFractional Form = "fractional"
)

const mmPerInch = 25.4

// Engaged thread height for the standard 60 degree form, per unit pitch.
var minorDiameterFactor = 5 * math.Sqrt(3) / 8

// Thread is a single standard screw thread. All geometry is stored in inches;
// the designation keeps the units of the originating standard. Immutable once
// constructed.
type Thread struct {
	Designation     string
	Standard        Standard
	Form            Form
	MajorDiameterIn float64
	PitchIn         float64
	MinorDiameterIn float64
}

// Metric constructs an ISO metric thread from a major diameter and pitch in
// millimeters.
func Metric(majorMM, pitchMM float64) Thread {
	return newThread(
		fmt.Sprintf("M%s-%s", formatMM(majorMM), formatMM(pitchMM)),
		StandardISO, FormMetric,
		majorMM/mmPerInch, pitchMM/mmPerInch,
	)
}

// Numbered constructs a UTS thread from a gauge number and TPI. Gauge numbers
// map to major diameters as 0.060" + 0.013" per number.
func Numbered(number, tpi int) Thread {
	return newThread(
		fmt.Sprintf("#%d-%d", number, tpi),
		StandardUTS, FormNumbered,
		0.060+0.013*float64(number), 1/float64(tpi),
	)
}

// Fractional constructs a UTS thread from a fractional inch major diameter and
// TPI. The fraction is reduced for the designation.
func Fractional(numerator, denominator, tpi int) Thread {
	n, d := reduce(numerator, denominator)
	return newThread(
		fmt.Sprintf("%d/%d\"-%d", n, d, tpi),
		StandardUTS, FormFractional,
		float64(numerator)/float64(denominator), 1/float64(tpi),
	)
}

func newThread(designation string, standard Standard, form Form, majorIn, pitchIn float64) Thread {
	return Thread{
		Designation:     designation,
		Standard:        standard,
		Form:            form,
		MajorDiameterIn: majorIn,
		PitchIn:         pitchIn,
		MinorDiameterIn: majorIn - minorDiameterFactor*pitchIn,
	}
}

// TPI returns the thread's turns per inch.
func (t Thread) TPI() float64 {
	return 1 / t.PitchIn
}

// Less orders threads by major diameter, then minor diameter. Used both for
// catalog ordering and to decide which thread of a pair nests inside the other.
func (t Thread) Less(other Thread) bool {
	if t.MajorDiameterIn != other.MajorDiameterIn {
		return t.MajorDiameterIn < other.MajorDiameterIn
	}
	return t.MinorDiameterIn < other.MinorDiameterIn
}

// Validate checks the thread's geometry for consistency. All failures are
// fatal: a thread that fails validation must not enter the catalog.
func (t Thread) Validate() error {
	if t.Designation == "" {
		return fmt.Errorf("%w: empty designation", common.ErrInvalidThread)
	}
	switch t.Standard {
	case StandardUTS, StandardISO:
	default:
		return fmt.Errorf("%w: %q in thread %s", common.ErrUnknownStandard, t.Standard, t.Designation)
	}
	if t.MajorDiameterIn <= 0 {
		return fmt.Errorf("%w: %s has non-positive major diameter", common.ErrInvalidThread, t.Designation)
	}
	if t.PitchIn <= 0 {
		return fmt.Errorf("%w: %s has non-positive pitch", common.ErrInvalidThread, t.Designation)
	}
	if t.MinorDiameterIn <= 0 {
		return fmt.Errorf("%w: %s pitch too coarse for its diameter", common.ErrInvalidThread, t.Designation)
	}
	return nil
}

// formatMM renders a millimeter value the way thread tables do: no exponent,
// no trailing zeros (1, 1.2, 0.25).
func formatMM(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func reduce(n, d int) (int, int) {
	g := gcd(n, d)
	if g == 0 {
		return n, d
	}
	return n / g, d / g
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
