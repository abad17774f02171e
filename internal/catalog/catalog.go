// Package catalog holds the built-in table of standard thread designations
// and loads user-supplied catalog files. All catalog data is validated at
// load time; a malformed catalog is fatal.
package catalog

import (
	"fmt"

	"github.com/mfields/diffthread/internal/common"
	"github.com/mfields/diffthread/internal/model"
)

// Builtin returns the built-in thread table: ISO metric coarse and fine
// threads from M1 to M62, UTS numbered threads #0 to #12, and UTS fractional
// threads from 1/4" to 7/8".
func Builtin() []model.Thread {
	threads := make([]model.Thread, 0, len(isoThreads)+len(numberedThreads)+len(fractionalThreads))
	for _, t := range isoThreads {
		threads = append(threads, model.Metric(t.majorMM, t.pitchMM))
	}
	for _, t := range numberedThreads {
		threads = append(threads, model.Numbered(t.number, t.tpi))
	}
	for _, t := range fractionalThreads {
		threads = append(threads, model.Fractional(t.numerator, t.denominator, t.tpi))
	}
	return threads
}

// Load returns the validated built-in catalog.
func Load() ([]model.Thread, error) {
	threads := Builtin()
	if err := Validate(threads); err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return threads, nil
}

// Validate checks a thread set for consistency: every thread must validate
// individually, the set must be non-empty, and designations must be unique.
func Validate(threads []model.Thread) error {
	if len(threads) == 0 {
		return common.ErrEmptyCatalog
	}
	seen := make(map[string]struct{}, len(threads))
	for _, t := range threads {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, ok := seen[t.Designation]; ok {
			return fmt.Errorf("%w: %s", common.ErrDuplicateDesignation, t.Designation)
		}
		seen[t.Designation] = struct{}{}
	}
	return nil
}

type isoEntry struct {
	majorMM float64
	pitchMM float64
}

type numberedEntry struct {
	number int
	tpi    int
}

type fractionalEntry struct {
	numerator   int
	denominator int
	tpi         int
}

var isoThreads = []isoEntry{
	{1, 0.25}, {1, 0.2},
	{1.2, 0.25}, {1.2, 0.2},
	{1.4, 0.3}, {1.4, 0.2},
	{1.6, 0.35}, {1.6, 0.2},
	{1.8, 0.35}, {1.8, 0.2},
	{2, 0.4}, {2, 0.25},
	{2.5, 0.45}, {2.5, 0.35},
	{3, 0.5}, {3, 0.35},
	{3.5, 0.6}, {3.5, 0.35},
	{4, 0.7}, {4, 0.5},
	{5, 0.8}, {5, 0.5},
	{5.5, 0.9}, {5.5, 0.5},
	{6, 1.0}, {6, 0.75},
	{7, 1}, {7, 0.75},
	{8, 1.25}, {8, 1.0}, {8, 0.75},
	{10, 1.5}, {10, 1.25}, {10, 1.0},
	{12, 1.75}, {12, 1.5}, {12, 1.25},
	{14, 2.0}, {14, 1.5},
	{16, 2.0}, {16, 1.5},
	{18, 2.5}, {18, 2.0}, {18, 1.5},
	{20, 2.5}, {20, 2.0}, {20, 1.5},
	{22, 2.5}, {22, 2.0}, {22, 1.5},
	{24, 3.0}, {24, 2.0},
	{27, 3.0}, {27, 2.0},
	{30, 3.5}, {30, 2.0},
	{33, 3.5}, {33, 2.0},
	{36, 4.0}, {36, 3.0},
	{39, 4.0}, {39, 3.0},
	{42, 4.5}, {42, 3.0},
	{45, 4.5}, {45, 3.0},
	{48, 5.0}, {48, 3.0},
	{52, 5.0}, {52, 4.0},
	{56, 5.5}, {56, 4.0},
	{60, 5.5}, {60, 4.0},
	{62, 6.0}, {62, 4.0},
}

var numberedThreads = []numberedEntry{
	{0, 80},
	{1, 64}, {1, 72},
	{2, 56}, {2, 64},
	{3, 48}, {3, 56},
	{4, 40}, {4, 48},
	{5, 40}, {5, 44},
	{6, 32}, {6, 40},
	{8, 32}, {8, 36},
	{10, 24}, {10, 28},
	{12, 24}, {12, 38}, {12, 32},
}

var fractionalThreads = []fractionalEntry{
	{1, 4, 20}, {1, 4, 28}, {1, 4, 32},
	{5, 16, 18}, {5, 16, 24}, {5, 16, 32},
	{3, 8, 16}, {3, 8, 24}, {3, 8, 32},
	{7, 16, 14}, {7, 16, 20}, {7, 16, 28},
	{1, 2, 13}, {1, 2, 20}, {1, 2, 28},
	{9, 16, 12}, {9, 16, 18}, {9, 16, 24},
	{5, 8, 11}, {5, 8, 18}, {5, 8, 24},
	{3, 4, 10}, {3, 4, 16}, {3, 4, 20},
	{7, 8, 9}, {7, 8, 14}, {7, 8, 20},
}
