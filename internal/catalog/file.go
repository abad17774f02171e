package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mfields/diffthread/internal/common"
	"github.com/mfields/diffthread/internal/model"
)

// fileEntry is one thread in a user-supplied JSON catalog. The form field
// selects which of the remaining fields are required:
//
//	{"form": "metric", "major_mm": 6, "pitch_mm": 1}
//	{"form": "numbered", "number": 4, "tpi": 40}
//	{"form": "fractional", "numerator": 1, "denominator": 4, "tpi": 20}
type fileEntry struct {
	Form        string  `json:"form"`
	MajorMM     float64 `json:"major_mm,omitempty"`
	PitchMM     float64 `json:"pitch_mm,omitempty"`
	Number      int     `json:"number,omitempty"`
	Numerator   int     `json:"numerator,omitempty"`
	Denominator int     `json:"denominator,omitempty"`
	TPI         int     `json:"tpi,omitempty"`
}

// LoadFile reads and validates a JSON catalog file, replacing the built-in
// table.
func LoadFile(path string) ([]model.Thread, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries []fileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	threads := make([]model.Thread, 0, len(entries))
	for i, e := range entries {
		t, err := e.thread()
		if err != nil {
			return nil, fmt.Errorf("catalog %s entry %d: %w", path, i, err)
		}
		threads = append(threads, t)
	}

	if err := Validate(threads); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return threads, nil
}

func (e fileEntry) thread() (model.Thread, error) {
	switch model.Form(e.Form) {
	case model.FormMetric:
		return model.Metric(e.MajorMM, e.PitchMM), nil
	case model.FormNumbered:
		if e.TPI <= 0 {
			return model.Thread{}, fmt.Errorf("%w: non-positive tpi", common.ErrInvalidThread)
		}
		return model.Numbered(e.Number, e.TPI), nil
	case model.FormFractional:
		if e.TPI <= 0 {
			return model.Thread{}, fmt.Errorf("%w: non-positive tpi", common.ErrInvalidThread)
		}
		if e.Numerator <= 0 || e.Denominator <= 0 {
			return model.Thread{}, fmt.Errorf("%w: non-positive diameter fraction", common.ErrInvalidThread)
		}
		return model.Fractional(e.Numerator, e.Denominator, e.TPI), nil
	default:
		return model.Thread{}, fmt.Errorf("%w: unknown form %q", common.ErrInvalidThread, e.Form)
	}
}
