package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mfields/diffthread/internal/model"
	"github.com/mfields/diffthread/internal/render"
)

// pairJSON matches the reference JSON artifact: designations plus quantities
// formatted in inches. radial_clearance is null when the threads cannot nest.
type pairJSON struct {
	Threads         [2]string `json:"threads"`
	RadialClearance *string   `json:"radial_clearance"`
	EffectivePitch  string    `json:"effective_pitch"`
	EffectiveTPI    string    `json:"effective_tpi"`
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []model.PairResult) error {
	rows := make([]pairJSON, 0, len(results))
	for _, r := range results {
		row := pairJSON{
			Threads:        [2]string{r.Inner.Designation, r.Outer.Designation},
			EffectivePitch: render.FormatPitch(r.EffectivePitchIn) + " in",
			EffectiveTPI:   render.FormatTPI(r.EffectiveTPI),
		}
		if r.RadialClearanceIn != nil {
			clearance := fmt.Sprintf("%.3f in", *r.RadialClearanceIn)
			row.RadialClearance = &clearance
		}
		rows = append(rows, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode pairs: %w", err)
	}
	return nil
}
