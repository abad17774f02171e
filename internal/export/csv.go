package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mfields/diffthread/internal/model"
	"github.com/mfields/diffthread/internal/render"
)

var csvHeader = []string{"inner", "outer", "effective_pitch_in", "effective_tpi", "radial_clearance_in"}

// WriteCSV writes one row per pair. The clearance column is empty when the
// threads cannot nest.
func WriteCSV(w io.Writer, results []model.PairResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range results {
		clearance := ""
		if r.RadialClearanceIn != nil {
			clearance = fmt.Sprintf("%.3f", *r.RadialClearanceIn)
		}
		row := []string{
			r.Inner.Designation,
			r.Outer.Designation,
			render.FormatPitch(r.EffectivePitchIn),
			render.FormatTPI(r.EffectiveTPI),
			clearance,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
