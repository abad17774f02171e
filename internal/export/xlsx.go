package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mfields/diffthread/internal/model"
)

const xlsxSheet = "Pairs"

// WriteXLSX writes an Excel workbook with one sheet of pair rows. Numeric
// columns hold raw inch values so the sheet stays sortable and filterable.
func WriteXLSX(path string, results []model.PairResult) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	header := []any{"Inner", "Outer", "Effective Pitch (in)", "Effective TPI", "Radial Clearance (in)"}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bar := rowProgress(len(results), "writing xlsx rows")
	for i, r := range results {
		row := []any{
			r.Inner.Designation,
			r.Outer.Designation,
			r.EffectivePitchIn,
			r.EffectiveTPI,
		}
		if r.RadialClearanceIn != nil {
			row = append(row, *r.RadialClearanceIn)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
		_ = bar.Add(1)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
