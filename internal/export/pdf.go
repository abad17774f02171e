package export

import (
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/mfields/diffthread/internal/model"
	"github.com/mfields/diffthread/internal/render"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"Inner", 30},
	{"Outer", 30},
	{"Eff. Pitch (in)", 35},
	{"Eff. TPI", 30},
	{"Clearance (in)", 35},
}

// WritePDF writes a printable A4 table of the pair results.
func WritePDF(path string, results []model.PairResult) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Differential Thread Pairs")
	pdf.Ln(12)

	writePDFHeader(pdf)

	bar := rowProgress(len(results), "writing pdf rows")
	pdf.SetFont("Helvetica", "", 9)
	for _, r := range results {
		if pdf.GetY() > 275 {
			pdf.AddPage()
			writePDFHeader(pdf)
			pdf.SetFont("Helvetica", "", 9)
		}
		cells := []string{
			r.Inner.Designation,
			r.Outer.Designation,
			render.FormatPitch(r.EffectivePitchIn),
			render.FormatTPI(r.EffectiveTPI),
			render.FormatClearance(r.RadialClearanceIn),
		}
		for i, c := range cells {
			pdf.CellFormat(pdfColumns[i].width, 5, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		_ = bar.Add(1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writePDFHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 6, col.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}
