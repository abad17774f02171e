// Package export writes evaluated thread pairs to machine-readable files:
// JSON, CSV, XLSX, and PDF.
package export

import (
	"fmt"
	"os"

	"github.com/mfields/diffthread/internal/common"
	"github.com/mfields/diffthread/internal/model"
)

// Format selects an export file format.
type Format string

const (
	// FormatJSON writes a JSON array of pair objects.
	FormatJSON Format = "json"
	// FormatCSV writes one CSV row per pair.
	FormatCSV Format = "csv"
	// FormatXLSX writes an Excel workbook.
	FormatXLSX Format = "xlsx"
	// FormatPDF writes a printable PDF table.
	FormatPDF Format = "pdf"
)

// ParseFormat validates a format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatXLSX, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", common.ErrInvalidConfig, s)
	}
}

// Write renders results to path in the given format.
func Write(path string, format Format, results []model.PairResult) error {
	switch format {
	case FormatJSON, FormatCSV:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()

		if format == FormatJSON {
			if err := WriteJSON(f, results); err != nil {
				return err
			}
		} else {
			if err := WriteCSV(f, results); err != nil {
				return err
			}
		}
		return f.Close()
	case FormatXLSX:
		return WriteXLSX(path, results)
	case FormatPDF:
		return WritePDF(path, results)
	default:
		return fmt.Errorf("%w: unknown export format %q", common.ErrInvalidConfig, format)
	}
}
