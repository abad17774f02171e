package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfields/diffthread/internal/cli"
	"github.com/mfields/diffthread/internal/common"
	"github.com/mfields/diffthread/internal/export"
)

func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the pair table to a file",
		Long:  `Compute the differential pair table and write it as JSON, CSV, XLSX, or PDF.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatFlag, err := stringSetting(cmd, "format", "export.format")
			if err != nil {
				return err
			}
			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			results, err := computePairs(cmd)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return fmt.Errorf("no thread pairs match the given filters")
			}

			if outPath == "" {
				outPath = "differential_threads." + string(format)
			}
			outPath = expandPath(outPath)

			if err := export.Write(outPath, format, results); err != nil {
				common.LogError(err, "export failed", common.Fields{"path": outPath, "format": format})
				return fmt.Errorf("export failed: %w", err)
			}

			common.LogDebug("export complete", common.Fields{"path": outPath, "pairs": len(results)})
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Wrote %d pairs to %s", len(results), outPath)))
			return nil
		},
	}

	pairFlags(cmd)
	cmd.Flags().String("sort", "pitch", "sort key (pitch, diameter)")
	cmd.Flags().String("format", "json", "export format (json, csv, xlsx, pdf)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default: differential_threads.<format>)")

	return cmd
}
