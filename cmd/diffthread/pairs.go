package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mfields/diffthread/internal/cli"
	"github.com/mfields/diffthread/internal/generator"
	"github.com/mfields/diffthread/internal/model"
	"github.com/mfields/diffthread/internal/render"
)

func pairsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Tabulate differential thread pairs",
		Long: `Enumerate pairs of catalog threads with differing pitch, compute each pair's
effective pitch, effective TPI, and radial nesting clearance, and print the
sorted reference table.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := computePairs(cmd)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Println(cli.InfoStyle.Render("No thread pairs match the given filters."))
				return nil
			}

			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}
			if limit > 0 && limit < len(results) {
				results = results[:limit]
			}

			format, err := stringSetting(cmd, "format", "output.format")
			if err != nil {
				return err
			}
			switch format {
			case "text":
				return render.Text(os.Stdout, results)
			case "markdown":
				return render.Markdown(os.Stdout, results)
			default:
				return fmt.Errorf("invalid format %q (expected text or markdown)", format)
			}
		},
	}

	pairFlags(cmd)
	cmd.Flags().String("sort", string(render.SortByPitch), "sort key (pitch, diameter)")
	cmd.Flags().String("format", "text", "table format (text, markdown)")
	cmd.Flags().Int("limit", 0, "print at most this many pairs (0 = all)")

	return cmd
}

// computePairs runs the full pipeline shared by pairs and export: load the
// catalog, enumerate filtered pairs, and sort them.
func computePairs(cmd *cobra.Command) ([]model.PairResult, error) {
	threads, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return nil, err
	}

	sortFlag, err := stringSetting(cmd, "sort", "output.sort")
	if err != nil {
		return nil, err
	}
	sortKey, err := render.ParseSortKey(sortFlag)
	if err != nil {
		return nil, err
	}

	results := slices.Collect(generator.Pairs(threads, opts))
	render.Sort(results, sortKey)
	return results, nil
}
