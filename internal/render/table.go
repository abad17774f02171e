// Package render sorts evaluated thread pairs and renders them as terminal or
// markdown tables.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mfields/diffthread/internal/cli"
	"github.com/mfields/diffthread/internal/model"
)

var pairColumns = []string{"Inner", "Outer", "Eff. Pitch (in)", "Eff. TPI", "Clearance (in)"}

// Text writes the pair table in aligned terminal form. Given identical input
// the output is byte-identical across runs.
func Text(w io.Writer, results []model.PairResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := make([]string, len(pairColumns))
	for i, col := range pairColumns {
		header[i] = cli.TableHeaderStyle.Render(col)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	rule := make([]string, len(pairColumns))
	for i, col := range pairColumns {
		rule[i] = strings.Repeat("-", len(col))
	}
	fmt.Fprintln(tw, strings.Join(rule, "\t"))

	for _, r := range results {
		fmt.Fprintln(tw, strings.Join(pairRow(r), "\t"))
	}

	return tw.Flush()
}

// Markdown writes the pair table as a GitHub-style markdown table.
func Markdown(w io.Writer, results []model.PairResult) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(pairColumns, " | ")); err != nil {
		return err
	}
	rule := make([]string, len(pairColumns))
	for i := range rule {
		rule[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(rule, " | ")); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(pairRow(r), " | ")); err != nil {
			return err
		}
	}
	return nil
}

// Threads writes the catalog itself as an aligned terminal table.
func Threads(w io.Writer, threads []model.Thread) error {
	columns := []string{"Designation", "Standard", "Major (in)", "Pitch (in)", "TPI"}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = cli.TableHeaderStyle.Render(col)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	rule := make([]string, len(columns))
	for i, col := range columns {
		rule[i] = strings.Repeat("-", len(col))
	}
	fmt.Fprintln(tw, strings.Join(rule, "\t"))

	for _, t := range threads {
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.5f\t%.2f\n",
			t.Designation, t.Standard, t.MajorDiameterIn, t.PitchIn, t.TPI())
	}

	return tw.Flush()
}

func pairRow(r model.PairResult) []string {
	return []string{
		r.Inner.Designation,
		r.Outer.Designation,
		FormatPitch(r.EffectivePitchIn),
		FormatTPI(r.EffectiveTPI),
		FormatClearance(r.RadialClearanceIn),
	}
}

// FormatPitch renders an effective pitch in inches.
func FormatPitch(v float64) string {
	return fmt.Sprintf("%.5f", v)
}

// FormatTPI renders an effective TPI.
func FormatTPI(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatClearance renders a radial clearance in inches, or a dash when the
// threads cannot nest.
func FormatClearance(c *float64) string {
	if c == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", *c)
}
