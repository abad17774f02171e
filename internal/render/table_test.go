package render

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfields/diffthread/internal/catalog"
	"github.com/mfields/diffthread/internal/generator"
	"github.com/mfields/diffthread/internal/model"
)

func samplePairs(t *testing.T) []model.PairResult {
	t.Helper()
	nesting, err := model.NewPairResult(model.Numbered(4, 40), model.Fractional(1, 4, 20))
	require.NoError(t, err)
	interfering, err := model.NewPairResult(model.Fractional(1, 4, 28), model.Fractional(1, 4, 32))
	require.NoError(t, err)
	return []model.PairResult{nesting, interfering}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, samplePairs(t)))

	out := buf.String()
	assert.Contains(t, out, "Inner")
	assert.Contains(t, out, "Eff. TPI")
	assert.Contains(t, out, "#4-40")
	assert.Contains(t, out, `1/4"-20`)
	// The interfering pair renders a dash for clearance.
	assert.Contains(t, out, "-")
	// 1/4-28 x 1/4-32 is the 224 TPI reference pair.
	assert.Contains(t, out, "224.00")
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, samplePairs(t)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header, rule, and one line per pair.
	require.Len(t, lines, 4)
	assert.Equal(t, "| Inner | Outer | Eff. Pitch (in) | Eff. TPI | Clearance (in) |", lines[0])
	assert.Equal(t, "| --- | --- | --- | --- | --- |", lines[1])
	for _, line := range lines[2:] {
		assert.True(t, strings.HasPrefix(line, "| "), "line %q", line)
		assert.True(t, strings.HasSuffix(line, " |"), "line %q", line)
	}
}

func TestThreads(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Threads(&buf, []model.Thread{model.Metric(6, 1), model.Numbered(4, 40)}))

	out := buf.String()
	assert.Contains(t, out, "Designation")
	assert.Contains(t, out, "M6-1")
	assert.Contains(t, out, "#4-40")
}

func TestFormatClearance(t *testing.T) {
	clearance := 0.0419
	assert.Equal(t, "0.042", FormatClearance(&clearance))
	assert.Equal(t, "-", FormatClearance(nil))
}

// Rendering the full catalog twice must produce byte-identical output.
func TestTextDeterministic(t *testing.T) {
	render := func() string {
		threads, err := catalog.Load()
		require.NoError(t, err)

		results := slices.Collect(generator.Pairs(threads, generator.Options{}))
		Sort(results, SortByPitch)

		var buf bytes.Buffer
		require.NoError(t, Text(&buf, results))
		return buf.String()
	}

	assert.Equal(t, render(), render())
}
