package export

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// rowProgress builds the progress bar shown while writing XLSX and PDF rows.
// It writes to stderr so exported files and stdout stay deterministic.
func rowProgress(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionClearOnFinish(),
	)
}
