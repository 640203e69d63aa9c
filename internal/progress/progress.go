// Package progress reports frame rendering progress on the terminal.
package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"

	"fedcurve/internal/contract"
)

// BarReporter shows a terminal progress bar, one tick per rendered frame.
// Reporting is best-effort: bar errors are discarded so a broken terminal
// can never abort a render.
type BarReporter struct {
	bar *progressbar.ProgressBar
}

var _ contract.ProgressReporter = &BarReporter{} // Compile-time check

// NewBarReporter creates an idle reporter; the bar appears on Start.
func NewBarReporter() *BarReporter {
	return &BarReporter{}
}

// Start implements contract.ProgressReporter.
func (r *BarReporter) Start(total int, label string) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// FrameRendered implements contract.ProgressReporter.
func (r *BarReporter) FrameRendered(label string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(label)
	_ = r.bar.Add(1)
}

// Finish implements contract.ProgressReporter.
func (r *BarReporter) Finish() {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
}
