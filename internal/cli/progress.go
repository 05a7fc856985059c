package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
)

// BatchProgress reports completed batch rows on a progress bar.
type BatchProgress struct {
	bar *progressbar.ProgressBar
}

// NewBatchProgress creates a progress bar for total rows writing to writer.
func NewBatchProgress(writer io.Writer, total int) *BatchProgress {
	if writer == nil {
		writer = os.Stderr
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Computing gauges...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
	return &BatchProgress{bar: bar}
}

// RowDone advances the bar by one row. It is safe for concurrent use.
func (p *BatchProgress) RowDone() {
	if err := p.bar.Add(1); err != nil {
		slog.Debug("Failed to update progress bar", "error", err)
	}
}

// Finish completes the bar.
func (p *BatchProgress) Finish() {
	if err := p.bar.Finish(); err != nil {
		slog.Debug("Failed to finish progress bar", "error", err)
	}
}

// Current returns the number of rows reported so far, or zero for a nil
// progress.
func (p *BatchProgress) Current() int64 {
	if p == nil {
		return 0
	}
	return p.bar.State().CurrentNum
}
