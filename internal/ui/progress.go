package ui

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Progress tracks languages processed for one source
type Progress struct {
	bar *pb.ProgressBar
}

// StartProgress starts a progress bar of total steps on w. A nil writer
// yields a no-op Progress.
func StartProgress(w io.Writer, source string, total int) *Progress {
	if w == nil {
		return &Progress{}
	}
	bar := pb.Full.New(total).
		SetWriter(w).
		Set("prefix", source+" ").
		Start()
	return &Progress{bar: bar}
}

// Increment advances the bar by one step
func (p *Progress) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

// Finish stops the bar
func (p *Progress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
