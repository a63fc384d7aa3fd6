package ui

import (
	"io"

	"github.com/pterm/pterm"
)

// NewLogger returns a pterm logger writing to w, at debug level when debug is set
func NewLogger(w io.Writer, debug bool) *pterm.Logger {
	level := pterm.LogLevelInfo
	if debug {
		level = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.WithWriter(w).WithLevel(level)
}
