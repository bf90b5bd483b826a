// internal/logx/logx.go
package logx

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns the logger used across the app. Progress goes to stderr
// at Info level; quiet raises the threshold to errors only.
func New(w io.Writer, quiet bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "synblocks",
	})
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}
