// Package logging configures console output for pacbuild.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns the stderr logger used across the pipeline. Quiet limits
// output to warnings and errors; verbose enables debug messages.
func New(quiet, verbose bool) *log.Logger {
	return NewWithWriter(os.Stderr, quiet, verbose)
}

// NewWithWriter is New with an explicit destination, for tests.
func NewWithWriter(w io.Writer, quiet, verbose bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case quiet:
		level = log.WarnLevel
	case verbose:
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "pacbuild",
		Level:  level,
	})
}
