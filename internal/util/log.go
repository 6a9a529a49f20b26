// Package util hosts small helpers shared by the binaries.
package util

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds a timestamped stderr logger. Logs go to stderr so the
// interactive prompt transcript on stdout stays clean. Unknown levels fall
// back to info.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)
}
