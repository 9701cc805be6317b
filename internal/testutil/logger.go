package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger whose output goes nowhere. Keeps test
// output free of request logs.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
