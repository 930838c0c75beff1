package cli

import (
	"io"
	"log/slog"
)

// configureLogging installs the default slog handler on w.
//
// Standard error also carries the too-long diagnostic, so only warnings are
// logged unless verbose output was requested.
func configureLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
