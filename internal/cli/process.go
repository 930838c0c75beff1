package cli

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/lineproc/internal/lineproc"
)

// ProcessOptions holds flags for processing standard input.
type ProcessOptions struct {
	*RootOptions
	Detect        string
	FailOnTooLong bool

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs RunIDGenerator
}

func runProcess(opts *ProcessOptions, cmd *cobra.Command) error {
	detect, err := lineproc.ParseDetection(opts.Detect)
	if err != nil {
		return WrapExitError(ExitCommandError, "", err)
	}

	gen := opts.RunIDs
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	runID := gen.Generate()

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   runID,
	}

	// JSON mode reports everything in a single response document.
	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		out = io.Discard
	}

	slog.Info("processing input", "run_id", runID, "detect", string(detect))
	res, err := lineproc.Process(cmd.InOrStdin(), out, cmd.ErrOrStderr(), lineproc.Options{
		Detect: detect,
	})
	if err != nil {
		slog.Debug("processing failed", "run_id", runID, "error", err)
		if opts.Format == "json" {
			if encErr := formatter.Error(errorCode(err), err.Error(), res); encErr != nil {
				return WrapExitError(ExitCommandError, "failed to write response", encErr)
			}
			return NewExitError(ExitCommandError, "")
		}
		return WrapExitError(ExitCommandError, "failed to process input", err)
	}
	slog.Info("input processed", "run_id", runID, "sum", res.Sum, "too_long", res.TooLong)

	if opts.Format == "json" {
		var encErr error
		if res.TooLong {
			encErr = formatter.Error(CodeTooLong, strings.TrimSuffix(lineproc.TooLongMessage, "\n"), res)
		} else {
			encErr = formatter.Success(res)
		}
		if encErr != nil {
			return WrapExitError(ExitCommandError, "failed to write response", encErr)
		}
	}

	if res.TooLong && opts.FailOnTooLong {
		return NewExitError(ExitFailure, "")
	}
	return nil
}

// errorCode maps a processing error to its JSON error code.
func errorCode(err error) string {
	var pe *lineproc.ParseError
	if errors.As(err, &pe) {
		return CodeParse
	}
	return CodeInput
}
