package harness

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/lineproc/internal/lineproc"
	"github.com/roach88/lineproc/internal/testutil"
)

// recorder captures writes to one stream into the shared trace.
type recorder struct {
	stream string
	buf    *strings.Builder
	seq    *testutil.Sequencer
	result *Result
}

func (r *recorder) Write(p []byte) (int, error) {
	r.buf.Write(p)
	r.result.Trace = append(r.result.Trace, TraceEvent{
		Stream: r.stream,
		Data:   string(p),
		Seq:    r.seq.Next(),
	})
	return len(p), nil
}

// Run executes a scenario and returns the result.
//
// The returned error covers problems with the scenario itself; mismatches
// between expected and actual output are reported through Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	detect, err := scenario.Detection()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	result := NewResult()
	seq := testutil.NewSequencer()
	var stdout, stderr strings.Builder

	outcome, procErr := lineproc.Process(
		strings.NewReader(scenario.Input),
		&recorder{stream: StreamStdout, buf: &stdout, seq: seq, result: result},
		&recorder{stream: StreamStderr, buf: &stderr, seq: seq, result: result},
		lineproc.Options{Detect: detect},
	)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	result.Outcome = outcome
	if procErr != nil {
		result.Err = procErr.Error()
	}

	slog.Debug("scenario executed",
		"scenario", scenario.Name,
		"writes", len(result.Trace),
		"error", result.Err,
	)

	checkExpectations(scenario, result)
	return result, nil
}

// checkExpectations compares the captured output with the scenario's
// expect clause.
func checkExpectations(scenario *Scenario, result *Result) {
	want := scenario.Expect

	if result.Stdout != want.Stdout {
		result.AddError(fmt.Sprintf("stdout: expected %q, got %q", want.Stdout, result.Stdout))
	}
	if result.Stderr != want.Stderr {
		result.AddError(fmt.Sprintf("stderr: expected %q, got %q", want.Stderr, result.Stderr))
	}

	switch {
	case want.Error == "" && result.Err != "":
		result.AddError(fmt.Sprintf("unexpected error: %s", result.Err))
	case want.Error != "" && result.Err == "":
		result.AddError(fmt.Sprintf("expected error containing %q, got none", want.Error))
	case want.Error != "" && !strings.Contains(result.Err, want.Error):
		result.AddError(fmt.Sprintf("expected error containing %q, got %q", want.Error, result.Err))
	}

	if want.TooLong != nil && result.Outcome != nil && result.Outcome.TooLong != *want.TooLong {
		result.AddError(fmt.Sprintf("too_long: expected %v, got %v", *want.TooLong, result.Outcome.TooLong))
	}
}
