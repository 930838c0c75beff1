package harness

import "github.com/roach88/lineproc/internal/lineproc"

// Stream names used in trace events.
const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

// TraceEvent records one write to a captured stream.
type TraceEvent struct {
	Stream string `json:"stream"`
	Data   string `json:"data"`
	Seq    int64  `json:"seq"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every expectation matched.
	Pass bool `json:"pass"`

	// Stdout and Stderr hold everything written to each stream.
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`

	// Trace contains every write in order.
	Trace []TraceEvent `json:"trace"`

	// Err is the processor's error text, empty on success.
	Err string `json:"error,omitempty"`

	// Outcome is the processor's result.
	Outcome *lineproc.Result `json:"outcome,omitempty"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
