package lineproc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Detection selects how the processor decides that a token was too long.
type Detection string

const (
	// DetectEOF accepts the token only if the input was exhausted after it.
	DetectEOF Detection = "eof"

	// DetectDirect rejects the token only if the word continued past the buffer.
	DetectDirect Detection = "direct"
)

// ValidDetections lists the accepted detection modes.
var ValidDetections = []Detection{DetectEOF, DetectDirect}

// ParseDetection converts a flag value into a Detection.
func ParseDetection(s string) (Detection, error) {
	for _, d := range ValidDetections {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid detection mode %q: must be one of %v", s, ValidDetections)
}

// Options configures a single run.
type Options struct {
	// Detect defaults to DetectEOF when empty.
	Detect Detection
}

// Result is the outcome of a run.
type Result struct {
	A   int32 `json:"a"`
	B   int32 `json:"b"`
	Sum int32 `json:"sum"`

	// Token is the word as stored in the buffer, before reversal.
	Token string `json:"token"`

	// Reversed is set only when the token was accepted.
	Reversed string `json:"reversed,omitempty"`

	// TooLong reports that the diagnostic was written instead of the token.
	TooLong bool `json:"too_long"`

	// Truncated reports that the word continued past the buffer, whichever
	// detection mode was used.
	Truncated bool `json:"truncated"`
}

// Process runs the line processor over in. The sum and the reversed token go
// to out, the too-long diagnostic goes to errOut.
//
// A non-nil error means parsing or I/O failed; the returned Result then holds
// whatever was computed before the failure.
func Process(in io.Reader, out, errOut io.Writer, opts Options) (*Result, error) {
	detect := opts.Detect
	if detect == "" {
		detect = DetectEOF
	}

	res := &Result{}
	sc := NewScanner(in)

	a, err := sc.ReadInt()
	if err != nil {
		return res, labelField(err, "first integer")
	}
	b, err := sc.ReadInt()
	if err != nil {
		return res, labelField(err, "second integer")
	}
	res.A, res.B = a, b
	res.Sum = a + b // int32 wraparound
	slog.Debug("integers parsed", "a", a, "b", b, "sum", res.Sum)

	if _, err := fmt.Fprintf(out, "%d\n", res.Sum); err != nil {
		return res, fmt.Errorf("failed to write sum: %w", err)
	}

	if err := sc.SkipSpace(); err != nil {
		return res, fmt.Errorf("failed to read input: %w", err)
	}

	var tok Token
	truncated, err := sc.ReadToken(&tok)
	if err != nil {
		return res, labelField(err, "token")
	}
	res.Token = tok.String()
	res.Truncated = truncated

	if err := sc.SkipSpace(); err != nil {
		return res, fmt.Errorf("failed to read input: %w", err)
	}

	switch detect {
	case DetectDirect:
		res.TooLong = truncated
	default:
		res.TooLong = !sc.EOF()
	}
	slog.Debug("token read",
		"len", tok.Len(),
		"truncated", truncated,
		"eof", sc.EOF(),
		"detect", string(detect),
		"too_long", res.TooLong,
	)

	if res.TooLong {
		if _, err := io.WriteString(errOut, TooLongMessage); err != nil {
			return res, fmt.Errorf("failed to write diagnostic: %w", err)
		}
		return res, nil
	}

	tok.Reverse()
	res.Reversed = tok.String()
	if _, err := fmt.Fprintf(out, "%s\n", res.Reversed); err != nil {
		return res, fmt.Errorf("failed to write token: %w", err)
	}
	return res, nil
}

// labelField names the input field on a scanner error.
func labelField(err error, field string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Field = field
		return pe
	}
	if errors.Is(err, ErrMissingToken) {
		return &ParseError{Field: field, Err: err}
	}
	return fmt.Errorf("failed to read %s: %w", field, err)
}
