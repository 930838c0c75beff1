package lineproc

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by the scanner and processor.
var (
	ErrMalformedInt  = errors.New("malformed integer")
	ErrIntRange      = errors.New("integer out of range")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrMissingToken  = errors.New("missing token")
)

// TooLongMessage is written to the error stream when the token is rejected.
const TooLongMessage = "String is too long\n"

// ParseError describes which input field failed to parse.
type ParseError struct {
	// Field names the input field ("first integer", "second integer", "token").
	Field string

	// Text is the offending input, if any was consumed.
	Text string

	// Err is one of the sentinel errors above, or an I/O error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%s %q: %v", e.Field, e.Text, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
