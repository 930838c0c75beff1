package lineproc

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

// Scanner reads integers and tokens from a byte stream.
//
// The end-of-stream flag is sticky: once any read hits io.EOF, EOF reports
// true for the rest of the scanner's life.
type Scanner struct {
	r   *bufio.Reader
	eof bool
}

// NewScanner wraps r in a buffered Scanner.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// EOF reports whether a read has reached the end of the stream.
func (s *Scanner) EOF() bool {
	return s.eof
}

// isSpace matches the C locale whitespace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// peekByte returns the next byte without consuming it.
func (s *Scanner) peekByte() (byte, error) {
	b, err := s.r.Peek(1)
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.eof = true
		}
		return 0, err
	}
	return b[0], nil
}

// SkipSpace consumes whitespace up to the next non-whitespace byte or the end
// of the stream. Reaching the end is not an error.
func (s *Scanner) SkipSpace() error {
	for {
		c, err := s.peekByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !isSpace(c) {
			return nil
		}
		if _, err := s.r.ReadByte(); err != nil {
			return err
		}
	}
}

// ReadInt skips leading whitespace and parses an optionally signed decimal
// int32. The byte that ends the number is left unread.
func (s *Scanner) ReadInt() (int32, error) {
	if err := s.SkipSpace(); err != nil {
		return 0, err
	}

	var text []byte
	c, err := s.peekByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, &ParseError{Field: "integer", Err: ErrUnexpectedEOF}
		}
		return 0, err
	}
	if c == '+' || c == '-' {
		text = append(text, c)
		_, _ = s.r.ReadByte()
	}

	for {
		c, err := s.peekByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		if !isDigit(c) {
			break
		}
		text = append(text, c)
		_, _ = s.r.ReadByte()
	}

	if len(text) == 0 || !isDigit(text[len(text)-1]) {
		return 0, &ParseError{Field: "integer", Text: s.describe(text), Err: ErrMalformedInt}
	}

	v, err := strconv.ParseInt(string(text), 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ParseError{Field: "integer", Text: string(text), Err: ErrIntRange}
		}
		return 0, &ParseError{Field: "integer", Text: string(text), Err: ErrMalformedInt}
	}
	return int32(v), nil
}

// describe returns the consumed text, or the next pending byte when nothing
// was consumed, for error messages.
func (s *Scanner) describe(consumed []byte) string {
	if len(consumed) > 0 {
		return string(consumed)
	}
	if c, err := s.peekByte(); err == nil {
		return string([]byte{c})
	}
	return ""
}

// ReadToken skips leading whitespace and reads at most TokenCapacity
// non-whitespace bytes into t. Any further bytes of the same word stay in the
// stream. It reports whether the word continued past the buffer, without
// consuming the continuation.
func (s *Scanner) ReadToken(t *Token) (truncated bool, err error) {
	if err := s.SkipSpace(); err != nil {
		return false, err
	}

	for {
		c, err := s.peekByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return false, err
		}
		if isSpace(c) {
			break
		}
		if t.Full() {
			truncated = true
			break
		}
		t.append(c)
		_, _ = s.r.ReadByte()
	}

	if t.n == 0 {
		return false, ErrMissingToken
	}
	return truncated, nil
}
