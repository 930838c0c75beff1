// Package lineproc implements the line processor: it reads two integers,
// prints their sum, reads one bounded token and prints it reversed.
//
// PROCESSING:
//
// A run is a single linear pass over the input stream:
//  1. Two integers are parsed (C-locale whitespace separated, optional sign).
//  2. Their int32 sum is written to the output stream.
//  3. Whitespace is skipped and at most TokenCapacity bytes are read into a
//     fixed Token buffer. Extra bytes of the same token stay unread.
//  4. Whitespace is skipped again and the too-long decision is made.
//
// DETECTION MODES:
//
// DetectEOF is the compatible mode: the token is accepted only if the stream
// reported end of input by the time the trailing whitespace was skipped. A
// short token followed by more input is therefore reported as too long.
//
// DetectDirect looks at the byte right after the last stored byte instead.
// The token is too long only when that byte continues the token.
//
// ERRORS:
//
// Parse and read failures are returned as *ParseError wrapping one of the
// sentinel errors, so callers can use errors.Is. The too-long condition is
// not an error: it is reported through Result.TooLong after the diagnostic
// has been written to the error stream.
package lineproc
