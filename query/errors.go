package query

import (
	"errors"
	"fmt"
)

// InvalidNumberLiteralError reports a textual number field that does not
// parse as its target numeric type.
type InvalidNumberLiteralError struct {
	// Literal is the offending field text.
	Literal string
	// Target names the numeric type the field should have parsed as.
	Target string
	Err    error
}

func (e *InvalidNumberLiteralError) Error() string {
	return fmt.Sprintf("invalid %s literal %s: %v", e.Target, e.Literal, e.Err)
}

func (e *InvalidNumberLiteralError) Unwrap() error { return e.Err }

// IsInvalidNumberLiteral checks whether an error is an
// InvalidNumberLiteralError and returns it.
func IsInvalidNumberLiteral(err error) (*InvalidNumberLiteralError, bool) {
	var n *InvalidNumberLiteralError
	if errors.As(err, &n) {
		return n, true
	}
	return nil, false
}

// InvalidByteStringError reports a textual byte field that is valid
// under neither the standard nor the URL-safe base64 alphabet.
type InvalidByteStringError struct {
	// Input is the offending field text.
	Input string
	Err   error
}

func (e *InvalidByteStringError) Error() string {
	return fmt.Sprintf("invalid base64 byte string %q: %v", e.Input, e.Err)
}

func (e *InvalidByteStringError) Unwrap() error { return e.Err }

// IsInvalidByteString checks whether an error is an
// InvalidByteStringError and returns it.
func IsInvalidByteString(err error) (*InvalidByteStringError, bool) {
	var b *InvalidByteStringError
	if errors.As(err, &b) {
		return b, true
	}
	return nil, false
}
