package types

import (
	"errors"
	"fmt"
)

// MalformedEncodingError reports that a byte buffer is not a valid
// canonical encoding: an unknown tag, a truncated buffer, a non-minimal
// length prefix, map keys out of order, or trailing bytes after a
// complete value.
//
// Historical data is never reinterpreted: anything the grammar does not
// produce is rejected, never silently defaulted.
type MalformedEncodingError struct {
	// Entity names the value being decoded when the failure was found,
	// e.g. "owner" or "move package". May be empty for primitives.
	Entity string
	// Offset is the byte offset at which decoding failed.
	Offset int
	Reason string
}

func (e *MalformedEncodingError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("malformed %s encoding at byte %d: %s", e.Entity, e.Offset, e.Reason)
	}
	return fmt.Sprintf("malformed encoding at byte %d: %s", e.Offset, e.Reason)
}

// IsMalformedEncoding checks whether an error is a MalformedEncodingError
// and returns it.
func IsMalformedEncoding(err error) (*MalformedEncodingError, bool) {
	var m *MalformedEncodingError
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}

// InvalidObjectContentsError reports struct contents that cannot carry an
// object identity: shorter than the 32-byte id prefix, or a prefix that is
// not a well-formed address.
type InvalidObjectContentsError struct {
	Length int
	Reason string
}

func (e *InvalidObjectContentsError) Error() string {
	return fmt.Sprintf("invalid object contents (%d bytes): %s", e.Length, e.Reason)
}

// IsInvalidObjectContents checks whether an error is an
// InvalidObjectContentsError and returns it.
func IsInvalidObjectContents(err error) (*InvalidObjectContentsError, bool) {
	var c *InvalidObjectContentsError
	if errors.As(err, &c) {
		return c, true
	}
	return nil, false
}

// InvalidIdentifierError reports a name that is not a well-formed
// identifier.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q", e.Name)
}
