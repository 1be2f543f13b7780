// Package types defines the canonical object model of the chain and its
// binary wire codec.
//
// These are plain Go values with validating constructors. The wire format
// is canonical: every value has exactly one valid byte representation, and
// the decoder rejects anything else — unknown tags, truncated buffers,
// trailing bytes, non-minimal length prefixes, out-of-order map keys.
// Independently written encoders across the network must agree
// byte-for-byte, so determinism here is a protocol requirement, not a
// convenience.
//
// All operations are pure, synchronous transforms over in-memory values
// and byte buffers. Nothing in this package performs I/O or holds shared
// mutable state; any number of calls may run concurrently.
package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// AddressLength is the byte length of a chain address.
const AddressLength = 32

// Address is a 32-byte account or object address.
type Address [AddressLength]byte

// ObjectId is the 32-byte content-addressable identifier of an object.
// It shares the address representation.
type ObjectId = Address

// Version is a Lamport-style counter incremented each time a transaction
// takes the object as a mutable input. It is NOT a sequence number:
// successive versions of one object are ordered but not contiguous.
type Version = uint64

// AddressFromBytes builds an Address from exactly AddressLength bytes.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("address must be %d bytes, got %d", AddressLength, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// AddressFromHex parses an address from a hex string. The 0x prefix is
// optional and short strings are left-padded with zeros, so "0x2" is the
// well-known framework address.
func AddressFromHex(s string) (Address, error) {
	var a Address
	h := strings.TrimPrefix(s, "0x")
	if len(h) == 0 || len(h) > 2*AddressLength {
		return a, fmt.Errorf("invalid address %q", s)
	}
	if len(h)%2 == 1 {
		h = "0" + h
	}
	raw, err := hex.DecodeString(h)
	if err != nil {
		return a, fmt.Errorf("invalid address %q: %w", s, err)
	}
	copy(a[AddressLength-len(raw):], raw)
	return a, nil
}

// String returns the full-width 0x-prefixed lowercase hex form.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalJSON encodes the address in its textual-transport form,
// a full-width hex string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes the textual-transport form.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := AddressFromHex(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Cmp compares two addresses lexicographically, the order map-valued
// wire fields are emitted in.
func (a Address) Cmp(b Address) int {
	return bytes.Compare(a[:], b[:])
}
