package types

import (
	"encoding/json"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// DigestLength is the byte length of a content digest.
const DigestLength = 32

// Digest is an opaque fixed-length content hash.
type Digest [DigestLength]byte

// ObjectDigest is the digest of an object's canonical encoding.
type ObjectDigest = Digest

// TransactionDigest is the digest of the transaction that created or last
// mutated an object.
type TransactionDigest = Digest

// DigestBytes computes the content digest of a canonical byte buffer.
func DigestBytes(b []byte) Digest {
	return blake2b.Sum256(b)
}

// DigestFromBytes builds a Digest from exactly DigestLength raw bytes.
func DigestFromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != DigestLength {
		return d, fmt.Errorf("digest must be %d bytes, got %d", DigestLength, len(b))
	}
	copy(d[:], b)
	return d, nil
}

// DigestFromBase58 parses the textual digest form.
func DigestFromBase58(s string) (Digest, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Digest{}, fmt.Errorf("invalid digest %q: %w", s, err)
	}
	return DigestFromBytes(raw)
}

// String returns the base58 textual form.
func (d Digest) String() string {
	return base58.Encode(d[:])
}

// MarshalJSON encodes the digest in its textual-transport form.
func (d Digest) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes the textual-transport form.
func (d *Digest) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := DigestFromBase58(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
