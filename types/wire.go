package types

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/multiformats/go-varint"
)

// Wire primitives shared by all entity encoders and decoders.
//
// The grammar has four primitives: fixed-width little-endian u64, a
// strict one-byte bool, raw fixed-length byte runs, and uleb128 counts.
// Variant tags and lengths are uleb128; the reader rejects non-minimal
// encodings so that every value has exactly one byte representation.

type wireWriter struct {
	buf bytes.Buffer
}

func (w *wireWriter) bytes() []byte { return w.buf.Bytes() }

func (w *wireWriter) writeByte(b byte) { w.buf.WriteByte(b) }

func (w *wireWriter) writeFixed(b []byte) { w.buf.Write(b) }

func (w *wireWriter) writeBool(b bool) {
	if b {
		w.buf.WriteByte(0x01)
	} else {
		w.buf.WriteByte(0x00)
	}
}

func (w *wireWriter) writeU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *wireWriter) writeUleb(n uint64) {
	w.buf.Write(varint.ToUvarint(n))
}

func (w *wireWriter) writeVarBytes(b []byte) {
	w.writeUleb(uint64(len(b)))
	w.buf.Write(b)
}

func (w *wireWriter) writeAddress(a Address) { w.buf.Write(a[:]) }

// writeDigest emits a digest with its count prefix. Digests are
// length-prefixed on the wire even though the length is fixed.
func (w *wireWriter) writeDigest(d Digest) { w.writeVarBytes(d[:]) }

func (w *wireWriter) writeIdentifier(id Identifier) {
	w.writeVarBytes([]byte(id))
}

type wireReader struct {
	r *bytes.Reader
	// entity names the value currently being decoded, for error text.
	entity string
}

func newWireReader(data []byte) *wireReader {
	return &wireReader{r: bytes.NewReader(data)}
}

// pos is the byte offset of the next unread byte.
func (r *wireReader) pos() int {
	return int(r.r.Size()) - r.r.Len()
}

func (r *wireReader) malformed(reason string) error {
	return &MalformedEncodingError{Entity: r.entity, Offset: r.pos(), Reason: reason}
}

func (r *wireReader) readByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, r.malformed("truncated")
	}
	return b, nil
}

func (r *wireReader) readFixed(n int) ([]byte, error) {
	if n > r.r.Len() {
		return nil, r.malformed("truncated")
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, r.malformed("truncated")
	}
	return b, nil
}

func (r *wireReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, r.malformed("bool byte is neither 0 nor 1")
	}
}

func (r *wireReader) readU64() (uint64, error) {
	b, err := r.readFixed(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *wireReader) readUleb() (uint64, error) {
	n, err := varint.ReadUvarint(r.r)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, varint.ErrNotMinimal):
		return 0, r.malformed("non-minimal uleb128")
	case errors.Is(err, varint.ErrOverflow):
		return 0, r.malformed("uleb128 overflows")
	default:
		return 0, r.malformed("truncated")
	}
}

// readTag reads a variant tag. Tags share the uleb128 encoding, so a
// tag below 128 is the single leading byte the grammar describes.
func (r *wireReader) readTag() (uint64, error) {
	return r.readUleb()
}

// readLen reads a count prefix and bounds it against both the u32 wire
// limit and the bytes actually remaining, so a hostile length cannot
// force a huge allocation.
func (r *wireReader) readLen() (int, error) {
	n, err := r.readUleb()
	if err != nil {
		return 0, err
	}
	if n > math.MaxUint32 {
		return 0, r.malformed("count exceeds u32")
	}
	if n > uint64(r.r.Len()) {
		return 0, r.malformed("count exceeds remaining bytes")
	}
	return int(n), nil
}

func (r *wireReader) readVarBytes() ([]byte, error) {
	n, err := r.readLen()
	if err != nil {
		return nil, err
	}
	return r.readFixed(n)
}

func (r *wireReader) readAddress() (Address, error) {
	b, err := r.readFixed(AddressLength)
	if err != nil {
		return Address{}, err
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

func (r *wireReader) readDigest() (Digest, error) {
	b, err := r.readVarBytes()
	if err != nil {
		return Digest{}, err
	}
	if len(b) != DigestLength {
		return Digest{}, r.malformed("digest is not 32 bytes")
	}
	var d Digest
	copy(d[:], b)
	return d, nil
}

func (r *wireReader) readIdentifier() (Identifier, error) {
	b, err := r.readVarBytes()
	if err != nil {
		return "", err
	}
	id, err := NewIdentifier(string(b))
	if err != nil {
		return "", r.malformed(err.Error())
	}
	return id, nil
}

// finish rejects trailing bytes after a complete value.
func (r *wireReader) finish() error {
	if r.r.Len() != 0 {
		return r.malformed("trailing bytes after a complete value")
	}
	return nil
}
