// Package objectberry defines the boundary through which raw canonical
// object bytes enter the object model library.
//
// The data model and the canonical binary codec live in
// [github.com/blockberries/objectberry/types]. Textual-transport (JSON)
// envelopes and their forgiving scalar decoders live in
// [github.com/blockberries/objectberry/query].
//
// This package holds only the [ObjectSource] boundary interface and its
// error taxonomy. Transport, caching, and retry policy belong to the layer
// that implements ObjectSource, never to this library.
package objectberry

import (
	"context"

	"github.com/blockberries/objectberry/types"
)

// ObjectSource produces the canonical bytes of on-chain objects.
//
// Implementations are external to this library (remote query layers,
// archives, test stores). The bytes handed back are opaque here: callers
// decode them with types.Object.UnmarshalBinary, which either yields a
// valid object or an explicit decode error.
//
// All methods MUST be safe for concurrent use.
type ObjectSource interface {
	// Object returns the canonical bytes of the latest known version
	// of the object with the given id.
	//
	// Returns a *NotFoundError if the object does not exist.
	Object(ctx context.Context, id types.ObjectId) ([]byte, error)

	// ObjectAt returns the canonical bytes of the object as it existed
	// at the given version.
	//
	// Versions are Lamport counters, not contiguous sequence numbers:
	// a missing version is a normal outcome, reported as *NotFoundError.
	ObjectAt(ctx context.Context, id types.ObjectId, version types.Version) ([]byte, error)
}
