// Package local provides an in-process, in-memory ObjectSource.
//
// For tests and for programs that already hold the objects they want to
// decode, Store serves canonical bytes with no transport at all. Every
// object enters through the canonical codec, so the store can only ever
// serve bytes that decode cleanly.
package local

import (
	"context"
	"sync"

	"github.com/blockberries/objectberry"
	"github.com/blockberries/objectberry/types"
)

// Compile-time interface check.
var _ objectberry.ObjectSource = (*Store)(nil)

// Store is a map-backed ObjectSource keyed by object id and version.
// It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	// objects holds canonical encodings per id per version.
	objects map[types.ObjectId]map[types.Version][]byte
	// latest tracks the highest stored version per id.
	latest map[types.ObjectId]types.Version
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		objects: make(map[types.ObjectId]map[types.Version][]byte),
		latest:  make(map[types.ObjectId]types.Version),
	}
}

// Put encodes o canonically and stores it under its derived id and
// version, replacing any previous bytes for that pair.
func (s *Store) Put(o *types.Object) error {
	id, err := o.ObjectId()
	if err != nil {
		return err
	}
	raw, err := o.MarshalBinary()
	if err != nil {
		return err
	}
	version := o.Version()

	s.mu.Lock()
	defer s.mu.Unlock()
	versions, ok := s.objects[id]
	if !ok {
		versions = make(map[types.Version][]byte)
		s.objects[id] = versions
	}
	versions[version] = raw
	if version >= s.latest[id] {
		s.latest[id] = version
	}
	return nil
}

// PutRaw decodes b, validating it, and stores it under the derived id
// and version. Decoding guarantees b is canonical, so the stored bytes
// are exactly what Put would have produced.
func (s *Store) PutRaw(b []byte) error {
	var o types.Object
	if err := o.UnmarshalBinary(b); err != nil {
		return err
	}
	return s.Put(&o)
}

// Object returns the canonical bytes of the latest stored version.
func (s *Store) Object(ctx context.Context, id types.ObjectId) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	versions, ok := s.objects[id]
	if !ok {
		return nil, objectberry.NewNotFoundError(id)
	}
	return cloneBytes(versions[s.latest[id]]), nil
}

// ObjectAt returns the canonical bytes of the object at version.
func (s *Store) ObjectAt(ctx context.Context, id types.ObjectId, version types.Version) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.objects[id][version]
	if !ok {
		return nil, objectberry.NewNotFoundAtError(id, version)
	}
	return cloneBytes(raw), nil
}

// Len reports how many object versions the store holds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, versions := range s.objects {
		n += len(versions)
	}
	return n
}

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}
