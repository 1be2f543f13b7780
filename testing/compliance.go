package berrytest

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/blockberries/objectberry"
	"github.com/blockberries/objectberry/types"
)

// SeedableSource is an ObjectSource that can be populated directly,
// the shape a test target must have to run the compliance suite.
type SeedableSource interface {
	objectberry.ObjectSource
	Put(*types.Object) error
}

// RunSourceCompliance runs a standard compliance suite against an
// ObjectSource implementation to verify the boundary contract: served
// bytes are canonical, versions resolve exactly, and absence is
// reported as NotFoundError.
//
// The factory function should return a fresh, empty source for each
// test.
func RunSourceCompliance(t *testing.T, factory func() SeedableSource) {
	t.Helper()
	ctx := context.Background()

	t.Run("serves_canonical_bytes", func(t *testing.T) {
		src := factory()
		obj := GasCoinObject(t, SeededAddress(0x11), 7, 5_000_000)
		if err := src.Put(obj); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		id, _ := obj.ObjectId()
		raw, err := src.Object(ctx, id)
		if err != nil {
			t.Fatalf("Object failed: %v", err)
		}
		decoded := MustDecode(t, raw)
		if got := MustEncode(t, decoded); !bytes.Equal(got, raw) {
			t.Fatalf("served bytes are not canonical:\n got %x\nwant %x", got, raw)
		}
	})

	t.Run("latest_version_wins", func(t *testing.T) {
		src := factory()
		id := SeededAddress(0x22)
		// Lamport versions: deliberately non-contiguous.
		for _, v := range []types.Version{3, 19, 8} {
			if err := src.Put(StructObject(t, nftTag(), id, v)); err != nil {
				t.Fatalf("Put version %d failed: %v", v, err)
			}
		}
		raw, err := src.Object(ctx, id)
		if err != nil {
			t.Fatalf("Object failed: %v", err)
		}
		if got := MustDecode(t, raw).Version(); got != 19 {
			t.Fatalf("latest version: got %d, want 19", got)
		}
	})

	t.Run("exact_version_resolves", func(t *testing.T) {
		src := factory()
		id := SeededAddress(0x33)
		if err := src.Put(StructObject(t, nftTag(), id, 42)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		raw, err := src.ObjectAt(ctx, id, 42)
		if err != nil {
			t.Fatalf("ObjectAt failed: %v", err)
		}
		if got := MustDecode(t, raw).Version(); got != 42 {
			t.Fatalf("version: got %d, want 42", got)
		}
	})

	t.Run("missing_object_not_found", func(t *testing.T) {
		src := factory()
		_, err := src.Object(ctx, SeededAddress(0x44))
		nf, ok := objectberry.IsNotFound(err)
		if !ok {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if nf.Version != nil {
			t.Errorf("latest-version lookup should not record a version")
		}
	})

	t.Run("missing_version_not_found", func(t *testing.T) {
		src := factory()
		id := SeededAddress(0x55)
		if err := src.Put(StructObject(t, nftTag(), id, 5)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		_, err := src.ObjectAt(ctx, id, 6)
		nf, ok := objectberry.IsNotFound(err)
		if !ok {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if nf.Version == nil || *nf.Version != 6 {
			t.Errorf("NotFoundError should record the missing version")
		}
	})

	t.Run("concurrent_reads", func(t *testing.T) {
		src := factory()
		id := SeededAddress(0x66)
		if err := src.Put(StructObject(t, nftTag(), id, 9)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := src.Object(ctx, id); err != nil {
					t.Errorf("concurrent Object failed: %v", err)
				}
			}()
		}
		wg.Wait()
	})
}

// nftTag returns an arbitrary non-well-known struct type.
func nftTag() types.StructTag {
	return types.StructTag{
		Address: SeededAddress(0x61),
		Module:  "gallery",
		Name:    "Piece",
	}
}
