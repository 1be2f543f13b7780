package local_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/blockberries/objectberry"
	"github.com/blockberries/objectberry/local"
	berrytest "github.com/blockberries/objectberry/testing"
	"github.com/blockberries/objectberry/types"
)

func TestStoreCompliance(t *testing.T) {
	berrytest.RunSourceCompliance(t, func() berrytest.SeedableSource {
		return local.NewStore()
	})
}

func TestPutRawFixtures(t *testing.T) {
	ctx := context.Background()
	s := local.NewStore()

	for _, name := range berrytest.FixtureNames {
		if err := s.PutRaw(berrytest.Fixture(t, name)); err != nil {
			t.Fatalf("PutRaw(%s) failed: %v", name, err)
		}
	}
	if s.Len() != len(berrytest.FixtureNames) {
		t.Fatalf("Len = %d, want %d", s.Len(), len(berrytest.FixtureNames))
	}

	for _, name := range berrytest.FixtureNames {
		raw := berrytest.Fixture(t, name)
		id, err := berrytest.MustDecode(t, raw).ObjectId()
		if err != nil {
			t.Fatalf("ObjectId failed: %v", err)
		}
		got, err := s.Object(ctx, id)
		if err != nil {
			t.Fatalf("Object(%s) failed: %v", name, err)
		}
		if !bytes.Equal(got, raw) {
			t.Fatalf("served bytes for %s differ from the stored encoding", name)
		}
	}
}

func TestPutRawRejectsMalformedBytes(t *testing.T) {
	s := local.NewStore()
	raw := berrytest.Fixture(t, berrytest.FixtureGasCoin)
	err := s.PutRaw(raw[:len(raw)-1])
	if _, ok := types.IsMalformedEncoding(err); !ok {
		t.Fatalf("expected MalformedEncodingError, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("malformed bytes were stored")
	}
}

func TestPutReplacesVersion(t *testing.T) {
	ctx := context.Background()
	s := local.NewStore()
	id := berrytest.SeededAddress(0x71)

	if err := s.Put(berrytest.GasCoinObject(t, id, 5, 100)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(berrytest.GasCoinObject(t, id, 5, 250)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	raw, err := s.ObjectAt(ctx, id, 5)
	if err != nil {
		t.Fatalf("ObjectAt failed: %v", err)
	}
	decoded := berrytest.MustDecode(t, raw)
	ms, ok := decoded.AsStruct()
	if !ok {
		t.Fatal("stored object is not a struct")
	}
	// The balance lives after the 32-byte id prefix.
	if got := ms.Contents()[types.AddressLength]; got != 250 {
		t.Fatalf("balance byte = %d, want 250", got)
	}
}

func TestServedBytesAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := local.NewStore()
	id := berrytest.SeededAddress(0x72)
	if err := s.Put(berrytest.GasCoinObject(t, id, 1, 10)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	first, err := s.Object(ctx, id)
	if err != nil {
		t.Fatalf("Object failed: %v", err)
	}
	first[0] ^= 0xff

	second, err := s.Object(ctx, id)
	if err != nil {
		t.Fatalf("Object failed: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Fatal("mutating a served buffer reached the store")
	}
}

func TestLookupHonorsContext(t *testing.T) {
	s := local.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Object(ctx, berrytest.SeededAddress(0x73))
	if err != context.Canceled {
		t.Fatalf("Object under a canceled context: got %v", err)
	}
	if _, ok := objectberry.IsNotFound(err); ok {
		t.Fatal("context cancellation misreported as not-found")
	}
	if _, err := s.ObjectAt(ctx, berrytest.SeededAddress(0x73), 1); err != context.Canceled {
		t.Fatalf("ObjectAt under a canceled context: got %v", err)
	}
}
