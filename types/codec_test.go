package types_test

import (
	"bytes"
	"reflect"
	"testing"

	berrytest "github.com/blockberries/objectberry/testing"
	"github.com/blockberries/objectberry/types"
)

// roundTrip encodes o, decodes it into a fresh Object, and checks the
// re-encoding is byte-identical.
func roundTrip(t *testing.T, o *types.Object) *types.Object {
	t.Helper()
	raw := berrytest.MustEncode(t, o)
	decoded := berrytest.MustDecode(t, raw)
	again := berrytest.MustEncode(t, decoded)
	if !bytes.Equal(raw, again) {
		t.Fatalf("re-encoding differs:\n got %x\nwant %x", again, raw)
	}
	return decoded
}

func TestFixtureRoundTrip(t *testing.T) {
	for _, name := range berrytest.FixtureNames {
		t.Run(name, func(t *testing.T) {
			raw := berrytest.Fixture(t, name)
			decoded := berrytest.MustDecode(t, raw)
			if got := berrytest.MustEncode(t, decoded); !bytes.Equal(got, raw) {
				t.Fatalf("fixture did not re-encode byte-identically:\n got %x\nwant %x", got, raw)
			}
		})
	}
}

func TestObjectRoundTrip(t *testing.T) {
	objects := map[string]*types.Object{
		"gas_coin": berrytest.GasCoinObject(t, berrytest.SeededAddress(0x01), 3, 12345),
		"struct": berrytest.StructObject(t, types.StructTag{
			Address: berrytest.SeededAddress(0x09),
			Module:  "gallery",
			Name:    "Piece",
		}, berrytest.SeededAddress(0x02), 981),
		"package": berrytest.PackageObject(t, berrytest.SeededAddress(0x03), 1),
	}
	for name, o := range objects {
		t.Run(name, func(t *testing.T) {
			decoded := roundTrip(t, o)
			if !reflect.DeepEqual(o, decoded) {
				t.Fatalf("decoded object differs:\n got %+v\nwant %+v", decoded, o)
			}
		})
	}
}

func TestObjectRoundTripAllOwners(t *testing.T) {
	owners := map[string]types.Owner{
		"address":           types.AddressOwner(berrytest.SeededAddress(0x10)),
		"object":            types.ObjectOwner(berrytest.SeededAddress(0x11)),
		"shared":            types.SharedOwner(77),
		"immutable":         types.ImmutableOwner(),
		"consensus_address": types.ConsensusAddressOwner(41, berrytest.SeededAddress(0x12)),
	}
	for name, owner := range owners {
		t.Run(name, func(t *testing.T) {
			s, err := types.NewMoveStruct(
				types.DefaultWellKnownTypes().GasCoinTag(),
				true, 5,
				berrytest.StructContents(berrytest.SeededAddress(0x20), 9),
			)
			if err != nil {
				t.Fatalf("NewMoveStruct failed: %v", err)
			}
			o, err := types.NewObject(types.StructData(s), owner, berrytest.SeededDigest(0x04), 10)
			if err != nil {
				t.Fatalf("NewObject failed: %v", err)
			}
			decoded := roundTrip(t, o)
			if decoded.Owner() != owner {
				t.Fatalf("owner mismatch: got %v, want %v", decoded.Owner(), owner)
			}
		})
	}
}

func TestGenesisObjectRoundTrip(t *testing.T) {
	s, err := types.NewMoveStruct(
		types.DefaultWellKnownTypes().GasCoinTag(),
		true, 1,
		berrytest.StructContents(berrytest.SeededAddress(0x30), 1_000_000),
	)
	if err != nil {
		t.Fatalf("NewMoveStruct failed: %v", err)
	}
	g, err := types.NewGenesisObject(types.StructData(s), types.SharedOwner(1))
	if err != nil {
		t.Fatalf("NewGenesisObject failed: %v", err)
	}

	raw, err := g.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	// Genesis objects are a distinct reduced shape: an envelope byte,
	// then data and owner with no trailer.
	if raw[0] != 0x00 {
		t.Fatalf("genesis encoding should lead with the envelope byte, got 0x%02x", raw[0])
	}

	var decoded types.GenesisObject
	if err := decoded.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	again, err := decoded.MarshalBinary()
	if err != nil {
		t.Fatalf("re-encode failed: %v", err)
	}
	if !bytes.Equal(raw, again) {
		t.Fatalf("genesis re-encoding differs:\n got %x\nwant %x", again, raw)
	}
	if !reflect.DeepEqual(&decoded, g) {
		t.Fatalf("decoded genesis object differs:\n got %+v\nwant %+v", &decoded, g)
	}
}

func TestObjectReferenceRoundTrip(t *testing.T) {
	ref := types.NewObjectReference(berrytest.SeededAddress(0x40), 99, berrytest.SeededDigest(0x05))
	raw, err := ref.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	var decoded types.ObjectReference
	if err := decoded.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if decoded != ref {
		t.Fatalf("reference round-trip failed: got %+v, want %+v", decoded, ref)
	}
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	raw := append(berrytest.Fixture(t, berrytest.FixtureGasCoin), 0x00)
	var o types.Object
	err := o.UnmarshalBinary(raw)
	if _, ok := types.IsMalformedEncoding(err); !ok {
		t.Fatalf("expected MalformedEncodingError for trailing bytes, got %v", err)
	}
}

func TestDecodeRejectsEveryTruncation(t *testing.T) {
	raw := berrytest.Fixture(t, berrytest.FixtureGasCoin)
	for n := 0; n < len(raw); n++ {
		var o types.Object
		err := o.UnmarshalBinary(raw[:n])
		if _, ok := types.IsMalformedEncoding(err); !ok {
			t.Fatalf("prefix of %d bytes: expected MalformedEncodingError, got %v", n, err)
		}
	}
}

func TestDecodeRejectsUnknownDataTag(t *testing.T) {
	var o types.Object
	err := o.UnmarshalBinary([]byte{0x07})
	m, ok := types.IsMalformedEncoding(err)
	if !ok {
		t.Fatalf("expected MalformedEncodingError, got %v", err)
	}
	if m.Entity != "object data" {
		t.Errorf("error should name the entity, got %q", m.Entity)
	}
}

func TestCodecInjectedTable(t *testing.T) {
	// A codec built over a different well-known table must expand the
	// 1-byte gas coin form to that table's tag, not the default one.
	wk := types.DefaultWellKnownTypes()
	wk.GasCoinInner = types.StructTag{
		Address: berrytest.SeededAddress(0x02),
		Module:  "alt",
		Name:    "ALT",
	}
	codec := types.NewCodec(wk)

	s, err := types.NewMoveStruct(wk.GasCoinTag(), true, 1,
		berrytest.StructContents(berrytest.SeededAddress(0x50), 5))
	if err != nil {
		t.Fatalf("NewMoveStruct failed: %v", err)
	}
	o, err := types.NewObject(types.StructData(s), types.ImmutableOwner(), berrytest.SeededDigest(0x06), 0)
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}

	raw, err := codec.EncodeObject(o)
	if err != nil {
		t.Fatalf("EncodeObject failed: %v", err)
	}
	decoded, err := codec.DecodeObject(raw)
	if err != nil {
		t.Fatalf("DecodeObject failed: %v", err)
	}
	ms, _ := decoded.AsStruct()
	if !ms.ObjectType().Equal(wk.GasCoinTag()) {
		t.Fatalf("expanded tag: got %s, want %s", ms.ObjectType(), wk.GasCoinTag())
	}

	// The default codec expands the same bytes to its own gas coin tag.
	stock := berrytest.MustDecode(t, raw)
	sms, _ := stock.AsStruct()
	if !sms.ObjectType().Equal(types.DefaultWellKnownTypes().GasCoinTag()) {
		t.Fatalf("default expansion: got %s", sms.ObjectType())
	}
}
