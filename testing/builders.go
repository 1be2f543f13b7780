package berrytest

import (
	"encoding/binary"
	"testing"

	"github.com/blockberries/objectberry/types"
)

// SeededAddress returns a deterministic address whose bytes are all
// seed. Distinct seeds give distinct, ordered addresses.
func SeededAddress(seed byte) types.Address {
	var a types.Address
	for i := range a {
		a[i] = seed
	}
	return a
}

// SeededDigest returns a deterministic digest derived from seed.
func SeededDigest(seed byte) types.Digest {
	return types.DigestBytes([]byte{seed})
}

// StructContents builds well-formed struct contents: the given id
// prefix followed by a little-endian u64 payload, the shape of a coin's
// balance field.
func StructContents(id types.ObjectId, balance uint64) []byte {
	contents := make([]byte, types.AddressLength+8)
	copy(contents, id[:])
	binary.LittleEndian.PutUint64(contents[types.AddressLength:], balance)
	return contents
}

// StructObject builds an address-owned struct object of the given type.
func StructObject(t testing.TB, tag types.StructTag, id types.ObjectId, version types.Version) *types.Object {
	t.Helper()
	s, err := types.NewMoveStruct(tag, false, version, StructContents(id, version*100))
	if err != nil {
		t.Fatalf("NewMoveStruct failed: %v", err)
	}
	o, err := types.NewObject(types.StructData(s), types.AddressOwner(SeededAddress(0xAA)), SeededDigest(0x01), 0)
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}
	return o
}

// GasCoinObject builds a native gas coin object with the given balance.
func GasCoinObject(t testing.TB, id types.ObjectId, version types.Version, balance uint64) *types.Object {
	t.Helper()
	wk := types.DefaultWellKnownTypes()
	s, err := types.NewMoveStruct(wk.GasCoinTag(), true, version, StructContents(id, balance))
	if err != nil {
		t.Fatalf("NewMoveStruct failed: %v", err)
	}
	o, err := types.NewObject(types.StructData(s), types.AddressOwner(SeededAddress(0xAB)), SeededDigest(0x02), 988000)
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}
	return o
}

// PackageObject builds an immutable one-module package object.
func PackageObject(t testing.TB, id types.ObjectId, version types.Version) *types.Object {
	t.Helper()
	pkg := &types.MovePackage{
		Id:      id,
		Version: version,
		Modules: map[types.Identifier][]byte{
			"example": {0xA1, 0x1C, 0xEB, 0x0B},
		},
		TypeOriginTable: []types.TypeOrigin{
			{ModuleName: "example", StructName: "Example", Package: id},
		},
		LinkageTable: map[types.ObjectId]types.UpgradeInfo{},
	}
	o, err := types.NewObject(types.PackageData(pkg), types.ImmutableOwner(), SeededDigest(0x03), 0)
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}
	return o
}

// MustDecode decodes canonical object bytes or fails the test.
func MustDecode(t testing.TB, raw []byte) *types.Object {
	t.Helper()
	var o types.Object
	if err := o.UnmarshalBinary(raw); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	return &o
}

// MustEncode encodes an object or fails the test.
func MustEncode(t testing.TB, o *types.Object) []byte {
	t.Helper()
	raw, err := o.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	return raw
}
