package types_test

import (
	"bytes"
	"reflect"
	"testing"

	berrytest "github.com/blockberries/objectberry/testing"
	"github.com/blockberries/objectberry/types"
)

func testPackage(id types.ObjectId) *types.MovePackage {
	return &types.MovePackage{
		Id:      id,
		Version: 2,
		Modules: map[types.Identifier][]byte{
			"pool":    {0x01, 0x02},
			"curve":   {0x03},
			"rewards": {0x04, 0x05, 0x06},
		},
		TypeOriginTable: []types.TypeOrigin{
			{ModuleName: "pool", StructName: "Pool", Package: id},
			{ModuleName: "curve", StructName: "Curve", Package: id},
		},
		LinkageTable: map[types.ObjectId]types.UpgradeInfo{
			berrytest.SeededAddress(0x01): {UpgradedId: berrytest.SeededAddress(0x11), UpgradedVersion: 2},
			berrytest.SeededAddress(0x02): {UpgradedId: berrytest.SeededAddress(0x12), UpgradedVersion: 5},
		},
	}
}

func packageObject(t *testing.T, p *types.MovePackage) *types.Object {
	t.Helper()
	o, err := types.NewObject(types.PackageData(p), types.ImmutableOwner(), berrytest.SeededDigest(0x01), 0)
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}
	return o
}

// Two packages with the same logical tables must encode byte-identically
// no matter how their maps were populated.
func TestPackageEncodingIsOrderIndependent(t *testing.T) {
	id := berrytest.SeededAddress(0x61)

	a := testPackage(id)

	b := &types.MovePackage{
		Id:              id,
		Version:         2,
		Modules:         map[types.Identifier][]byte{},
		TypeOriginTable: a.TypeOriginTable,
		LinkageTable:    map[types.ObjectId]types.UpgradeInfo{},
	}
	// Populate in the reverse of a's literal order.
	for _, name := range []types.Identifier{"rewards", "pool", "curve"} {
		b.Modules[name] = a.Modules[name]
	}
	for _, dep := range []types.ObjectId{berrytest.SeededAddress(0x02), berrytest.SeededAddress(0x01)} {
		b.LinkageTable[dep] = a.LinkageTable[dep]
	}

	rawA := berrytest.MustEncode(t, packageObject(t, a))
	rawB := berrytest.MustEncode(t, packageObject(t, b))
	if !bytes.Equal(rawA, rawB) {
		t.Fatalf("encodings differ:\n a %x\n b %x", rawA, rawB)
	}

	// And repeated encodings of the same value are stable.
	if again := berrytest.MustEncode(t, packageObject(t, a)); !bytes.Equal(rawA, again) {
		t.Fatalf("re-encoding differs:\n got %x\nwant %x", again, rawA)
	}
}

func TestPackageRoundTrip(t *testing.T) {
	o := packageObject(t, testPackage(berrytest.SeededAddress(0x62)))
	raw := berrytest.MustEncode(t, o)
	decoded := berrytest.MustDecode(t, raw)
	if !reflect.DeepEqual(o, decoded) {
		t.Fatalf("decoded package differs:\n got %+v\nwant %+v", decoded, o)
	}
	if again := berrytest.MustEncode(t, decoded); !bytes.Equal(raw, again) {
		t.Fatalf("re-encoding differs:\n got %x\nwant %x", again, raw)
	}
}

func TestPackageFixtureHasExpectedShape(t *testing.T) {
	o := berrytest.MustDecode(t, berrytest.Fixture(t, berrytest.FixturePackage))
	if !o.Type().IsPackage() {
		t.Fatalf("fixture decoded as %s", o.Type())
	}
	p := o.Data().Package
	if p == nil {
		t.Fatal("package payload missing")
	}
	if len(p.Modules) == 0 {
		t.Fatal("fixture package has no modules")
	}
	id, err := o.ObjectId()
	if err != nil {
		t.Fatalf("ObjectId failed: %v", err)
	}
	if id != p.Id {
		t.Fatalf("object id %s does not match package id %s", id, p.Id)
	}
}
