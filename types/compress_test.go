package types

import "testing"

func TestCompressClassification(t *testing.T) {
	wk := DefaultWellKnownTypes()

	foreign := StructTag{
		Address: frameworkAddress(0xaa),
		Module:  "managed",
		Name:    "MANAGED",
	}
	nft := StructTag{
		Address: frameworkAddress(0xbb),
		Module:  "gallery",
		Name:    "Piece",
	}

	cases := map[string]struct {
		tag  StructTag
		wire byte
	}{
		"gas_coin":     {wk.GasCoinTag(), compactGasCoin},
		"staked_coin":  {wk.StakedCoinTag(), compactStakedCoin},
		"foreign_coin": {wk.CoinTag(StructType(foreign)), compactCoin},
		"vector_coin":  {wk.CoinTag(VectorType(U8Type())), compactCoin},
		"other":        {nft, compactOther},
		// The bare wrapper type with no parameter is not a coin.
		"unapplied_wrapper": {StructTag{Address: wk.CoinAddress, Module: wk.CoinModule, Name: wk.CoinName}, compactOther},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := wk.compressStructTag(tc.tag)
			if c.wire != tc.wire {
				t.Fatalf("compressStructTag(%s).wire = 0x%02x, want 0x%02x", tc.tag, c.wire, tc.wire)
			}
			if got := wk.expandStructTag(c); !got.Equal(tc.tag) {
				t.Fatalf("expandStructTag round-trip: got %s, want %s", got, tc.tag)
			}
		})
	}
}

// The uncompressed spelling of a well-known type must decode to the
// same value as its compact form: Other(Coin<BFC>) and GasCoin are two
// byte strings for one StructTag.
func TestUncompressedSpellingDecodesEqual(t *testing.T) {
	wk := DefaultWellKnownTypes()

	var compact wireWriter
	if err := defaultCodec.encodeCompactTag(&compact, wk.GasCoinTag()); err != nil {
		t.Fatalf("encodeCompactTag failed: %v", err)
	}
	if got := compact.bytes(); len(got) != 1 || got[0] != compactGasCoin {
		t.Fatalf("gas coin should compress to one byte, got %x", got)
	}

	var verbose wireWriter
	verbose.writeByte(compactOther)
	if err := encodeStructTag(&verbose, wk.GasCoinTag()); err != nil {
		t.Fatalf("encodeStructTag failed: %v", err)
	}

	r := newWireReader(verbose.bytes())
	expanded, err := defaultCodec.decodeCompactTag(r)
	if err != nil {
		t.Fatalf("decodeCompactTag failed: %v", err)
	}
	if err := r.finish(); err != nil {
		t.Fatalf("trailing bytes after verbose form: %v", err)
	}
	if !expanded.Equal(wk.GasCoinTag()) {
		t.Fatalf("verbose spelling decoded to %s, want %s", expanded, wk.GasCoinTag())
	}
}

func TestDecodeRejectsUnknownCompactTag(t *testing.T) {
	r := newWireReader([]byte{0x04})
	_, err := defaultCodec.decodeCompactTag(r)
	if _, ok := IsMalformedEncoding(err); !ok {
		t.Fatalf("expected MalformedEncodingError, got %v", err)
	}
}
