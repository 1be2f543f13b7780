package query_test

import (
	"encoding/json"
	"testing"

	"github.com/blockberries/objectberry/query"
)

func TestUint64AcceptsBothSpellings(t *testing.T) {
	cases := map[string]uint64{
		`123`:                    123,
		`"123"`:                  123,
		`0`:                      0,
		`"0"`:                    0,
		`"18446744073709551615"`: 1<<64 - 1,
	}
	for raw, want := range cases {
		var v query.Uint64
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			t.Errorf("Unmarshal(%s) failed: %v", raw, err)
			continue
		}
		if uint64(v) != want {
			t.Errorf("Unmarshal(%s) = %d, want %d", raw, v, want)
		}
	}
}

func TestUint64RejectsNonNumbers(t *testing.T) {
	for _, raw := range []string{`"abc"`, `""`, `"-1"`, `-1`, `1.5`, `"1.5"`, `"0x10"`, `true`, `null`, `"18446744073709551616"`} {
		var v query.Uint64
		err := json.Unmarshal([]byte(raw), &v)
		e, ok := query.IsInvalidNumberLiteral(err)
		if !ok {
			t.Errorf("Unmarshal(%s): expected InvalidNumberLiteralError, got %v", raw, err)
			continue
		}
		if e.Literal != raw {
			t.Errorf("Unmarshal(%s): error carries literal %q", raw, e.Literal)
		}
	}
}

func TestUint64MarshalsAsString(t *testing.T) {
	raw, err := json.Marshal(query.Uint64(1<<64 - 1))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != `"18446744073709551615"` {
		t.Fatalf("Marshal = %s", raw)
	}
	var back query.Uint64
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("round-trip failed: %v", err)
	}
	if back != 1<<64-1 {
		t.Fatalf("round-trip = %d", back)
	}
}

func TestUint53Bounds(t *testing.T) {
	var v query.Uint53
	if err := json.Unmarshal([]byte(`9007199254740991`), &v); err != nil {
		t.Fatalf("MaxUint53 rejected: %v", err)
	}
	if uint64(v) != query.MaxUint53 {
		t.Fatalf("got %d, want %d", v, uint64(query.MaxUint53))
	}

	err := json.Unmarshal([]byte(`"9007199254740992"`), &v)
	if _, ok := query.IsInvalidNumberLiteral(err); !ok {
		t.Fatalf("2^53 accepted: %v", err)
	}

	if _, err := json.Marshal(query.Uint53(query.MaxUint53)); err != nil {
		t.Fatalf("Marshal(MaxUint53) failed: %v", err)
	}
	if _, err := json.Marshal(query.Uint53(query.MaxUint53 + 1)); err == nil {
		t.Fatal("Marshal above the bound succeeded")
	}
}

func TestUint53MarshalsAsNumber(t *testing.T) {
	raw, err := json.Marshal(query.Uint53(7))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != `7` {
		t.Fatalf("Marshal = %s, want a bare number", raw)
	}
}

func TestNumberVersionConversion(t *testing.T) {
	if query.Uint64(9).Version() != 9 {
		t.Error("Uint64.Version() lost the value")
	}
	if query.Uint53(9).Version() != 9 {
		t.Error("Uint53.Version() lost the value")
	}
}
