package query_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/blockberries/objectberry/query"
)

func TestDecodeBase64AcceptsEveryAlphabet(t *testing.T) {
	encoders := map[string]*base64.Encoding{
		"std":        base64.StdEncoding,
		"std_no_pad": base64.RawStdEncoding,
		"url":        base64.URLEncoding,
		"url_no_pad": base64.RawURLEncoding,
	}

	rng := rand.New(rand.NewSource(1))
	payloads := [][]byte{
		{},
		{0x00},
		// 0xfb 0xff forces '+'/'/' under the standard alphabet and
		// '-'/'_' under the URL-safe one, so the alphabets disagree.
		{0xfb, 0xff, 0xfe},
		bytes.Repeat([]byte{0xff}, 31),
	}
	for i := 0; i < 8; i++ {
		p := make([]byte, 1+rng.Intn(64))
		rng.Read(p)
		payloads = append(payloads, p)
	}

	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			for _, p := range payloads {
				got, err := query.DecodeBase64(enc.EncodeToString(p))
				if err != nil {
					t.Fatalf("DecodeBase64(% x as %s) failed: %v", p, name, err)
				}
				if !bytes.Equal(got, p) {
					t.Fatalf("DecodeBase64(% x as %s) = % x", p, name, got)
				}
			}
		})
	}
}

func TestDecodeBase64RejectsGarbage(t *testing.T) {
	for _, s := range []string{"!!!", "a", "ab?c", "a-b+"} {
		_, err := query.DecodeBase64(s)
		e, ok := query.IsInvalidByteString(err)
		if !ok {
			t.Errorf("DecodeBase64(%q): expected InvalidByteStringError, got %v", s, err)
			continue
		}
		if e.Input != s {
			t.Errorf("DecodeBase64(%q): error carries input %q", s, e.Input)
		}
	}
}

func TestBase64MarshalsPadded(t *testing.T) {
	raw, err := json.Marshal(query.Base64{0xfb, 0xff})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != `"+/8="` {
		t.Fatalf("Marshal = %s, want \"+/8=\"", raw)
	}

	var back query.Base64
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !bytes.Equal(back, []byte{0xfb, 0xff}) {
		t.Fatalf("round-trip = % x", back)
	}
}

func TestBase64UnmarshalRejectsNonString(t *testing.T) {
	var b query.Base64
	if err := json.Unmarshal([]byte(`7`), &b); err == nil {
		t.Fatal("numeric JSON accepted")
	}
}
