package query

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

// Base64 is a byte field delivered as base64 text. Decoding is
// padding-indifferent and accepts both RFC 4648 alphabets; it always
// marshals in the standard padded form.
type Base64 []byte

func (b Base64) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

func (b *Base64) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := DecodeBase64(s)
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// DecodeBase64 decodes s under the standard alphabet first, ignoring
// padding. Only when that fails on a character exclusive to the URL-safe
// alphabet (- or _) is the URL-safe alphabet tried; any other failure is
// surfaced immediately.
func DecodeBase64(s string) ([]byte, error) {
	trimmed := strings.TrimRight(s, "=")
	raw, err := base64.RawStdEncoding.DecodeString(trimmed)
	if err == nil {
		return raw, nil
	}

	var corrupt base64.CorruptInputError
	if errors.As(err, &corrupt) {
		i := int(corrupt)
		if i < len(trimmed) && (trimmed[i] == '-' || trimmed[i] == '_') {
			raw, urlErr := base64.RawURLEncoding.DecodeString(trimmed)
			if urlErr == nil {
				return raw, nil
			}
			return nil, &InvalidByteStringError{Input: s, Err: urlErr}
		}
	}
	return nil, &InvalidByteStringError{Input: s, Err: err}
}
