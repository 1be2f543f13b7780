package query

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/blockberries/objectberry/types"
)

// MaxUint53 is the largest integer a JSON transport can carry as a
// native number without losing precision.
const MaxUint53 = 1<<53 - 1

// Uint64 is a 64-bit field that tolerates both transport spellings:
// a native JSON number or a decimal string. It always marshals as a
// decimal string, since full 64-bit values do not survive as native
// numbers.
type Uint64 uint64

// Version converts to the object model's version type.
func (v Uint64) Version() types.Version { return types.Version(v) }

func (v Uint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(v), 10))
}

func (v *Uint64) UnmarshalJSON(data []byte) error {
	n, err := parseUintField(data, "uint64")
	if err != nil {
		return err
	}
	*v = Uint64(n)
	return nil
}

// Uint53 is an integer field bounded to what a native JSON number can
// carry exactly. Decoding tolerates both spellings; it marshals as a
// native number.
type Uint53 uint64

// Version converts to the object model's version type.
func (v Uint53) Version() types.Version { return types.Version(v) }

func (v Uint53) MarshalJSON() ([]byte, error) {
	if v > MaxUint53 {
		return nil, fmt.Errorf("uint53 value %d exceeds 2^53-1", uint64(v))
	}
	return json.Marshal(uint64(v))
}

func (v *Uint53) UnmarshalJSON(data []byte) error {
	n, err := parseUintField(data, "uint53")
	if err != nil {
		return err
	}
	if n > MaxUint53 {
		return &InvalidNumberLiteralError{
			Literal: string(data),
			Target:  "uint53",
			Err:     fmt.Errorf("value exceeds 2^53-1"),
		}
	}
	*v = Uint53(n)
	return nil
}

// parseUintField decodes a lenient unsigned integer field: a string is
// parsed as a decimal literal, a native number is used as-is.
func parseUintField(data []byte, target string) (uint64, error) {
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, &InvalidNumberLiteralError{Literal: string(data), Target: target, Err: err}
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &InvalidNumberLiteralError{Literal: string(data), Target: target, Err: err}
	}
	return n, nil
}
