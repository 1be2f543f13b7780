package types

// Identifier is a validated module, struct, or field name.
//
// A valid identifier matches [a-zA-Z_][a-zA-Z0-9_]* and is not the bare
// underscore. Identifiers built through NewIdentifier are always valid;
// the decoder applies the same validation to names read off the wire.
type Identifier string

// NewIdentifier validates s and returns it as an Identifier.
func NewIdentifier(s string) (Identifier, error) {
	if err := ValidateIdentifier(s); err != nil {
		return "", err
	}
	return Identifier(s), nil
}

// ValidateIdentifier reports whether s is a well-formed identifier.
func ValidateIdentifier(s string) error {
	if len(s) == 0 {
		return &InvalidIdentifierError{Name: s}
	}
	if s == "_" {
		return &InvalidIdentifierError{Name: s}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return &InvalidIdentifierError{Name: s}
			}
		default:
			return &InvalidIdentifierError{Name: s}
		}
	}
	return nil
}

func (id Identifier) String() string { return string(id) }
