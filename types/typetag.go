package types

import (
	"fmt"
	"strings"
)

// TypeKind discriminates the variants of a TypeTag. The numeric values
// are the wire tags; they are fixed by the protocol and must never be
// renumbered.
type TypeKind uint8

const (
	TypeBool    TypeKind = 0
	TypeU8      TypeKind = 1
	TypeU64     TypeKind = 2
	TypeU128    TypeKind = 3
	TypeAddress TypeKind = 4
	TypeSigner  TypeKind = 5
	TypeVector  TypeKind = 6
	TypeStruct  TypeKind = 7
	TypeU16     TypeKind = 8
	TypeU32     TypeKind = 9
	TypeU256    TypeKind = 10
)

// TypeTag is the type of a runtime value: a primitive kind, a vector of
// another type, or a fully qualified struct type.
type TypeTag struct {
	kind TypeKind
	// elem is set only for TypeVector.
	elem *TypeTag
	// strct is set only for TypeStruct.
	strct *StructTag
}

// BoolType returns the bool type tag.
func BoolType() TypeTag { return TypeTag{kind: TypeBool} }

// U8Type returns the u8 type tag.
func U8Type() TypeTag { return TypeTag{kind: TypeU8} }

// U16Type returns the u16 type tag.
func U16Type() TypeTag { return TypeTag{kind: TypeU16} }

// U32Type returns the u32 type tag.
func U32Type() TypeTag { return TypeTag{kind: TypeU32} }

// U64Type returns the u64 type tag.
func U64Type() TypeTag { return TypeTag{kind: TypeU64} }

// U128Type returns the u128 type tag.
func U128Type() TypeTag { return TypeTag{kind: TypeU128} }

// U256Type returns the u256 type tag.
func U256Type() TypeTag { return TypeTag{kind: TypeU256} }

// AddressType returns the address type tag.
func AddressType() TypeTag { return TypeTag{kind: TypeAddress} }

// SignerType returns the signer type tag.
func SignerType() TypeTag { return TypeTag{kind: TypeSigner} }

// VectorType returns the tag for a vector of elem.
func VectorType(elem TypeTag) TypeTag {
	e := elem
	return TypeTag{kind: TypeVector, elem: &e}
}

// StructType returns the tag for the given struct type.
func StructType(tag StructTag) TypeTag {
	t := tag
	return TypeTag{kind: TypeStruct, strct: &t}
}

// Kind returns the variant discriminant.
func (t TypeTag) Kind() TypeKind { return t.kind }

// Elem returns the element type of a vector tag.
func (t TypeTag) Elem() (TypeTag, bool) {
	if t.kind != TypeVector || t.elem == nil {
		return TypeTag{}, false
	}
	return *t.elem, true
}

// Struct returns the struct tag of a struct type tag.
func (t TypeTag) Struct() (StructTag, bool) {
	if t.kind != TypeStruct || t.strct == nil {
		return StructTag{}, false
	}
	return *t.strct, true
}

// Equal reports whether two type tags denote the same type.
func (t TypeTag) Equal(o TypeTag) bool {
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case TypeVector:
		te, ok1 := t.Elem()
		oe, ok2 := o.Elem()
		return ok1 && ok2 && te.Equal(oe)
	case TypeStruct:
		ts, ok1 := t.Struct()
		os, ok2 := o.Struct()
		return ok1 && ok2 && ts.Equal(os)
	default:
		return true
	}
}

// String returns the canonical text form, e.g. "vector<u8>" or a fully
// qualified struct type.
func (t TypeTag) String() string {
	switch t.kind {
	case TypeBool:
		return "bool"
	case TypeU8:
		return "u8"
	case TypeU16:
		return "u16"
	case TypeU32:
		return "u32"
	case TypeU64:
		return "u64"
	case TypeU128:
		return "u128"
	case TypeU256:
		return "u256"
	case TypeAddress:
		return "address"
	case TypeSigner:
		return "signer"
	case TypeVector:
		if e, ok := t.Elem(); ok {
			return "vector<" + e.String() + ">"
		}
		return "vector<?>"
	case TypeStruct:
		if s, ok := t.Struct(); ok {
			return s.String()
		}
		return "struct<?>"
	default:
		return fmt.Sprintf("type<%d>", t.kind)
	}
}

// StructTag is a fully qualified struct type: the address and module that
// define it, its name, and its ordered type parameters.
type StructTag struct {
	Address    Address
	Module     Identifier
	Name       Identifier
	TypeParams []TypeTag
}

// Equal reports whether two struct tags denote the same type.
func (s StructTag) Equal(o StructTag) bool {
	if s.Address != o.Address || s.Module != o.Module || s.Name != o.Name {
		return false
	}
	if len(s.TypeParams) != len(o.TypeParams) {
		return false
	}
	for i := range s.TypeParams {
		if !s.TypeParams[i].Equal(o.TypeParams[i]) {
			return false
		}
	}
	return true
}

// String returns the canonical text form
// "0x<address>::<module>::<name>" with type parameters when present.
func (s StructTag) String() string {
	var b strings.Builder
	b.WriteString(s.Address.String())
	b.WriteString("::")
	b.WriteString(string(s.Module))
	b.WriteString("::")
	b.WriteString(string(s.Name))
	if len(s.TypeParams) > 0 {
		b.WriteByte('<')
		for i, p := range s.TypeParams {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteByte('>')
	}
	return b.String()
}
