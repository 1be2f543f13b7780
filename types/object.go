package types

import "errors"

// ObjectReference pins exactly one version of one object: its id, the
// version, and the digest of its canonical encoding at that version.
type ObjectReference struct {
	objectId ObjectId
	version  Version
	digest   ObjectDigest
}

// NewObjectReference creates a reference from an object's id, version,
// and digest.
func NewObjectReference(id ObjectId, version Version, digest ObjectDigest) ObjectReference {
	return ObjectReference{objectId: id, version: version, digest: digest}
}

// ObjectId returns the referenced object's id.
func (r ObjectReference) ObjectId() ObjectId { return r.objectId }

// Version returns the referenced version.
func (r ObjectReference) Version() Version { return r.version }

// Digest returns the digest of the referenced object version.
func (r ObjectReference) Digest() ObjectDigest { return r.digest }

// MoveStruct is a typed struct payload. The contents are the raw
// canonical bytes of the struct value; the first 32 bytes are the
// object's id, which is why contents shorter than that are rejected at
// construction.
type MoveStruct struct {
	typ StructTag
	// Deprecated on-chain: retained only because the wire format still
	// carries it. Nothing may branch on this field.
	hasPublicTransfer bool
	version           Version
	contents          []byte
}

// NewMoveStruct builds a MoveStruct, rejecting contents that cannot carry
// an object identity. The contents slice is copied.
func NewMoveStruct(typ StructTag, hasPublicTransfer bool, version Version, contents []byte) (*MoveStruct, error) {
	if _, err := contentsId(contents); err != nil {
		return nil, err
	}
	return &MoveStruct{
		typ:               typ,
		hasPublicTransfer: hasPublicTransfer,
		version:           version,
		contents:          append([]byte(nil), contents...),
	}, nil
}

// ObjectType returns the struct's fully qualified type.
func (s *MoveStruct) ObjectType() StructTag { return s.typ }

// HasPublicTransfer returns the deprecated transferability flag.
//
// Deprecated: the flag is carried for wire compatibility only; whether an
// object can be transferred is decided from its type at execution time.
// Do not gate any decision on it.
func (s *MoveStruct) HasPublicTransfer() bool { return s.hasPublicTransfer }

// Version returns the struct's Lamport version.
func (s *MoveStruct) Version() Version { return s.version }

// Contents returns the raw struct bytes. The slice must not be mutated.
func (s *MoveStruct) Contents() []byte { return s.contents }

// ObjectId derives the object's id from the contents prefix. The length
// invariant is re-validated on every call: a MoveStruct decoded from
// external bytes gets exactly the same check as a constructed one.
func (s *MoveStruct) ObjectId() (ObjectId, error) {
	return contentsId(s.contents)
}

// contentsId extracts the 32-byte identity prefix of struct contents.
func contentsId(contents []byte) (ObjectId, error) {
	if len(contents) < AddressLength {
		return ObjectId{}, &InvalidObjectContentsError{
			Length: len(contents),
			Reason: "contents shorter than the 32-byte object id prefix",
		}
	}
	id, err := AddressFromBytes(contents[:AddressLength])
	if err != nil {
		return ObjectId{}, &InvalidObjectContentsError{
			Length: len(contents),
			Reason: "id prefix is not a well-formed address: " + err.Error(),
		}
	}
	return id, nil
}

// ObjectData is the payload of an object: either a typed struct or a
// published package. Exactly one field is set.
type ObjectData struct {
	Struct  *MoveStruct
	Package *MovePackage
}

// StructData wraps a MoveStruct as object data.
func StructData(s *MoveStruct) ObjectData { return ObjectData{Struct: s} }

// PackageData wraps a MovePackage as object data.
func PackageData(p *MovePackage) ObjectData { return ObjectData{Package: p} }

func (d ObjectData) validate() error {
	switch {
	case d.Struct != nil && d.Package != nil:
		return errors.New("object data carries both a struct and a package")
	case d.Struct == nil && d.Package == nil:
		return errors.New("object data carries neither a struct nor a package")
	}
	return nil
}

// objectId dispatches identity derivation on the variant.
func (d ObjectData) objectId() (ObjectId, error) {
	if d.Struct != nil {
		return d.Struct.ObjectId()
	}
	if d.Package != nil {
		return d.Package.Id, nil
	}
	return ObjectId{}, errors.New("empty object data")
}

func (d ObjectData) version() Version {
	switch {
	case d.Struct != nil:
		return d.Struct.version
	case d.Package != nil:
		return d.Package.Version
	}
	return 0
}

func (d ObjectData) objectType() ObjectType {
	if d.Struct != nil {
		return StructObjectType(d.Struct.typ)
	}
	return PackageObjectType()
}

// ObjectType is what an object is: a package, or a struct of a given
// fully qualified type.
type ObjectType struct {
	// strct is nil for a package.
	strct *StructTag
}

// PackageObjectType returns the package type marker.
func PackageObjectType() ObjectType { return ObjectType{} }

// StructObjectType returns the type marker for a struct of type tag.
func StructObjectType(tag StructTag) ObjectType {
	t := tag
	return ObjectType{strct: &t}
}

// IsPackage reports whether the object is a package.
func (t ObjectType) IsPackage() bool { return t.strct == nil }

// StructTag returns the struct type when the object is a struct.
func (t ObjectType) StructTag() (StructTag, bool) {
	if t.strct == nil {
		return StructTag{}, false
	}
	return *t.strct, true
}

func (t ObjectType) String() string {
	if t.strct == nil {
		return "package"
	}
	return t.strct.String()
}

// Object is one version of an on-chain object. Its id, version, and type
// are never stored alongside the data — they are derived from it, so the
// two can never disagree.
type Object struct {
	data                ObjectData
	owner               Owner
	previousTransaction TransactionDigest
	storageRebate       uint64
}

// NewObject builds an object, validating that the data carries exactly
// one payload variant.
func NewObject(data ObjectData, owner Owner, previousTransaction TransactionDigest, storageRebate uint64) (*Object, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &Object{
		data:                data,
		owner:               owner,
		previousTransaction: previousTransaction,
		storageRebate:       storageRebate,
	}, nil
}

// Data returns the object's payload.
func (o *Object) Data() ObjectData { return o.data }

// Owner returns who may mutate the object.
func (o *Object) Owner() Owner { return o.owner }

// PreviousTransaction returns the digest of the transaction that created
// or last mutated this object.
func (o *Object) PreviousTransaction() TransactionDigest { return o.previousTransaction }

// StorageRebate returns the amount refunded when the object is deleted,
// recomputed at each mutation from the prevailing storage price.
func (o *Object) StorageRebate() uint64 { return o.storageRebate }

// ObjectId derives the object's id from its payload.
func (o *Object) ObjectId() (ObjectId, error) { return o.data.objectId() }

// Version returns the object's Lamport version.
func (o *Object) Version() Version { return o.data.version() }

// Type returns the object's derived type marker.
func (o *Object) Type() ObjectType { return o.data.objectType() }

// AsStruct returns the payload as a MoveStruct when it is one.
func (o *Object) AsStruct() (*MoveStruct, bool) {
	if o.data.Struct != nil {
		return o.data.Struct, true
	}
	return nil, false
}

// Digest computes the digest of the object's canonical encoding.
func (o *Object) Digest() (ObjectDigest, error) {
	b, err := o.MarshalBinary()
	if err != nil {
		return ObjectDigest{}, err
	}
	return DigestBytes(b), nil
}

// GenesisObject is an object included in the chain's initial state. It is
// a distinct, reduced wire shape — genesis objects have no previous
// transaction and no storage rebate — not a partially filled Object.
type GenesisObject struct {
	data  ObjectData
	owner Owner
}

// NewGenesisObject builds a genesis object.
func NewGenesisObject(data ObjectData, owner Owner) (*GenesisObject, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &GenesisObject{data: data, owner: owner}, nil
}

// Data returns the object's payload.
func (g *GenesisObject) Data() ObjectData { return g.data }

// Owner returns who may mutate the object.
func (g *GenesisObject) Owner() Owner { return g.owner }

// ObjectId derives the object's id from its payload.
func (g *GenesisObject) ObjectId() (ObjectId, error) { return g.data.objectId() }

// Version returns the object's Lamport version.
func (g *GenesisObject) Version() Version { return g.data.version() }

// Type returns the object's derived type marker.
func (g *GenesisObject) Type() ObjectType { return g.data.objectType() }
