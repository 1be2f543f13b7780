package types

import "errors"

// Codec encodes and decodes the object model against the canonical wire
// grammar. The well-known-type table drives the compact struct-tag
// compression; everything else is table-free.
//
// A Codec is immutable and safe for concurrent use. Package-level
// MarshalBinary/UnmarshalBinary methods go through a default Codec built
// from DefaultWellKnownTypes.
type Codec struct {
	wk WellKnownTypes
}

// NewCodec creates a codec using the given well-known-type table.
func NewCodec(wk WellKnownTypes) *Codec {
	return &Codec{wk: wk}
}

var defaultCodec = NewCodec(DefaultWellKnownTypes())

// EncodeObject returns the canonical encoding of o.
func (c *Codec) EncodeObject(o *Object) ([]byte, error) {
	if err := o.data.validate(); err != nil {
		return nil, err
	}
	var w wireWriter
	if err := c.encodeObjectData(&w, o.data); err != nil {
		return nil, err
	}
	encodeOwner(&w, o.owner)
	w.writeDigest(o.previousTransaction)
	w.writeU64(o.storageRebate)
	return w.bytes(), nil
}

// EncodeGenesisObject returns the canonical encoding of g.
//
// Genesis objects travel inside a one-variant envelope, so the encoding
// leads with the envelope's 0x00 tag before the reduced two-field body.
func (c *Codec) EncodeGenesisObject(g *GenesisObject) ([]byte, error) {
	if err := g.data.validate(); err != nil {
		return nil, err
	}
	var w wireWriter
	w.writeUleb(0)
	if err := c.encodeObjectData(&w, g.data); err != nil {
		return nil, err
	}
	encodeOwner(&w, g.owner)
	return w.bytes(), nil
}

// MarshalBinary returns the canonical encoding of o under the default
// well-known-type table.
func (o *Object) MarshalBinary() ([]byte, error) {
	return defaultCodec.EncodeObject(o)
}

// MarshalBinary returns the canonical encoding of g under the default
// well-known-type table.
func (g *GenesisObject) MarshalBinary() ([]byte, error) {
	return defaultCodec.EncodeGenesisObject(g)
}

// MarshalBinary returns the canonical encoding of r.
func (r ObjectReference) MarshalBinary() ([]byte, error) {
	var w wireWriter
	w.writeAddress(r.objectId)
	w.writeU64(r.version)
	w.writeDigest(r.digest)
	return w.bytes(), nil
}

// MarshalBinary returns the canonical encoding of t.
func (t TypeTag) MarshalBinary() ([]byte, error) {
	var w wireWriter
	if err := encodeTypeTag(&w, t); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

// MarshalBinary returns the canonical encoding of s.
func (s StructTag) MarshalBinary() ([]byte, error) {
	var w wireWriter
	if err := encodeStructTag(&w, s); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

func (c *Codec) encodeObjectData(w *wireWriter, d ObjectData) error {
	switch {
	case d.Struct != nil:
		w.writeUleb(0)
		return c.encodeMoveStruct(w, d.Struct)
	case d.Package != nil:
		w.writeUleb(1)
		return encodeMovePackage(w, d.Package)
	}
	return d.validate()
}

func (c *Codec) encodeMoveStruct(w *wireWriter, s *MoveStruct) error {
	if err := c.encodeCompactTag(w, s.typ); err != nil {
		return err
	}
	w.writeBool(s.hasPublicTransfer)
	w.writeU64(s.version)
	w.writeVarBytes(s.contents)
	return nil
}

// encodeCompactTag classifies and emits the compressed form of a
// MoveStruct's type. Compression applies only here: struct tags anywhere
// else in the grammar are written in full.
func (c *Codec) encodeCompactTag(w *wireWriter, tag StructTag) error {
	compact := c.wk.compressStructTag(tag)
	w.writeUleb(uint64(compact.wire))
	switch compact.wire {
	case compactOther:
		return encodeStructTag(w, compact.other)
	case compactCoin:
		return encodeTypeTag(w, compact.inner)
	}
	return nil
}

func encodeMovePackage(w *wireWriter, p *MovePackage) error {
	w.writeAddress(p.Id)
	w.writeU64(p.Version)

	// Map-valued fields are emitted in ascending key order no matter
	// how the in-memory maps were populated. This is what makes the
	// encoding canonical; it is not an ergonomic choice.
	names := p.sortedModuleNames()
	w.writeUleb(uint64(len(names)))
	for _, name := range names {
		if err := encodeIdentifier(w, name); err != nil {
			return err
		}
		w.writeVarBytes(p.Modules[name])
	}

	w.writeUleb(uint64(len(p.TypeOriginTable)))
	for _, origin := range p.TypeOriginTable {
		if err := encodeIdentifier(w, origin.ModuleName); err != nil {
			return err
		}
		if err := encodeIdentifier(w, origin.StructName); err != nil {
			return err
		}
		w.writeAddress(origin.Package)
	}

	ids := p.sortedLinkageIds()
	w.writeUleb(uint64(len(ids)))
	for _, id := range ids {
		info := p.LinkageTable[id]
		w.writeAddress(id)
		w.writeAddress(info.UpgradedId)
		w.writeU64(info.UpgradedVersion)
	}
	return nil
}

func encodeOwner(w *wireWriter, o Owner) {
	w.writeUleb(uint64(o.kind))
	switch o.kind {
	case OwnerAddress, OwnerObject:
		w.writeAddress(o.address)
	case OwnerShared:
		w.writeU64(o.version)
	case OwnerImmutable:
	case OwnerConsensusAddress:
		w.writeU64(o.version)
		w.writeAddress(o.address)
	}
}

func encodeTypeTag(w *wireWriter, t TypeTag) error {
	w.writeUleb(uint64(t.kind))
	switch t.kind {
	case TypeVector:
		elem, ok := t.Elem()
		if !ok {
			return errors.New("vector type tag without an element type")
		}
		return encodeTypeTag(w, elem)
	case TypeStruct:
		s, ok := t.Struct()
		if !ok {
			return errors.New("struct type tag without a struct type")
		}
		return encodeStructTag(w, s)
	}
	return nil
}

func encodeStructTag(w *wireWriter, s StructTag) error {
	w.writeAddress(s.Address)
	if err := encodeIdentifier(w, s.Module); err != nil {
		return err
	}
	if err := encodeIdentifier(w, s.Name); err != nil {
		return err
	}
	w.writeUleb(uint64(len(s.TypeParams)))
	for _, p := range s.TypeParams {
		if err := encodeTypeTag(w, p); err != nil {
			return err
		}
	}
	return nil
}

// encodeIdentifier validates before writing: an invalid name would
// produce bytes the decoder must reject, and the encoder never emits
// undecodable output.
func encodeIdentifier(w *wireWriter, id Identifier) error {
	if err := ValidateIdentifier(string(id)); err != nil {
		return err
	}
	w.writeIdentifier(id)
	return nil
}
