package types

import "fmt"

// DecodeObject decodes the canonical encoding of an object. The entire
// buffer must be consumed: trailing bytes after a complete value are a
// malformed encoding, exactly like a truncated buffer or an unknown tag.
func (c *Codec) DecodeObject(data []byte) (*Object, error) {
	r := newWireReader(data)
	o, err := c.decodeObject(r)
	if err != nil {
		return nil, err
	}
	if err := r.finish(); err != nil {
		return nil, err
	}
	return o, nil
}

// DecodeGenesisObject decodes the canonical encoding of a genesis
// object.
func (c *Codec) DecodeGenesisObject(data []byte) (*GenesisObject, error) {
	r := newWireReader(data)
	g, err := c.decodeGenesisObject(r)
	if err != nil {
		return nil, err
	}
	if err := r.finish(); err != nil {
		return nil, err
	}
	return g, nil
}

// UnmarshalBinary decodes data into o under the default well-known-type
// table.
func (o *Object) UnmarshalBinary(data []byte) error {
	decoded, err := defaultCodec.DecodeObject(data)
	if err != nil {
		return err
	}
	*o = *decoded
	return nil
}

// UnmarshalBinary decodes data into g under the default well-known-type
// table.
func (g *GenesisObject) UnmarshalBinary(data []byte) error {
	decoded, err := defaultCodec.DecodeGenesisObject(data)
	if err != nil {
		return err
	}
	*g = *decoded
	return nil
}

// UnmarshalBinary decodes data into r.
func (ref *ObjectReference) UnmarshalBinary(data []byte) error {
	r := newWireReader(data)
	r.entity = "object reference"
	id, err := r.readAddress()
	if err != nil {
		return err
	}
	version, err := r.readU64()
	if err != nil {
		return err
	}
	digest, err := r.readDigest()
	if err != nil {
		return err
	}
	if err := r.finish(); err != nil {
		return err
	}
	*ref = NewObjectReference(id, version, digest)
	return nil
}

// UnmarshalBinary decodes data into t.
func (t *TypeTag) UnmarshalBinary(data []byte) error {
	r := newWireReader(data)
	decoded, err := decodeTypeTag(r)
	if err != nil {
		return err
	}
	if err := r.finish(); err != nil {
		return err
	}
	*t = decoded
	return nil
}

// UnmarshalBinary decodes data into s.
func (s *StructTag) UnmarshalBinary(data []byte) error {
	r := newWireReader(data)
	decoded, err := decodeStructTag(r)
	if err != nil {
		return err
	}
	if err := r.finish(); err != nil {
		return err
	}
	*s = decoded
	return nil
}

func (c *Codec) decodeObject(r *wireReader) (*Object, error) {
	data, err := c.decodeObjectData(r)
	if err != nil {
		return nil, err
	}
	owner, err := decodeOwner(r)
	if err != nil {
		return nil, err
	}
	r.entity = "object"
	previous, err := r.readDigest()
	if err != nil {
		return nil, err
	}
	rebate, err := r.readU64()
	if err != nil {
		return nil, err
	}
	return NewObject(data, owner, previous, rebate)
}

func (c *Codec) decodeGenesisObject(r *wireReader) (*GenesisObject, error) {
	r.entity = "genesis object"
	tag, err := r.readTag()
	if err != nil {
		return nil, err
	}
	if tag != 0 {
		return nil, r.malformed(fmt.Sprintf("unknown genesis envelope tag %d", tag))
	}
	data, err := c.decodeObjectData(r)
	if err != nil {
		return nil, err
	}
	owner, err := decodeOwner(r)
	if err != nil {
		return nil, err
	}
	return NewGenesisObject(data, owner)
}

func (c *Codec) decodeObjectData(r *wireReader) (ObjectData, error) {
	r.entity = "object data"
	tag, err := r.readTag()
	if err != nil {
		return ObjectData{}, err
	}
	switch tag {
	case 0:
		s, err := c.decodeMoveStruct(r)
		if err != nil {
			return ObjectData{}, err
		}
		return StructData(s), nil
	case 1:
		p, err := decodeMovePackage(r)
		if err != nil {
			return ObjectData{}, err
		}
		return PackageData(p), nil
	default:
		return ObjectData{}, r.malformed(fmt.Sprintf("unknown object data tag %d", tag))
	}
}

// decodeMoveStruct rebuilds a struct payload through the validating
// constructor, so a decoded value and a constructor-built one are
// indistinguishable: contents without a 32-byte id prefix are rejected
// here exactly as they are at construction.
func (c *Codec) decodeMoveStruct(r *wireReader) (*MoveStruct, error) {
	typ, err := c.decodeCompactTag(r)
	if err != nil {
		return nil, err
	}
	r.entity = "move struct"
	hasPublicTransfer, err := r.readBool()
	if err != nil {
		return nil, err
	}
	version, err := r.readU64()
	if err != nil {
		return nil, err
	}
	contents, err := r.readVarBytes()
	if err != nil {
		return nil, err
	}
	return NewMoveStruct(typ, hasPublicTransfer, version, contents)
}

// decodeCompactTag expands the compressed struct-tag form back to the
// fully qualified canonical tag.
func (c *Codec) decodeCompactTag(r *wireReader) (StructTag, error) {
	r.entity = "compressed struct tag"
	tag, err := r.readTag()
	if err != nil {
		return StructTag{}, err
	}
	switch tag {
	case compactOther:
		full, err := decodeStructTag(r)
		if err != nil {
			return StructTag{}, err
		}
		return c.wk.expandStructTag(compactStructTag{wire: compactOther, other: full}), nil
	case compactGasCoin:
		return c.wk.expandStructTag(compactStructTag{wire: compactGasCoin}), nil
	case compactStakedCoin:
		return c.wk.expandStructTag(compactStructTag{wire: compactStakedCoin}), nil
	case compactCoin:
		inner, err := decodeTypeTag(r)
		if err != nil {
			return StructTag{}, err
		}
		return c.wk.expandStructTag(compactStructTag{wire: compactCoin, inner: inner}), nil
	default:
		return StructTag{}, r.malformed(fmt.Sprintf("unknown compressed struct tag %d", tag))
	}
}

func decodeMovePackage(r *wireReader) (*MovePackage, error) {
	r.entity = "move package"
	id, err := r.readAddress()
	if err != nil {
		return nil, err
	}
	version, err := r.readU64()
	if err != nil {
		return nil, err
	}

	moduleCount, err := r.readLen()
	if err != nil {
		return nil, err
	}
	modules := make(map[Identifier][]byte, moduleCount)
	var prevName Identifier
	for i := 0; i < moduleCount; i++ {
		name, err := r.readIdentifier()
		if err != nil {
			return nil, err
		}
		// Keys must arrive strictly ascending. Accepting any other
		// order would let two byte strings decode to equal values.
		if i > 0 && name <= prevName {
			return nil, r.malformed("module names out of order")
		}
		prevName = name
		code, err := r.readVarBytes()
		if err != nil {
			return nil, err
		}
		modules[name] = code
	}

	originCount, err := r.readLen()
	if err != nil {
		return nil, err
	}
	origins := make([]TypeOrigin, 0, originCount)
	for i := 0; i < originCount; i++ {
		moduleName, err := r.readIdentifier()
		if err != nil {
			return nil, err
		}
		structName, err := r.readIdentifier()
		if err != nil {
			return nil, err
		}
		pkg, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		origins = append(origins, TypeOrigin{
			ModuleName: moduleName,
			StructName: structName,
			Package:    pkg,
		})
	}

	linkageCount, err := r.readLen()
	if err != nil {
		return nil, err
	}
	linkage := make(map[ObjectId]UpgradeInfo, linkageCount)
	var prevId ObjectId
	for i := 0; i < linkageCount; i++ {
		depId, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		if i > 0 && depId.Cmp(prevId) <= 0 {
			return nil, r.malformed("linkage table ids out of order")
		}
		prevId = depId
		upgradedId, err := r.readAddress()
		if err != nil {
			return nil, err
		}
		upgradedVersion, err := r.readU64()
		if err != nil {
			return nil, err
		}
		linkage[depId] = UpgradeInfo{UpgradedId: upgradedId, UpgradedVersion: upgradedVersion}
	}

	return &MovePackage{
		Id:              id,
		Version:         version,
		Modules:         modules,
		TypeOriginTable: origins,
		LinkageTable:    linkage,
	}, nil
}

func decodeOwner(r *wireReader) (Owner, error) {
	r.entity = "owner"
	tag, err := r.readTag()
	if err != nil {
		return Owner{}, err
	}
	if tag > uint64(OwnerConsensusAddress) {
		return Owner{}, r.malformed(fmt.Sprintf("unknown owner tag %d", tag))
	}
	switch OwnerKind(tag) {
	case OwnerAddress:
		addr, err := r.readAddress()
		if err != nil {
			return Owner{}, err
		}
		return AddressOwner(addr), nil
	case OwnerObject:
		id, err := r.readAddress()
		if err != nil {
			return Owner{}, err
		}
		return ObjectOwner(id), nil
	case OwnerShared:
		version, err := r.readU64()
		if err != nil {
			return Owner{}, err
		}
		return SharedOwner(version), nil
	case OwnerImmutable:
		return ImmutableOwner(), nil
	case OwnerConsensusAddress:
		startVersion, err := r.readU64()
		if err != nil {
			return Owner{}, err
		}
		addr, err := r.readAddress()
		if err != nil {
			return Owner{}, err
		}
		return ConsensusAddressOwner(startVersion, addr), nil
	default:
		return Owner{}, r.malformed(fmt.Sprintf("unknown owner tag %d", tag))
	}
}

func decodeTypeTag(r *wireReader) (TypeTag, error) {
	r.entity = "type tag"
	tag, err := r.readTag()
	if err != nil {
		return TypeTag{}, err
	}
	if tag > uint64(TypeU256) {
		return TypeTag{}, r.malformed(fmt.Sprintf("unknown type tag %d", tag))
	}
	switch TypeKind(tag) {
	case TypeBool:
		return BoolType(), nil
	case TypeU8:
		return U8Type(), nil
	case TypeU16:
		return U16Type(), nil
	case TypeU32:
		return U32Type(), nil
	case TypeU64:
		return U64Type(), nil
	case TypeU128:
		return U128Type(), nil
	case TypeU256:
		return U256Type(), nil
	case TypeAddress:
		return AddressType(), nil
	case TypeSigner:
		return SignerType(), nil
	case TypeVector:
		elem, err := decodeTypeTag(r)
		if err != nil {
			return TypeTag{}, err
		}
		return VectorType(elem), nil
	case TypeStruct:
		s, err := decodeStructTag(r)
		if err != nil {
			return TypeTag{}, err
		}
		return StructType(s), nil
	default:
		return TypeTag{}, r.malformed(fmt.Sprintf("unknown type tag %d", tag))
	}
}

func decodeStructTag(r *wireReader) (StructTag, error) {
	r.entity = "struct tag"
	addr, err := r.readAddress()
	if err != nil {
		return StructTag{}, err
	}
	module, err := r.readIdentifier()
	if err != nil {
		return StructTag{}, err
	}
	name, err := r.readIdentifier()
	if err != nil {
		return StructTag{}, err
	}
	paramCount, err := r.readLen()
	if err != nil {
		return StructTag{}, err
	}
	var params []TypeTag
	if paramCount > 0 {
		params = make([]TypeTag, 0, paramCount)
		for i := 0; i < paramCount; i++ {
			p, err := decodeTypeTag(r)
			if err != nil {
				return StructTag{}, err
			}
			// Restore entity after the recursive call rewrote it.
			r.entity = "struct tag"
			params = append(params, p)
		}
	}
	return StructTag{Address: addr, Module: module, Name: name, TypeParams: params}, nil
}
