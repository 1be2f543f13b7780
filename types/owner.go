package types

import "fmt"

// OwnerKind discriminates the ownership variants. The numeric values are
// the wire tags.
type OwnerKind uint8

const (
	// OwnerAddress: exclusively owned by a single address, mutable.
	OwnerAddress OwnerKind = 0
	// OwnerObject: exclusively owned by a single object, mutable.
	OwnerObject OwnerKind = 1
	// OwnerShared: usable and mutable by anyone.
	OwnerShared OwnerKind = 2
	// OwnerImmutable: nobody can mutate it; ownership is moot.
	OwnerImmutable OwnerKind = 3
	// OwnerConsensusAddress: exclusively owned by a single address and
	// sequenced through consensus.
	OwnerConsensusAddress OwnerKind = 4
)

// Owner encodes which principal, if any, may mutate an object and under
// what consensus discipline. It is a five-way variant built through the
// constructor functions below; the zero value is ownership by the zero
// address.
type Owner struct {
	kind OwnerKind
	// address carries the owning address (OwnerAddress,
	// OwnerConsensusAddress) or the owning object id (OwnerObject).
	address Address
	// version carries the version at which the object became shared
	// (OwnerShared) or most recently became a consensus object
	// (OwnerConsensusAddress).
	version Version
}

// AddressOwner makes an object exclusively owned by addr.
func AddressOwner(addr Address) Owner {
	return Owner{kind: OwnerAddress, address: addr}
}

// ObjectOwner makes an object exclusively owned by another object.
func ObjectOwner(id ObjectId) Owner {
	return Owner{kind: OwnerObject, address: id}
}

// SharedOwner marks an object shared as of the given version.
func SharedOwner(initialVersion Version) Owner {
	return Owner{kind: OwnerShared, version: initialVersion}
}

// ImmutableOwner marks an object immutable.
func ImmutableOwner() Owner {
	return Owner{kind: OwnerImmutable}
}

// ConsensusAddressOwner makes an object exclusively owned by addr and
// sequenced through consensus. startVersion is the version at which the
// object most recently transitioned into this ownership kind; unlike a
// shared object's initial version it may change if the ownership kind
// changes again.
func ConsensusAddressOwner(startVersion Version, addr Address) Owner {
	return Owner{kind: OwnerConsensusAddress, address: addr, version: startVersion}
}

// Kind returns the variant discriminant.
func (o Owner) Kind() OwnerKind { return o.kind }

// Address returns the owning address for OwnerAddress and
// OwnerConsensusAddress owners.
func (o Owner) Address() (Address, bool) {
	if o.kind == OwnerAddress || o.kind == OwnerConsensusAddress {
		return o.address, true
	}
	return Address{}, false
}

// ObjectId returns the owning object for OwnerObject owners.
func (o Owner) ObjectId() (ObjectId, bool) {
	if o.kind == OwnerObject {
		return o.address, true
	}
	return ObjectId{}, false
}

// SharedVersion returns the version at which the object became shared.
func (o Owner) SharedVersion() (Version, bool) {
	if o.kind == OwnerShared {
		return o.version, true
	}
	return 0, false
}

// StartVersion returns the version at which the object most recently
// became a consensus object.
func (o Owner) StartVersion() (Version, bool) {
	if o.kind == OwnerConsensusAddress {
		return o.version, true
	}
	return 0, false
}

func (o Owner) String() string {
	switch o.kind {
	case OwnerAddress:
		return fmt.Sprintf("address(%s)", o.address)
	case OwnerObject:
		return fmt.Sprintf("object(%s)", o.address)
	case OwnerShared:
		return fmt.Sprintf("shared(%d)", o.version)
	case OwnerImmutable:
		return "immutable"
	case OwnerConsensusAddress:
		return fmt.Sprintf("consensus(%d, %s)", o.version, o.address)
	default:
		return fmt.Sprintf("owner<%d>", o.kind)
	}
}
