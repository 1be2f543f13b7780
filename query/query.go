// Package query defines the textual-transport shapes of the object
// model: the JSON envelope types exchanged with the remote object-query
// layer, and the forgiving scalar decoders those envelopes need.
//
// The forgiveness is one-directional and deliberate. JSON transports
// cannot safely carry full 64-bit integers as native numbers, and byte
// payloads arrive base64-encoded under either RFC 4648 alphabet with or
// without padding — so decoding accepts every spelling the transport
// may produce, while encoding always emits one fixed spelling. None of
// this touches the canonical binary codec, which lives in
// [github.com/blockberries/objectberry/types] and is bit-exact.
package query

import (
	"errors"

	"github.com/blockberries/objectberry/types"
)

// ObjectFilter narrows an objects query. All fields are optional;
// absent fields do not constrain the result.
type ObjectFilter struct {
	// Type restricts results to objects of a type, written in the
	// canonical text form (a package, package::module, or a fully
	// qualified struct type).
	Type *string `json:"type,omitempty"`
	// Owner restricts results to objects owned by an address.
	Owner *types.Address `json:"owner,omitempty"`
	// ObjectIds restricts results to an explicit id set.
	ObjectIds []types.ObjectId `json:"objectIds,omitempty"`
	// ObjectKeys restricts results to explicit id/version pairs.
	ObjectKeys []ObjectKey `json:"objectKeys,omitempty"`
}

// ObjectKey pins one object version in a query.
type ObjectKey struct {
	ObjectId types.ObjectId `json:"objectId"`
	Version  Uint53         `json:"version"`
}

// PageInfo carries cursor pagination state for a page of results.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor,omitempty"`
	EndCursor       *string `json:"endCursor,omitempty"`
}

// ObjectNode is one object in a query response: its canonical bytes,
// delivered base64-encoded.
type ObjectNode struct {
	Bcs Base64 `json:"bcs,omitempty"`
}

// ObjectPage is a page of objects plus its pagination state.
type ObjectPage struct {
	PageInfo PageInfo     `json:"pageInfo"`
	Nodes    []ObjectNode `json:"nodes"`
}

// Decode runs the node's payload through the canonical binary decoder.
func (n ObjectNode) Decode() (*types.Object, error) {
	if len(n.Bcs) == 0 {
		return nil, errors.New("object node carries no canonical bytes")
	}
	var o types.Object
	if err := o.UnmarshalBinary(n.Bcs); err != nil {
		return nil, err
	}
	return &o, nil
}
