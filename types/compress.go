package types

// Compact type-tag compression.
//
// A generic struct tag for a well-known coin type runs 80+ bytes on the
// wire; the types that dominate real object populations get a 1-byte
// compact form instead. Classification happens at encode time only and
// applies only to the type of a MoveStruct; decoding always expands back
// to the fully qualified tag, so the compact form never leaks into the
// in-memory model and equality is always plain tag equality. That is
// also the forward-compatibility contract: adding a new compact variant
// later can never make previously stored Other(...) bytes mean something
// else, and a specialized variant always compares equal to its
// uncompressed spelling because both decode to the same StructTag.

// Compact wire tags. Fixed by the protocol; never renumber.
const (
	compactOther      = 0x00 // full struct tag follows
	compactGasCoin    = 0x01 // no payload
	compactStakedCoin = 0x02 // no payload
	compactCoin       = 0x03 // inner type tag follows
)

// WellKnownTypes is the immutable table of type signatures the compact
// encoding specializes. It is injected into the codec rather than
// hard-coded in the classifier, so the classifier stays pure and new
// well-known types can be tabled and tested independently.
type WellKnownTypes struct {
	// CoinAddress/CoinModule/CoinName identify the generic
	// one-parameter coin wrapper type.
	CoinAddress Address
	CoinModule  Identifier
	CoinName    Identifier

	// GasCoinInner is the native gas coin type carried inside the coin
	// wrapper, e.g. 0x2::bfc::BFC.
	GasCoinInner StructTag

	// StakedCoin is the staked-native-coin record type,
	// e.g. 0x3::staking_pool::StakedBfc.
	StakedCoin StructTag
}

// frameworkAddress returns the address 0x0...0b of a framework package.
func frameworkAddress(b byte) Address {
	var a Address
	a[AddressLength-1] = b
	return a
}

// DefaultWellKnownTypes returns the chain's canonical well-known type
// table.
func DefaultWellKnownTypes() WellKnownTypes {
	two := frameworkAddress(0x02)
	three := frameworkAddress(0x03)
	return WellKnownTypes{
		CoinAddress: two,
		CoinModule:  "coin",
		CoinName:    "Coin",
		GasCoinInner: StructTag{
			Address: two,
			Module:  "bfc",
			Name:    "BFC",
		},
		StakedCoin: StructTag{
			Address: three,
			Module:  "staking_pool",
			Name:    "StakedBfc",
		},
	}
}

// CoinTag returns the wrapper tag for a coin holding inner.
func (wk WellKnownTypes) CoinTag(inner TypeTag) StructTag {
	return StructTag{
		Address:    wk.CoinAddress,
		Module:     wk.CoinModule,
		Name:       wk.CoinName,
		TypeParams: []TypeTag{inner},
	}
}

// GasCoinTag returns the fully qualified native gas coin tag.
func (wk WellKnownTypes) GasCoinTag() StructTag {
	return wk.CoinTag(StructType(wk.GasCoinInner))
}

// StakedCoinTag returns the fully qualified staked-coin record tag.
func (wk WellKnownTypes) StakedCoinTag() StructTag {
	return wk.StakedCoin
}

// coinTypeParam returns the inner type when tag is the coin wrapper.
func (wk WellKnownTypes) coinTypeParam(tag StructTag) (TypeTag, bool) {
	if tag.Address == wk.CoinAddress &&
		tag.Module == wk.CoinModule &&
		tag.Name == wk.CoinName &&
		len(tag.TypeParams) == 1 {
		return tag.TypeParams[0], true
	}
	return TypeTag{}, false
}

// compactStructTag is the wire-side classification of a struct tag. It
// exists only between the classifier and the codec.
type compactStructTag struct {
	wire byte
	// other is the full tag for compactOther.
	other StructTag
	// inner is the coin's type parameter for compactCoin.
	inner TypeTag
}

// compressStructTag deterministically classifies tag. The order of the
// checks is part of the wire contract: the coin wrapper is recognized
// before the staked-coin record, and everything unrecognized falls
// through to the uncompressed form.
func (wk WellKnownTypes) compressStructTag(tag StructTag) compactStructTag {
	if inner, ok := wk.coinTypeParam(tag); ok {
		if s, isStruct := inner.Struct(); isStruct && s.Equal(wk.GasCoinInner) {
			return compactStructTag{wire: compactGasCoin}
		}
		return compactStructTag{wire: compactCoin, inner: inner}
	}
	if tag.Equal(wk.StakedCoin) {
		return compactStructTag{wire: compactStakedCoin}
	}
	return compactStructTag{wire: compactOther, other: tag}
}

// expandStructTag is the inverse of compressStructTag: every compact
// variant expands to its fully qualified canonical tag, and Other passes
// through unchanged.
func (wk WellKnownTypes) expandStructTag(c compactStructTag) StructTag {
	switch c.wire {
	case compactGasCoin:
		return wk.GasCoinTag()
	case compactStakedCoin:
		return wk.StakedCoinTag()
	case compactCoin:
		return wk.CoinTag(c.inner)
	default:
		return c.other
	}
}
