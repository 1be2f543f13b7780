// Package berrytest provides test utilities for working with the
// canonical object codec: wire fixtures captured from the live network,
// builders for synthetic objects, and a compliance suite for
// ObjectSource implementations.
package berrytest

import "testing"

// Names of the wire fixtures, usable with Fixture and for subtests.
const (
	FixtureGasCoin     = "gas_coin"
	FixtureStakedCoin  = "staked_coin"
	FixtureNFT         = "nft"
	FixtureForeignCoin = "foreign_coin"
	FixturePackage     = "package"
)

// FixtureNames lists every wire fixture in a stable order.
var FixtureNames = []string{
	FixtureGasCoin,
	FixtureStakedCoin,
	FixtureNFT,
	FixtureForeignCoin,
	FixturePackage,
}

// Fixture returns a copy of the named canonical wire buffer. Each
// fixture is the exact byte string of a live on-chain object: a native
// gas coin, a staked-coin record, an NFT struct, a non-native coin, and
// a published package.
func Fixture(t testing.TB, name string) []byte {
	t.Helper()
	var raw []byte
	switch name {
	case FixtureGasCoin:
		raw = fixtureGasCoin
	case FixtureStakedCoin:
		raw = fixtureStakedCoin
	case FixtureNFT:
		raw = fixtureNFT
	case FixtureForeignCoin:
		raw = fixtureForeignCoin
	case FixturePackage:
		raw = fixturePackage
	default:
		t.Fatalf("unknown fixture %q", name)
	}
	return append([]byte(nil), raw...)
}

var fixtureGasCoin = []byte{
	0, 1, 1, 32, 79, 43, 0, 0, 0, 0, 0, 40, 35, 95, 175, 213,
	151, 87, 206, 190, 35, 131, 79, 35, 254, 22, 15, 181, 40, 108, 28, 77,
	68, 229, 107, 254, 191, 160, 196, 186, 42, 2, 122, 53, 52, 133, 199, 58,
	0, 0, 0, 0, 0, 79, 255, 208, 0, 85, 34, 190, 75, 192, 41, 114,
	76, 127, 15, 110, 215, 9, 58, 107, 243, 160, 155, 144, 230, 47, 97, 220,
	21, 24, 30, 26, 62, 32, 17, 197, 192, 38, 64, 173, 142, 143, 49, 111,
	15, 211, 92, 84, 48, 160, 243, 102, 229, 253, 251, 137, 210, 101, 119, 173,
	228, 51, 141, 20, 15, 85, 96, 19, 15, 0, 0, 0, 0, 0,
}

var fixtureStakedCoin = []byte{
	0, 2, 1, 154, 1, 52, 5, 0, 0, 0, 0, 80, 3, 112, 71, 231,
	166, 234, 205, 164, 99, 237, 29, 56, 97, 170, 21, 96, 105, 158, 227, 122,
	22, 251, 60, 162, 12, 97, 151, 218, 71, 253, 231, 239, 116, 138, 12, 233,
	128, 195, 128, 77, 33, 38, 122, 77, 53, 154, 197, 198, 75, 212, 12, 182,
	163, 224, 42, 82, 123, 69, 248, 40, 207, 143, 211, 13, 106, 1, 0, 0,
	0, 0, 0, 0, 59, 81, 183, 246, 112, 0, 0, 0, 0, 79, 255, 208,
	0, 85, 34, 190, 75, 192, 41, 114, 76, 127, 15, 110, 215, 9, 58, 107,
	243, 160, 155, 144, 230, 47, 97, 220, 21, 24, 30, 26, 62, 32, 247, 239,
	248, 71, 247, 102, 190, 149, 232, 153, 138, 67, 169, 209, 203, 29, 255, 215,
	223, 57, 159, 44, 40, 218, 166, 13, 80, 71, 14, 188, 232, 68, 0, 0,
	0, 0, 0, 0, 0, 0,
}

var fixtureNFT = []byte{
	0, 0, 97, 201, 195, 159, 216, 97, 133, 173, 96, 215, 56, 212, 229, 43,
	208, 139, 218, 7, 29, 54, 106, 205, 224, 126, 7, 195, 145, 106, 45, 117,
	168, 22, 12, 100, 105, 115, 116, 114, 105, 98, 117, 116, 105, 111, 110, 11,
	68, 69, 69, 80, 87, 114, 97, 112, 112, 101, 114, 0, 0, 124, 24, 223,
	4, 0, 0, 0, 0, 40, 31, 8, 18, 84, 38, 164, 252, 84, 115, 250,
	246, 137, 132, 128, 186, 156, 36, 62, 18, 140, 21, 4, 90, 209, 105, 85,
	84, 92, 214, 97, 81, 207, 64, 194, 198, 208, 21, 0, 0, 0, 0, 79,
	255, 208, 0, 85, 34, 190, 75, 192, 41, 114, 76, 127, 15, 110, 215, 9,
	58, 107, 243, 160, 155, 144, 230, 47, 97, 220, 21, 24, 30, 26, 62, 32,
	170, 4, 94, 114, 207, 155, 31, 80, 62, 254, 220, 206, 240, 218, 83, 54,
	204, 197, 255, 239, 41, 66, 199, 150, 56, 189, 86, 217, 166, 216, 128, 241,
	64, 205, 21, 0, 0, 0, 0, 0,
}

var fixtureForeignCoin = []byte{
	0, 3, 7, 118, 203, 129, 155, 1, 171, 237, 80, 43, 238, 138, 112, 43,
	76, 45, 84, 117, 50, 193, 47, 37, 0, 28, 157, 234, 121, 90, 94, 99,
	28, 38, 241, 3, 102, 117, 100, 3, 70, 85, 68, 0, 1, 193, 89, 252,
	3, 0, 0, 0, 0, 40, 33, 214, 90, 11, 56, 243, 115, 10, 250, 121,
	250, 28, 34, 237, 104, 130, 148, 40, 130, 29, 248, 137, 244, 27, 138, 94,
	150, 28, 182, 104, 162, 185, 0, 152, 247, 62, 93, 1, 0, 0, 0, 42,
	95, 32, 226, 13, 31, 128, 91, 188, 127, 235, 12, 75, 73, 116, 112, 3,
	227, 244, 126, 59, 81, 214, 118, 144, 243, 195, 17, 82, 216, 119, 170, 32,
	239, 247, 71, 249, 241, 98, 133, 53, 46, 37, 100, 242, 94, 231, 241, 184,
	8, 69, 192, 69, 67, 1, 116, 251, 229, 226, 99, 119, 79, 255, 71, 43,
	64, 242, 19, 0, 0, 0, 0, 0,
}

var fixturePackage = []byte{
	1, 135, 35, 29, 28, 138, 126, 114, 145, 204, 122, 145, 8, 244, 199, 188,
	26, 10, 28, 14, 182, 55, 91, 91, 97, 10, 245, 202, 35, 223, 14, 140,
	86, 1, 0, 0, 0, 0, 0, 0, 0, 1, 9, 98, 117, 108, 108, 115,
	104, 97, 114, 107, 162, 6, 161, 28, 235, 11, 6, 0, 0, 0, 10, 1,
	0, 12, 2, 12, 36, 3, 48, 61, 4, 109, 12, 5, 121, 137, 1, 7,
	130, 2, 239, 1, 8, 241, 3, 96, 6, 209, 4, 82, 10, 163, 5, 5,
	12, 168, 5, 75, 0, 7, 1, 16, 2, 9, 2, 21, 2, 22, 2, 23,
	0, 0, 2, 0, 1, 3, 7, 1, 0, 0, 2, 1, 12, 1, 0, 1,
	2, 2, 12, 1, 0, 1, 2, 4, 12, 1, 0, 1, 4, 5, 2, 0,
	5, 6, 7, 0, 0, 12, 0, 1, 0, 0, 13, 2, 1, 0, 0, 8,
	3, 1, 0, 1, 20, 7, 8, 1, 0, 2, 8, 18, 19, 1, 0, 2,
	10, 10, 11, 1, 2, 2, 14, 17, 1, 1, 0, 3, 17, 7, 1, 1,
	12, 3, 18, 16, 1, 1, 12, 4, 19, 13, 14, 0, 5, 15, 5, 6,
	0, 3, 6, 5, 9, 7, 12, 8, 15, 6, 9, 4, 9, 2, 8, 0,
	7, 8, 5, 0, 4, 7, 11, 4, 1, 8, 0, 3, 5, 7, 8, 5,
	2, 7, 11, 4, 1, 8, 0, 11, 2, 1, 8, 0, 2, 11, 3, 1,
	8, 0, 11, 4, 1, 8, 0, 1, 10, 2, 1, 8, 6, 1, 9, 0,
	1, 11, 1, 1, 9, 0, 1, 8, 0, 7, 9, 0, 2, 10, 2, 10,
	2, 10, 2, 11, 1, 1, 8, 6, 7, 8, 5, 2, 11, 4, 1, 9,
	0, 11, 3, 1, 9, 0, 1, 11, 3, 1, 8, 0, 1, 6, 8, 5,
	1, 5, 1, 11, 4, 1, 8, 0, 2, 9, 0, 5, 4, 7, 11, 4,
	1, 9, 0, 3, 5, 7, 8, 5, 2, 7, 11, 4, 1, 9, 0, 11,
	2, 1, 9, 0, 1, 3, 9, 66, 85, 76, 76, 83, 72, 65, 82, 75,
	4, 67, 111, 105, 110, 12, 67, 111, 105, 110, 77, 101, 116, 97, 100, 97,
	116, 97, 6, 79, 112, 116, 105, 111, 110, 11, 84, 114, 101, 97, 115, 117,
	114, 121, 67, 97, 112, 9, 84, 120, 67, 111, 110, 116, 101, 120, 116, 3,
	85, 114, 108, 9, 98, 117, 108, 108, 115, 104, 97, 114, 107, 4, 98, 117,
	114, 110, 4, 99, 111, 105, 110, 15, 99, 114, 101, 97, 116, 101, 95, 99,
	117, 114, 114, 101, 110, 99, 121, 11, 100, 117, 109, 109, 121, 95, 102, 105,
	101, 108, 100, 4, 105, 110, 105, 116, 4, 109, 105, 110, 116, 17, 109, 105,
	110, 116, 95, 97, 110, 100, 95, 116, 114, 97, 110, 115, 102, 101, 114, 21,
	110, 101, 119, 95, 117, 110, 115, 97, 102, 101, 95, 102, 114, 111, 109, 95,
	98, 121, 116, 101, 115, 6, 111, 112, 116, 105, 111, 110, 20, 112, 117, 98,
	108, 105, 99, 95, 102, 114, 101, 101, 122, 101, 95, 111, 98, 106, 101, 99,
	116, 15, 112, 117, 98, 108, 105, 99, 95, 116, 114, 97, 110, 115, 102, 101,
	114, 6, 115, 101, 110, 100, 101, 114, 4, 115, 111, 109, 101, 8, 116, 114,
	97, 110, 115, 102, 101, 114, 10, 116, 120, 95, 99, 111, 110, 116, 101, 120,
	116, 3, 117, 114, 108, 135, 35, 29, 28, 138, 126, 114, 145, 204, 122, 145,
	8, 244, 199, 188, 26, 10, 28, 14, 182, 55, 91, 91, 97, 10, 245, 202,
	35, 223, 14, 140, 86, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 2, 10, 2, 10, 9, 66, 85, 76, 76, 83, 72, 65,
	82, 75, 10, 2, 20, 19, 66, 117, 108, 108, 32, 83, 104, 97, 114, 107,
	32, 83, 117, 105, 70, 114, 101, 110, 115, 10, 2, 1, 0, 10, 2, 39,
	38, 104, 116, 116, 112, 115, 58, 47, 47, 105, 46, 105, 98, 98, 46, 99,
	111, 47, 104, 87, 89, 50, 87, 53, 120, 47, 98, 117, 108, 108, 115, 104,
	97, 114, 107, 46, 112, 110, 103, 0, 2, 1, 11, 1, 0, 0, 0, 0,
	4, 20, 11, 0, 49, 6, 7, 0, 7, 1, 7, 2, 7, 3, 17, 10,
	56, 0, 10, 1, 56, 1, 12, 2, 12, 3, 11, 2, 56, 2, 11, 3,
	11, 1, 46, 17, 9, 56, 3, 2, 1, 1, 4, 0, 1, 6, 11, 0,
	11, 1, 11, 2, 11, 3, 56, 4, 2, 2, 1, 4, 0, 1, 5, 11,
	0, 11, 1, 56, 5, 1, 2, 0, 1, 9, 98, 117, 108, 108, 115, 104,
	97, 114, 107, 9, 66, 85, 76, 76, 83, 72, 65, 82, 75, 135, 35, 29,
	28, 138, 126, 114, 145, 204, 122, 145, 8, 244, 199, 188, 26, 10, 28, 14,
	182, 55, 91, 91, 97, 10, 245, 202, 35, 223, 14, 140, 86, 2, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 2, 4, 0, 0, 0, 0, 0, 0, 0, 3, 32,
	87, 145, 191, 231, 147, 185, 46, 159, 240, 181, 95, 126, 236, 65, 154, 55,
	16, 196, 229, 218, 47, 59, 99, 197, 13, 89, 18, 159, 205, 129, 112, 131,
	112, 192, 126, 0, 0, 0, 0, 0,
}
