// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package tct

import (
	"encoding/hex"
	"fmt"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/blake2b"
)

// fieldModulus is the BN254 (alt_bn128) scalar field order. The tree's hashes are elements of
// this field so that the domain separator's height contribution can be added in the field
// instead of concatenated into the preimage, per the construction below.
var fieldModulus = uint256.MustFromHex("0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001")

// domainSeparator is derived once from a chain constant, following the same recipe as the
// original construction: hash a fixed string and reduce the digest into the field.
var domainSeparator = feFromWideBytes(blake2b256([]byte("tct-go.domain-separator")))

// Hash is a field element: the hash of a commitment or of an internal node of the tree.
//
// The zero value is the Zero padding constant; other hashes come from One, Of or NodeHash.
type Hash struct {
	fe uint256.Int
}

// Zero is the padding constant used for the missing children of a Frontier-place node.
func Zero() Hash { return Hash{fe: *uint256.NewInt(0)} }

// One is the padding constant used for the missing children of a Complete-place node.
func One() Hash { return Hash{fe: *uint256.NewInt(1)} }

// uninitializedSentinel is out of range for the field (the field modulus is 254 bits, this value
// is all-ones across 256 bits), so it can never collide with a real hash.
var uninitializedSentinel = func() uint256.Int {
	var u uint256.Int
	u.SetAllOne()
	return u
}()

// Uninitialized is the sentinel hash used for not-yet-known node hashes during out-of-order
// reconstruction (§4.9). It must never appear in a finished tree.
func Uninitialized() Hash { return Hash{fe: uninitializedSentinel} }

// IsZero reports whether h is the Zero padding constant.
func (h Hash) IsZero() bool { return h.fe == *uint256.NewInt(0) }

// IsOne reports whether h is the One padding constant.
func (h Hash) IsOne() bool { return h.fe == *uint256.NewInt(1) }

// IsUninitialized reports whether h is the out-of-range deserialization sentinel.
func (h Hash) IsUninitialized() bool { return h.fe == uninitializedSentinel }

// Equal reports whether two hashes are the same field element.
func (h Hash) Equal(other Hash) bool { return h.fe == other.fe }

// Bytes returns the 32-byte little-endian encoding of h.
func (h Hash) Bytes() [32]byte {
	be := h.fe.Bytes32()
	var le [32]byte
	for i := range be {
		le[i] = be[31-i]
	}
	return le
}

// HashFromBytes decodes a 32-byte little-endian field element.
func HashFromBytes(b [32]byte) Hash {
	var be [32]byte
	for i := range b {
		be[i] = b[31-i]
	}
	var fe uint256.Int
	fe.SetBytes32(be[:])
	fe.Mod(&fe, fieldModulus)
	return Hash{fe: fe}
}

func (h Hash) String() string {
	switch {
	case h.IsZero():
		return "0"
	case h.IsOne():
		return "1"
	case h.IsUninitialized():
		return "uninitialized"
	default:
		b := h.Bytes()
		return hex.EncodeToString(b[:])
	}
}

func blake2b256(data ...[]byte) [32]byte {
	hasher, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for a bad key, and we never pass one.
		panic(err)
	}
	for _, d := range data {
		hasher.Write(d)
	}
	var out [32]byte
	copy(out[:], hasher.Sum(nil))
	return out
}

// feFromWideBytes reduces a 32-byte digest into the field, matching the domain separator
// derivation in the original construction (reduce a hash output modulo the field order).
func feFromWideBytes(digest [32]byte) uint256.Int {
	var fe uint256.Int
	fe.SetBytes(digest[:])
	fe.Mod(&fe, fieldModulus)
	return fe
}

// heightSeparator returns the domain separator for an internal node at the given height, computed
// as domainSeparator + height in the field (additive, not concatenated).
func heightSeparator(height uint8) uint256.Int {
	var hFe, out uint256.Int
	hFe.SetUint64(uint64(height))
	out.AddMod(&domainSeparator, &hFe, fieldModulus)
	return out
}

// Of hashes a single commitment into a leaf hash, domain-separated from internal node hashes.
func Of(c Commitment) Hash {
	sep := domainSeparator.Bytes32()
	digest := blake2b256(sep[:], c[:])
	return Hash{fe: feFromWideBytes(digest)}
}

// NodeHash constructs the hash of an internal node at the given height (1..=24) from the hashes
// of its four children, in order. Height contributes additively to the domain separator so that
// each level of the tree has a distinct but cheaply-derived separator.
func NodeHash(height uint8, a, b, c, d Hash) Hash {
	sep := heightSeparator(height)
	sepBytes := sep.Bytes32()
	ab, bb, cb, db := a.Bytes(), b.Bytes(), c.Bytes(), d.Bytes()
	digest := blake2b256(sepBytes[:], ab[:], bb[:], cb[:], db[:])
	return Hash{fe: feFromWideBytes(digest)}
}

// paddingFor returns the constant used in place of an absent child, which depends on whether the
// node holding it is on the Frontier or is Complete (sealed). This distinction is load-bearing:
// a finalized subtree's hash must not depend on how it was reached.
func paddingFor(place Place) Hash {
	if place == PlaceFrontier {
		return Zero()
	}
	return One()
}

// sanityCheckHeight panics if height is outside the valid internal-node range; an out-of-range
// height is always a programmer error, not something a caller can trigger legitimately.
func sanityCheckHeight(height uint8) {
	if height < 1 || height > 24 {
		panic(fmt.Sprintf("tct: invalid internal node height %d", height))
	}
}
