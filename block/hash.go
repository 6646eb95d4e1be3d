// Package block implements state block assembly, canonical hashing, a
// staged builder with subtype-bound convenience factories, and subtype
// inference over third-party blocks.
package block

import (
	"golang.org/x/crypto/blake2b"

	"github.com/nanoshift/nanogo/types"
)

// preamble is 32 bytes, all zero except the final byte, which is the
// state-block type marker 0x06.
var preamble = func() [32]byte {
	var p [32]byte
	p[31] = 0x06
	return p
}()

// HashStateBlock computes the canonical Blake2b-256 digest of the six
// hashable fields, in order: preamble, account, previous, representative,
// balance (16 big-endian bytes), link. No length prefixes or delimiters.
// Subtype, signature, and work are never part of this input.
func HashStateBlock(account types.PublicKey, previous types.BlockHash, representative types.PublicKey, balance types.Raw, link types.Link) types.BlockHash {
	h, _ := blake2b.New256(nil)
	balBytes := balance.ToBEBytes16()

	h.Write(preamble[:])
	h.Write(account[:])
	h.Write(previous[:])
	h.Write(representative[:])
	h.Write(balBytes[:])
	h.Write(link[:])

	var out types.BlockHash
	copy(out[:], h.Sum(nil))
	return out
}
