package block

import (
	"github.com/nanoshift/nanogo/keys"
	"github.com/nanoshift/nanogo/types"
)

// StateBlock is the single block type in use on the network; any
// transaction kind is encoded via Subtype + Link. Invariants:
//   - Previous is the zero hash iff the block is an Open.
//   - Link is the zero value implies Change (given a non-zero Previous).
//   - Subtype is advisory metadata for the node; the signature binds only
//     the six hashable fields, never Subtype.
//   - A "complete" block has both Signature and Work set; Process may
//     accept a block missing either when the node is expected to supply it.
type StateBlock struct {
	Account        types.PublicKey
	Previous       types.BlockHash
	Representative types.PublicKey
	Balance        types.Raw
	Link           types.Link

	Signature *types.Signature
	Work      *types.Work
	Subtype   types.Subtype
}

// IsOpen reports whether this is an account's first block.
func (b StateBlock) IsOpen() bool { return b.Previous.IsZero() }

// Hash returns the canonical Blake2b-256 digest of the block's six
// hashable fields.
func (b StateBlock) Hash() types.BlockHash {
	return HashStateBlock(b.Account, b.Previous, b.Representative, b.Balance, b.Link)
}

// Root returns the proof-of-work root for this block: the previous hash
// for any block with a non-zero previous, or the account's public key
// (byte-identical cast) for an open block.
func (b StateBlock) Root() [32]byte {
	if b.IsOpen() {
		return b.Account
	}
	return b.Previous
}

// IsComplete reports whether both Signature and Work are present.
func (b StateBlock) IsComplete() bool {
	return b.Signature != nil && b.Work != nil
}

// Sign computes the block's hash and signs it with keypair, mutating
// Signature in place.
func (b *StateBlock) Sign(kp keys.KeyPair) error {
	hash := b.Hash()
	sig, err := kp.Sign(hash[:])
	if err != nil {
		return err
	}
	b.Signature = &sig
	return nil
}

// Verify checks the block's signature against its own account public key.
func (b StateBlock) Verify() (bool, error) {
	if b.Signature == nil {
		return false, nil
	}
	hash := b.Hash()
	return keys.Verify(b.Account, hash[:], *b.Signature)
}
