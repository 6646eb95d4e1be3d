package block

import (
	"github.com/nanoshift/nanogo/keys"
	"github.com/nanoshift/nanogo/nanoerr"
	"github.com/nanoshift/nanogo/types"
)

// Builder stages the fields of a state block before it is signed and
// worked. Fields are set incrementally; Build fails with MissingField
// until all six hashable fields are present. Signature and Work may be
// attached separately, by Sign or by the caller (e.g. when the node is
// expected to supply Work).
type Builder struct {
	account        *types.PublicKey
	previous       *types.BlockHash
	representative *types.PublicKey
	balance        *types.Raw
	link           *types.Link
	subtype        types.Subtype

	signature *types.Signature
	work      *types.Work
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) Account(a types.PublicKey) *Builder        { b.account = &a; return b }
func (b *Builder) Previous(h types.BlockHash) *Builder       { b.previous = &h; return b }
func (b *Builder) Representative(r types.PublicKey) *Builder { b.representative = &r; return b }
func (b *Builder) Balance(v types.Raw) *Builder              { b.balance = &v; return b }
func (b *Builder) Link(l types.Link) *Builder                { b.link = &l; return b }
func (b *Builder) Subtype(s types.Subtype) *Builder          { b.subtype = s; return b }
func (b *Builder) Work(w types.Work) *Builder                { b.work = &w; return b }

// Hash returns the would-be digest of the currently staged fields, without
// requiring completeness beyond the six hashable fields, and without
// finalizing the builder.
func (b *Builder) Hash() (types.BlockHash, error) {
	account, previous, representative, balance, link, err := b.requireHashable()
	if err != nil {
		return types.BlockHash{}, err
	}
	return HashStateBlock(account, previous, representative, balance, link), nil
}

// Sign hashes the currently staged fields and signs the digest with
// keypair, storing the result. If the six hashable fields are not yet
// complete, Sign is a documented no-op: it returns nil without storing a
// signature, so callers may freely call Sign while still staging fields.
func (b *Builder) Sign(kp keys.KeyPair) error {
	hash, err := b.Hash()
	if err != nil {
		return nil
	}
	sig, err := kp.Sign(hash[:])
	if err != nil {
		return err
	}
	b.signature = &sig
	return nil
}

// Build returns the finished StateBlock, or MissingField if any of the six
// hashable fields is unset. A missing Signature or Work does not prevent
// Build from succeeding — Process may accept a block the node completes.
func (b *Builder) Build() (StateBlock, error) {
	account, previous, representative, balance, link, err := b.requireHashable()
	if err != nil {
		return StateBlock{}, err
	}
	return StateBlock{
		Account:        account,
		Previous:       previous,
		Representative: representative,
		Balance:        balance,
		Link:           link,
		Signature:      b.signature,
		Work:           b.work,
		Subtype:        b.subtype,
	}, nil
}

func (b *Builder) requireHashable() (types.PublicKey, types.BlockHash, types.PublicKey, types.Raw, types.Link, error) {
	switch {
	case b.account == nil:
		return zeroHashable(nanoerr.WithField(nanoerr.MissingField, "account"))
	case b.previous == nil:
		return zeroHashable(nanoerr.WithField(nanoerr.MissingField, "previous"))
	case b.representative == nil:
		return zeroHashable(nanoerr.WithField(nanoerr.MissingField, "representative"))
	case b.balance == nil:
		return zeroHashable(nanoerr.WithField(nanoerr.MissingField, "balance"))
	case b.link == nil:
		return zeroHashable(nanoerr.WithField(nanoerr.MissingField, "link"))
	}
	return *b.account, *b.previous, *b.representative, *b.balance, *b.link, nil
}

func zeroHashable(err error) (types.PublicKey, types.BlockHash, types.PublicKey, types.Raw, types.Link, error) {
	return types.PublicKey{}, types.BlockHash{}, types.PublicKey{}, types.Raw{}, types.Link{}, err
}

// Send stages a send block: link is the destination account's public key,
// subtype is Send. Caller still supplies account, previous, representative,
// and the post-send balance.
func Send(account types.PublicKey, previous types.BlockHash, representative types.PublicKey, newBalance types.Raw, destination types.PublicKey) *Builder {
	return NewBuilder().
		Account(account).
		Previous(previous).
		Representative(representative).
		Balance(newBalance).
		Link(types.LinkFromPublicKey(destination)).
		Subtype(types.SubtypeSend)
}

// Receive stages a receive block: link is the source send block's hash,
// subtype is Receive. Requires an existing frontier (use Open for an
// account's first block).
func Receive(account types.PublicKey, previous types.BlockHash, representative types.PublicKey, newBalance types.Raw, sourceHash types.BlockHash) *Builder {
	return NewBuilder().
		Account(account).
		Previous(previous).
		Representative(representative).
		Balance(newBalance).
		Link(types.LinkFromBlockHash(sourceHash)).
		Subtype(types.SubtypeReceive)
}

// Open stages an account's first block: previous is the zero hash, link is
// the source send block's hash, subtype is Open.
func Open(account types.PublicKey, representative types.PublicKey, balance types.Raw, sourceHash types.BlockHash) *Builder {
	return NewBuilder().
		Account(account).
		Previous(types.BlockHash{}).
		Representative(representative).
		Balance(balance).
		Link(types.LinkFromBlockHash(sourceHash)).
		Subtype(types.SubtypeOpen)
}

// Change stages a representative-change block: link is the zero value,
// balance is unchanged from the frontier, subtype is Change.
func Change(account types.PublicKey, previous types.BlockHash, newRepresentative types.PublicKey, balance types.Raw) *Builder {
	return NewBuilder().
		Account(account).
		Previous(previous).
		Representative(newRepresentative).
		Balance(balance).
		Link(types.ZeroLink).
		Subtype(types.SubtypeChange)
}
