package wallet

import (
	"context"

	"github.com/nanoshift/nanogo/block"
	"github.com/nanoshift/nanogo/nanoerr"
	"github.com/nanoshift/nanogo/pow"
	"github.com/nanoshift/nanogo/rpc"
	"github.com/nanoshift/nanogo/types"
)

// Send transfers amount to destination, saturating to zero on underflow
// per §4.7's resolved balance-arithmetic open question. Follows the fixed
// info -> work -> build/sign -> process ordering.
func (a *Account) Send(ctx context.Context, destination types.PublicKey, amount types.Raw) (types.BlockHash, error) {
	fr, err := a.fetchFrontier(ctx)
	if err != nil {
		return types.BlockHash{}, err
	}
	if !fr.exists {
		return types.BlockHash{}, nanoerr.New(nanoerr.PreviousMismatch)
	}

	newBalance := fr.balance.SaturatingSub(amount)
	builder := block.Send(a.PublicKey(), fr.hash, fr.representative, newBalance, destination)
	return a.buildSignSubmit(ctx, builder, types.SubtypeSend, fr.hash)
}

// Receive applies a pending send identified by sourceHash and amount. If
// the account has no frontier, an Open block is built instead (source
// of the account's first value). representativeIfNew is only consulted when
// opening a new account; an existing account's current representative is
// carried forward unchanged.
func (a *Account) Receive(ctx context.Context, sourceHash types.BlockHash, amount types.Raw, representativeIfNew types.PublicKey) (types.BlockHash, error) {
	fr, err := a.fetchFrontier(ctx)
	if err != nil {
		return types.BlockHash{}, err
	}

	if !fr.exists {
		builder := block.Open(a.PublicKey(), representativeIfNew, amount, sourceHash)
		return a.buildSignSubmit(ctx, builder, types.SubtypeOpen, [32]byte(a.PublicKey()))
	}

	newBalance := fr.balance.SaturatingAdd(amount)
	builder := block.Receive(a.PublicKey(), fr.hash, fr.representative, newBalance, sourceHash)
	return a.buildSignSubmit(ctx, builder, types.SubtypeReceive, fr.hash)
}

// ChangeRepresentative switches the account's representative without
// moving funds.
func (a *Account) ChangeRepresentative(ctx context.Context, newRepresentative types.PublicKey) (types.BlockHash, error) {
	fr, err := a.fetchFrontier(ctx)
	if err != nil {
		return types.BlockHash{}, err
	}
	if !fr.exists {
		return types.BlockHash{}, nanoerr.New(nanoerr.PreviousMismatch)
	}

	builder := block.Change(a.PublicKey(), fr.hash, newRepresentative, fr.balance)
	return a.buildSignSubmit(ctx, builder, types.SubtypeChange, fr.hash)
}

// SendAndChange sends amount to destination while also switching the
// representative in the same block.
func (a *Account) SendAndChange(ctx context.Context, destination types.PublicKey, amount types.Raw, newRepresentative types.PublicKey) (types.BlockHash, error) {
	fr, err := a.fetchFrontier(ctx)
	if err != nil {
		return types.BlockHash{}, err
	}
	if !fr.exists {
		return types.BlockHash{}, nanoerr.New(nanoerr.PreviousMismatch)
	}

	newBalance := fr.balance.SaturatingSub(amount)
	builder := block.Send(a.PublicKey(), fr.hash, newRepresentative, newBalance, destination)
	return a.buildSignSubmit(ctx, builder, types.SubtypeSend, fr.hash)
}

// ReceiveAll enumerates the account's receivable blocks and calls
// Receive for each. For the bare-array shape the order is the node's; for
// the two object shapes the order is not defined. representativeIfNew
// is used only if the account turns out to be new (its first Receive
// becomes an Open). It accepts the node's three receivable-set shapes by
// delegating to rpc.ParseReceivable, resolving missing amounts via
// block_info.
func (a *Account) ReceiveAll(ctx context.Context, representativeIfNew types.PublicKey) ([]types.BlockHash, error) {
	resp, err := a.wallet.rpcClient.AccountsReceivable(ctx, []string{a.Address()}, "-1")
	if err != nil {
		return nil, err
	}

	entries, err := rpc.ParseReceivable(resp.Blocks)
	if err != nil {
		return nil, err
	}

	hashes := make([]types.BlockHash, 0, len(entries))
	for _, entry := range entries {
		amount := entry.Amount
		if amount == nil {
			info, err := a.wallet.rpcClient.BlockInfo(ctx, entry.Hash.Hex())
			if err != nil {
				return hashes, err
			}
			resolved := info.Amount
			amount = &resolved
		}
		h, err := a.Receive(ctx, entry.Hash, *amount, representativeIfNew)
		if err != nil {
			return hashes, err
		}
		hashes = append(hashes, h)
	}
	return hashes, nil
}

// buildSignSubmit runs steps 2-3 of the fixed flow ordering: obtain work
// over root, sign the staged block, and submit it via process.
func (a *Account) buildSignSubmit(ctx context.Context, builder *block.Builder, subtype types.Subtype, root [32]byte) (types.BlockHash, error) {
	threshold := pow.ThresholdFor(subtype == types.SubtypeReceive || subtype == types.SubtypeOpen)

	rootHash, err := types.BlockHashFromBytes(root[:])
	if err != nil {
		return types.BlockHash{}, err
	}

	workValue, err := a.wallet.resolveWork(ctx, rootHash.Hex(), root, threshold)
	if err != nil {
		return types.BlockHash{}, err
	}
	work := types.Work(workValue)
	builder.Work(work)

	if err := builder.Sign(a.keypair); err != nil {
		return types.BlockHash{}, err
	}

	blk, err := builder.Build()
	if err != nil {
		return types.BlockHash{}, err
	}

	return a.submit(ctx, subtype, blk.Account, blk.Previous, blk.Representative, blk.Balance, blk.Link, *blk.Work, *blk.Signature)
}
