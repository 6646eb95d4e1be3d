package wallet

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/nanoshift/nanogo/address"
	"github.com/nanoshift/nanogo/keys"
	"github.com/nanoshift/nanogo/nanoerr"
	"github.com/nanoshift/nanogo/rpc"
	"github.com/nanoshift/nanogo/types"
)

// Account is a view binding one derived keypair to the wallet's RPC
// client. Obtained via Wallet.Account; not safe for concurrent flows on
// the same index (see §5).
type Account struct {
	wallet  *Wallet
	index   uint32
	keypair keys.KeyPair
}

// Index returns the derivation index this view is bound to.
func (a *Account) Index() uint32 { return a.index }

// PublicKey returns the account's public key.
func (a *Account) PublicKey() types.PublicKey { return a.keypair.PublicKey() }

// Address returns the account's canonical base32 address.
func (a *Account) Address() string { return address.NewAccount(a.keypair.PublicKey()).Address() }

// frontier is the subset of account_info this package's flows need.
type frontier struct {
	exists         bool
	hash           types.BlockHash
	balance        types.Raw
	representative types.PublicKey
}

// fetchFrontier retrieves the account's current frontier, or reports
// exists=false if the node has no information for it (a brand-new
// account, legal only when the caller is about to build an Open block).
func (a *Account) fetchFrontier(ctx context.Context) (frontier, error) {
	resp, err := a.wallet.rpcClient.AccountInfo(ctx, a.Address())
	if err != nil {
		var nerr *nanoerr.Error
		if errors.As(err, &nerr) && nerr.Kind == nanoerr.RpcNodeError {
			return frontier{exists: false}, nil
		}
		return frontier{}, err
	}
	return frontier{
		exists:         true,
		hash:           resp.Frontier,
		balance:        resp.Balance,
		representative: resp.Representative.PublicKey(),
	}, nil
}

// submit builds the process request from a signed, worked state block
// and posts it, returning the confirmed hash.
func (a *Account) submit(ctx context.Context, subtype types.Subtype, acc types.PublicKey, previous types.BlockHash, representative types.PublicKey, balance types.Raw, link types.Link, work types.Work, sig types.Signature) (types.BlockHash, error) {
	block := rpc.BlockContents{
		Type:           "state",
		Account:        address.NewAccount(acc),
		Previous:       previous,
		Representative: address.NewAccount(representative),
		Balance:        balance,
		Link:           link,
		LinkAsAccount:  address.NewAccount(link.AsPublicKey()),
		Signature:      sig,
		Work:           work,
	}
	resp, err := a.wallet.rpcClient.Process(ctx, subtype.String(), block)
	if err != nil {
		a.wallet.logger.Warn("block submission failed", zap.String("subtype", subtype.String()), zap.Error(err))
		return types.BlockHash{}, err
	}
	a.wallet.logger.Info("block confirmed", zap.String("subtype", subtype.String()), zap.String("hash", resp.Hash.Hex()))
	return resp.Hash, nil
}
