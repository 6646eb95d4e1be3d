// Package wallet orchestrates the fixed info -> work -> build/sign ->
// process sequence over an RPC client, holding a seed and a growing
// cache of derived keypairs.
package wallet

import (
	"context"

	"go.uber.org/zap"

	"github.com/nanoshift/nanogo/keys"
	"github.com/nanoshift/nanogo/pow"
	"github.com/nanoshift/nanogo/rpc"
)

// WorkSource selects how a flow obtains proof-of-work for a block's root.
type WorkSource int

const (
	// WorkSourceNode delegates to the node's work_generate RPC. Default.
	WorkSourceNode WorkSource = iota
	// WorkSourceLocal searches for work with the local CPU pool.
	WorkSourceLocal
)

// Wallet wraps a seed and a growing cache of derived keypairs, plus the
// RPC client used to mediate every flow. The seed and cache are not
// safe for concurrent mutation; concurrent flows on different indices
// are safe, per §5 — the library does not itself lock accounts.
type Wallet struct {
	seed       keys.Seed
	keypairs   []keys.KeyPair
	rpcClient  *rpc.Client
	workSource WorkSource
	workPool   pow.Options
	logger     *zap.Logger
}

// New constructs a Wallet over seed, using client for every RPC-mediated
// operation. workSource defaults to WorkSourceNode.
func New(seed keys.Seed, client *rpc.Client, workSource WorkSource) *Wallet {
	return &Wallet{seed: seed, rpcClient: client, workSource: workSource, logger: zap.NewNop()}
}

// SetLocalWorkPool configures the worker-pool options used when
// WorkSource is WorkSourceLocal.
func (w *Wallet) SetLocalWorkPool(opts pow.Options) {
	w.workPool = opts
}

// SetLogger attaches logger to the wallet and propagates it to the RPC
// client and local work-pool search calls.
func (w *Wallet) SetLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}
	w.logger = logger
	w.rpcClient.SetLogger(logger)
	w.workPool.Logger = logger
}

// ensure derives and caches keypairs 0..index inclusive, appending any
// that are not yet present.
func (w *Wallet) ensure(index uint32) error {
	for uint32(len(w.keypairs)) <= index {
		kp, err := keys.Derive(w.seed, uint32(len(w.keypairs)))
		if err != nil {
			return err
		}
		w.keypairs = append(w.keypairs, kp)
	}
	return nil
}

// Account returns a view binding keypair index to RPC-mediated
// operations, deriving indices [0, index] on first access if needed.
func (w *Wallet) Account(index uint32) (*Account, error) {
	if err := w.ensure(index); err != nil {
		return nil, err
	}
	return &Account{wallet: w, index: index, keypair: w.keypairs[index]}, nil
}

// resolveWork obtains work for root according to the wallet's configured
// WorkSource.
func (w *Wallet) resolveWork(ctx context.Context, rootHex string, root [32]byte, threshold uint64) (uint64, error) {
	if w.workSource == WorkSourceLocal {
		w.logger.Debug("generating work locally", zap.String("root", rootHex))
		return pow.Search(root, threshold, w.workPool)
	}
	resp, err := w.rpcClient.WorkGenerate(ctx, rootHex, "")
	if err != nil {
		return 0, err
	}
	return uint64(resp.Work), nil
}
