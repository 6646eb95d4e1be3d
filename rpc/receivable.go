package rpc

import (
	"encoding/json"

	"github.com/nanoshift/nanogo/nanoerr"
	"github.com/nanoshift/nanogo/types"
)

// ReceivableEntry is one normalized receivable entry: a block hash and,
// if the node's reply supplied it inline, the amount. When Amount is nil
// the caller must resolve it via BlockInfo.
type ReceivableEntry struct {
	Hash   types.BlockHash
	Amount *types.Raw
}

// amountHolder unmarshals the {"amount": "..."} object shape.
type amountHolder struct {
	Amount types.Raw `json:"amount"`
}

// ParseReceivable normalizes the three shapes the node uses for a
// receivable block set, per §4.7:
//   - object of hash -> quoted decimal amount
//   - object of hash -> {"amount": quoted decimal}
//   - bare array of hashes (no amounts; caller resolves via BlockInfo)
func ParseReceivable(raw json.RawMessage) ([]ReceivableEntry, error) {
	if len(raw) == 0 || string(raw) == "null" || string(raw) == `""` {
		return nil, nil
	}

	var hashes []string
	if err := json.Unmarshal(raw, &hashes); err == nil {
		entries := make([]ReceivableEntry, 0, len(hashes))
		for _, h := range hashes {
			bh, err := types.BlockHashFromHex(h)
			if err != nil {
				return nil, nanoerr.Wrap(nanoerr.RpcInvalidResponse, err)
			}
			entries = append(entries, ReceivableEntry{Hash: bh})
		}
		return entries, nil
	}

	var asAmounts map[string]types.Raw
	if err := json.Unmarshal(raw, &asAmounts); err == nil {
		entries := make([]ReceivableEntry, 0, len(asAmounts))
		for h, amount := range asAmounts {
			bh, err := types.BlockHashFromHex(h)
			if err != nil {
				return nil, nanoerr.Wrap(nanoerr.RpcInvalidResponse, err)
			}
			a := amount
			entries = append(entries, ReceivableEntry{Hash: bh, Amount: &a})
		}
		return entries, nil
	}

	var asObjects map[string]amountHolder
	if err := json.Unmarshal(raw, &asObjects); err == nil {
		entries := make([]ReceivableEntry, 0, len(asObjects))
		for h, v := range asObjects {
			bh, err := types.BlockHashFromHex(h)
			if err != nil {
				return nil, nanoerr.Wrap(nanoerr.RpcInvalidResponse, err)
			}
			a := v.Amount
			entries = append(entries, ReceivableEntry{Hash: bh, Amount: &a})
		}
		return entries, nil
	}

	return nil, nanoerr.New(nanoerr.RpcInvalidResponse)
}
