package block

import "github.com/nanoshift/nanogo/types"

// InferSubtype derives the advisory subtype of a block from its link and
// balance relative to the account's previous balance, per §4.8. The node
// treats subtype as metadata only; this is provided for callers that
// receive third-party blocks (e.g. from account_history) with subtype
// already stripped or untrusted.
//
//   - Previous is the zero hash: Open.
//   - Link is the zero value: Change.
//   - previousBalance known and newBalance > previousBalance: Receive.
//   - previousBalance known and newBalance < previousBalance: Send.
//   - previousBalance known and newBalance == previousBalance: Change.
//   - previousBalance unknown: Change if link is zero, else Send.
func InferSubtype(previous types.BlockHash, link types.Link, newBalance types.Raw, previousBalance *types.Raw) types.Subtype {
	if previous.IsZero() {
		return types.SubtypeOpen
	}
	if link.IsZero() {
		return types.SubtypeChange
	}
	if previousBalance == nil {
		return types.SubtypeSend
	}
	switch newBalance.Cmp(*previousBalance) {
	case 1:
		return types.SubtypeReceive
	case -1:
		return types.SubtypeSend
	default:
		return types.SubtypeChange
	}
}
