// Package rpc implements the JSON-over-HTTP node RPC client: the action
// request/response catalog, the node-error reply probe, and block
// (de)serialization for process.
package rpc

import (
	"encoding/json"

	"github.com/nanoshift/nanogo/address"
	"github.com/nanoshift/nanogo/types"
)

// errorProbe is unmarshaled first against every reply body to detect the
// node's {"error": msg} shape, which can appear instead of, or alongside,
// an action-specific response.
type errorProbe struct {
	Error string `json:"error"`
}

// AccountBalanceRequest is the account_balance request body.
type AccountBalanceRequest struct {
	Action  string `json:"action"`
	Account string `json:"account"`
}

// AccountBalanceResponse is the account_balance reply.
type AccountBalanceResponse struct {
	Balance   types.Raw `json:"balance"`
	Pending   types.Raw `json:"pending"`
	Receivable types.Raw `json:"receivable"`
}

// AccountInfoRequest is the account_info request body.
type AccountInfoRequest struct {
	Action               string `json:"action"`
	Account              string `json:"account"`
	Representative       bool   `json:"representative,omitempty"`
	Weight               bool   `json:"weight,omitempty"`
	Pending              bool   `json:"pending,omitempty"`
	IncludeConfirmed     bool   `json:"include_confirmed,omitempty"`
}

// AccountInfoResponse is the account_info reply.
type AccountInfoResponse struct {
	Frontier           types.BlockHash `json:"frontier"`
	OpenBlock          types.BlockHash `json:"open_block"`
	RepresentativeBlock types.BlockHash `json:"representative_block"`
	Balance            types.Raw       `json:"balance"`
	Representative     address.Account `json:"representative"`
	BlockCount         string          `json:"block_count"`
	Confirmed          string          `json:"confirmation_height,omitempty"`
}

// AccountHistoryRequest is the account_history request body.
type AccountHistoryRequest struct {
	Action  string `json:"action"`
	Account string `json:"account"`
	Count   string `json:"count"`
	Head    string `json:"head,omitempty"`
}

// AccountHistoryEntry is a single entry in an account_history reply.
type AccountHistoryEntry struct {
	Type           string          `json:"type"`
	Account        address.Account `json:"account"`
	Amount         types.Raw       `json:"amount"`
	LocalTimestamp string          `json:"local_timestamp"`
	Height         string          `json:"height"`
	Hash           types.BlockHash `json:"hash"`
}

// AccountHistoryResponse is the account_history reply.
type AccountHistoryResponse struct {
	Account string                `json:"account"`
	History []AccountHistoryEntry `json:"history"`
}

// AccountsReceivableRequest is the accounts_receivable request body.
type AccountsReceivableRequest struct {
	Action   string   `json:"action"`
	Accounts []string `json:"accounts"`
	Count    string   `json:"count"`
	Source   bool     `json:"source,omitempty"`
}

// AccountsReceivableResponse is the accounts_receivable reply. Blocks is
// left as raw JSON because the node reports one of three shapes for the
// receivable set; see ParseReceivable.
type AccountsReceivableResponse struct {
	Blocks json.RawMessage `json:"blocks"`
}

// BlockInfoRequest is the block_info request body.
type BlockInfoRequest struct {
	Action string `json:"action"`
	Hash   string `json:"hash"`
}

// BlockInfoResponse is the block_info reply.
type BlockInfoResponse struct {
	BlockAccount address.Account `json:"block_account"`
	Amount       types.Raw       `json:"amount"`
	Balance      types.Raw       `json:"balance"`
	Height       string          `json:"height"`
	Confirmed    string          `json:"confirmed"`
	Contents     BlockContents   `json:"contents"`
	Subtype      types.Subtype   `json:"subtype"`
}

// BlockContents is the embedded state block JSON shape used by both
// block_info replies and process requests.
type BlockContents struct {
	Type           string          `json:"type"`
	Account        address.Account `json:"account"`
	Previous       types.BlockHash `json:"previous"`
	Representative address.Account `json:"representative"`
	Balance        types.Raw       `json:"balance"`
	Link           types.Link      `json:"link"`
	LinkAsAccount  address.Account `json:"link_as_account"`
	Signature      types.Signature `json:"signature"`
	Work           types.Work      `json:"work"`
}

// BlockCountRequest is the block_count request body.
type BlockCountRequest struct {
	Action string `json:"action"`
}

// BlockCountResponse is the block_count reply.
type BlockCountResponse struct {
	Count      string `json:"count"`
	Unchecked  string `json:"unchecked"`
	Cemented   string `json:"cemented"`
}

// BlockConfirmRequest is the block_confirm request body.
type BlockConfirmRequest struct {
	Action string `json:"action"`
	Hash   string `json:"hash"`
}

// BlockConfirmResponse is the block_confirm reply.
type BlockConfirmResponse struct {
	Started string `json:"started"`
}

// ProcessRequest is the process request body. JSONBlock is always "true"
// (a string, not a boolean) per the node's wire convention.
type ProcessRequest struct {
	Action    string        `json:"action"`
	JSONBlock string        `json:"json_block"`
	Subtype   string        `json:"subtype"`
	Block     BlockContents `json:"block"`
}

// ProcessResponse is the process reply.
type ProcessResponse struct {
	Hash types.BlockHash `json:"hash"`
}

// WorkGenerateRequest is the work_generate request body.
type WorkGenerateRequest struct {
	Action     string `json:"action"`
	Hash       string `json:"hash"`
	Difficulty string `json:"difficulty,omitempty"`
}

// WorkGenerateResponse is the work_generate reply.
type WorkGenerateResponse struct {
	Work       types.Work `json:"work"`
	Difficulty string     `json:"difficulty"`
}

// WorkValidateRequest is the work_validate request body.
type WorkValidateRequest struct {
	Action     string `json:"action"`
	Work       string `json:"work"`
	Hash       string `json:"hash"`
	Difficulty string `json:"difficulty,omitempty"`
}

// WorkValidateResponse is the work_validate reply. The node supplies
// valid_all and/or the legacy valid; callers should use IsValid(), which
// prefers ValidAll when present.
type WorkValidateResponse struct {
	ValidAll string `json:"valid_all"`
	Valid    string `json:"valid"`
}

// IsValid reports the validity result, preferring ValidAll over the legacy
// Valid field when both are present.
func (r WorkValidateResponse) IsValid() bool {
	if r.ValidAll != "" {
		return r.ValidAll == "1"
	}
	return r.Valid == "1"
}

// WorkCancelRequest is the work_cancel request body.
type WorkCancelRequest struct {
	Action string `json:"action"`
	Hash   string `json:"hash"`
}

// VersionRequest is the version request body.
type VersionRequest struct {
	Action string `json:"action"`
}

// VersionResponse is the version reply.
type VersionResponse struct {
	RpcVersion      string `json:"rpc_version"`
	StoreVersion    string `json:"store_version"`
	ProtocolVersion string `json:"protocol_version"`
	NodeVendor      string `json:"node_vendor"`
	NetworkIdentifier string `json:"network_identifier,omitempty"`
}

// PeersRequest is the peers request body.
type PeersRequest struct {
	Action    string `json:"action"`
	PeerDetails bool `json:"peer_details,omitempty"`
}

// PeersResponse is the peers reply.
type PeersResponse struct {
	Peers map[string]string `json:"peers"`
}

// TelemetryRequest is the telemetry request body.
type TelemetryRequest struct {
	Action string `json:"action"`
	Raw    bool   `json:"raw,omitempty"`
}

// TelemetryResponse is the telemetry reply (subset of fields commonly
// relied on by clients).
type TelemetryResponse struct {
	BlockCount      string `json:"block_count"`
	CementedCount   string `json:"cemented_count"`
	UncheckedCount  string `json:"unchecked_count"`
	AccountCount    string `json:"account_count"`
	PeerCount       string `json:"peer_count"`
	MajorVersion    string `json:"major_version"`
	NodeID          string `json:"node_id"`
}

// RepresentativesRequest is the representatives request body.
type RepresentativesRequest struct {
	Action string `json:"action"`
	Count  string `json:"count,omitempty"`
}

// RepresentativesResponse is the representatives reply.
type RepresentativesResponse struct {
	Representatives map[string]string `json:"representatives"`
}

// RepresentativesOnlineRequest is the representatives_online request body.
type RepresentativesOnlineRequest struct {
	Action  string `json:"action"`
	Weight  bool   `json:"weight,omitempty"`
}

// RepresentativesOnlineResponse is the representatives_online reply.
type RepresentativesOnlineResponse struct {
	Representatives map[string]string `json:"representatives"`
}

// AvailableSupplyRequest is the available_supply request body.
type AvailableSupplyRequest struct {
	Action string `json:"action"`
}

// AvailableSupplyResponse is the available_supply reply.
type AvailableSupplyResponse struct {
	Available types.Raw `json:"available"`
}

// FrontierCountRequest is the frontier_count request body.
type FrontierCountRequest struct {
	Action string `json:"action"`
}

// FrontierCountResponse is the frontier_count reply.
type FrontierCountResponse struct {
	Count string `json:"count"`
}

// ConfirmationQuorumRequest is the confirmation_quorum request body.
type ConfirmationQuorumRequest struct {
	Action string `json:"action"`
}

// ConfirmationQuorumResponse is the confirmation_quorum reply.
type ConfirmationQuorumResponse struct {
	QuorumDelta             types.Raw `json:"quorum_delta"`
	OnlineWeight            types.Raw `json:"online_weight_total"`
	PeersStakeTotal         types.Raw `json:"peers_stake_total"`
}
