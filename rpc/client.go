package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nanoshift/nanogo/internal/metrics"
	"github.com/nanoshift/nanogo/nanoerr"

	"go.uber.org/zap"
)

// Client is a JSON-over-HTTP node RPC client. It is safe for concurrent
// use: the underlying http.Client is connection-pooled and Client holds
// no mutable state beyond it.
type Client struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewClient returns a Client posting requests to url. If httpClient is
// nil, a client with a 30-second timeout is used.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{url: url, client: httpClient, logger: zap.NewNop()}
}

// SetLogger attaches logger for request/error logging. A nil Client
// logger otherwise discards everything.
func (c *Client) SetLogger(logger *zap.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// do posts req as the request body and unmarshals the reply into out,
// after probing for the node's {"error": msg} shape. action names the
// call for metrics and error context only.
func (c *Client) do(ctx context.Context, action string, req, out interface{}) error {
	start := time.Now()
	err := c.doUnmetered(ctx, action, req, out)
	metrics.RpcRequestDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RpcRequestsTotal.WithLabelValues(action, "error").Inc()
		c.logger.Warn("rpc call failed", zap.String("action", action), zap.Error(err))
	} else {
		metrics.RpcRequestsTotal.WithLabelValues(action, "ok").Inc()
		c.logger.Debug("rpc call ok", zap.String("action", action), zap.Duration("elapsed", time.Since(start)))
	}
	return err
}

func (c *Client) doUnmetered(ctx context.Context, action string, req, out interface{}) error {
	body, err := json.Marshal(req)
	if err != nil {
		return nanoerr.Wrap(nanoerr.RpcInvalidResponse, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nanoerr.Wrap(nanoerr.RpcConnectionFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nanoerr.New(nanoerr.RpcTimeout)
		}
		return nanoerr.Wrap(nanoerr.RpcConnectionFailed, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nanoerr.Wrap(nanoerr.RpcInvalidResponse, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nanoerr.HTTPStatus(httpResp.StatusCode)
	}

	var probe errorProbe
	if err := json.Unmarshal(respBody, &probe); err == nil && probe.Error != "" {
		return nanoerr.WithMessage(nanoerr.RpcNodeError, probe.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return nanoerr.Wrap(nanoerr.RpcInvalidResponse, fmt.Errorf("action %s: %w", action, err))
	}
	return nil
}

func (c *Client) AccountBalance(ctx context.Context, account string) (*AccountBalanceResponse, error) {
	var resp AccountBalanceResponse
	req := AccountBalanceRequest{Action: "account_balance", Account: account}
	if err := c.do(ctx, "account_balance", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AccountInfo(ctx context.Context, account string) (*AccountInfoResponse, error) {
	var resp AccountInfoResponse
	req := AccountInfoRequest{Action: "account_info", Account: account, Representative: true, Weight: true, Pending: true}
	if err := c.do(ctx, "account_info", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AccountHistory(ctx context.Context, account, count string) (*AccountHistoryResponse, error) {
	var resp AccountHistoryResponse
	req := AccountHistoryRequest{Action: "account_history", Account: account, Count: count}
	if err := c.do(ctx, "account_history", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AccountsReceivable(ctx context.Context, accounts []string, count string) (*AccountsReceivableResponse, error) {
	var resp AccountsReceivableResponse
	req := AccountsReceivableRequest{Action: "accounts_receivable", Accounts: accounts, Count: count}
	if err := c.do(ctx, "accounts_receivable", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) BlockInfo(ctx context.Context, hash string) (*BlockInfoResponse, error) {
	var resp BlockInfoResponse
	req := BlockInfoRequest{Action: "block_info", Hash: hash}
	if err := c.do(ctx, "block_info", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) BlockCount(ctx context.Context) (*BlockCountResponse, error) {
	var resp BlockCountResponse
	req := BlockCountRequest{Action: "block_count"}
	if err := c.do(ctx, "block_count", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) BlockConfirm(ctx context.Context, hash string) (*BlockConfirmResponse, error) {
	var resp BlockConfirmResponse
	req := BlockConfirmRequest{Action: "block_confirm", Hash: hash}
	if err := c.do(ctx, "block_confirm", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Process(ctx context.Context, subtype string, block BlockContents) (*ProcessResponse, error) {
	var resp ProcessResponse
	req := ProcessRequest{
		Action:    "process",
		JSONBlock: "true",
		Subtype:   subtype,
		Block:     block,
	}
	if err := c.do(ctx, "process", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) WorkGenerate(ctx context.Context, hash string, difficulty string) (*WorkGenerateResponse, error) {
	var resp WorkGenerateResponse
	req := WorkGenerateRequest{Action: "work_generate", Hash: hash, Difficulty: difficulty}
	if err := c.do(ctx, "work_generate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) WorkValidate(ctx context.Context, work, hash, difficulty string) (*WorkValidateResponse, error) {
	var resp WorkValidateResponse
	req := WorkValidateRequest{Action: "work_validate", Work: work, Hash: hash, Difficulty: difficulty}
	if err := c.do(ctx, "work_validate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) WorkCancel(ctx context.Context, hash string) error {
	req := WorkCancelRequest{Action: "work_cancel", Hash: hash}
	return c.do(ctx, "work_cancel", req, nil)
}

func (c *Client) Version(ctx context.Context) (*VersionResponse, error) {
	var resp VersionResponse
	req := VersionRequest{Action: "version"}
	if err := c.do(ctx, "version", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Peers(ctx context.Context) (*PeersResponse, error) {
	var resp PeersResponse
	req := PeersRequest{Action: "peers"}
	if err := c.do(ctx, "peers", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Telemetry(ctx context.Context) (*TelemetryResponse, error) {
	var resp TelemetryResponse
	req := TelemetryRequest{Action: "telemetry"}
	if err := c.do(ctx, "telemetry", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Representatives(ctx context.Context) (*RepresentativesResponse, error) {
	var resp RepresentativesResponse
	req := RepresentativesRequest{Action: "representatives"}
	if err := c.do(ctx, "representatives", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RepresentativesOnline(ctx context.Context) (*RepresentativesOnlineResponse, error) {
	var resp RepresentativesOnlineResponse
	req := RepresentativesOnlineRequest{Action: "representatives_online"}
	if err := c.do(ctx, "representatives_online", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AvailableSupply(ctx context.Context) (*AvailableSupplyResponse, error) {
	var resp AvailableSupplyResponse
	req := AvailableSupplyRequest{Action: "available_supply"}
	if err := c.do(ctx, "available_supply", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) FrontierCount(ctx context.Context) (*FrontierCountResponse, error) {
	var resp FrontierCountResponse
	req := FrontierCountRequest{Action: "frontier_count"}
	if err := c.do(ctx, "frontier_count", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ConfirmationQuorum(ctx context.Context) (*ConfirmationQuorumResponse, error) {
	var resp ConfirmationQuorumResponse
	req := ConfirmationQuorumRequest{Action: "confirmation_quorum"}
	if err := c.do(ctx, "confirmation_quorum", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
