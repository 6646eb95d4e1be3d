package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nanoshift/nanogo/nanoerr"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	client := NewClient(srv.URL, srv.Client())
	return client, srv.Close
}

func TestAccountBalanceDecodesQuotedDecimals(t *testing.T) {
	client, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req AccountBalanceRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Action != "account_balance" {
			t.Errorf("unexpected action %q", req.Action)
		}
		w.Write([]byte(`{"balance":"1000","pending":"0","receivable":"0"}`))
	})
	defer closeFn()

	resp, err := client.AccountBalance(context.Background(), "nano_test")
	if err != nil {
		t.Fatalf("AccountBalance: %v", err)
	}
	if resp.Balance.String() != "1000" {
		t.Errorf("Balance = %s, want 1000", resp.Balance.String())
	}
}

func TestNodeErrorReplySurfacesAsNodeError(t *testing.T) {
	client, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Account not found"}`))
	})
	defer closeFn()

	_, err := client.AccountInfo(context.Background(), "nano_unknown")
	var nerr *nanoerr.Error
	if !errors.As(err, &nerr) || nerr.Kind != nanoerr.RpcNodeError {
		t.Fatalf("expected RpcNodeError, got %v", err)
	}
	if nerr.Message != "Account not found" {
		t.Errorf("Message = %q", nerr.Message)
	}
}

func TestHTTPStatusErrorSurfaced(t *testing.T) {
	client, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer closeFn()

	_, err := client.BlockCount(context.Background())
	var nerr *nanoerr.Error
	if !errors.As(err, &nerr) || nerr.Kind != nanoerr.RpcHttpStatus || nerr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected RpcHttpStatus(503), got %v", err)
	}
}

func TestWorkValidatePrefersValidAll(t *testing.T) {
	client, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"valid_all":"1","valid":"0"}`))
	})
	defer closeFn()

	resp, err := client.WorkValidate(context.Background(), "0000000000000000", "ABCD", "")
	if err != nil {
		t.Fatalf("WorkValidate: %v", err)
	}
	if !resp.IsValid() {
		t.Error("IsValid() should prefer valid_all=1 over the legacy valid=0")
	}
}

func TestProcessRequestShape(t *testing.T) {
	var captured map[string]interface{}
	client, closeFn := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(`{"hash":"0000000000000000000000000000000000000000000000000000000000000000"}`))
	})
	defer closeFn()

	_, err := client.Process(context.Background(), "send", BlockContents{Type: "state"})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if captured["json_block"] != "true" {
		t.Errorf("json_block = %v, want string \"true\"", captured["json_block"])
	}
	if captured["subtype"] != "send" {
		t.Errorf("subtype = %v, want \"send\"", captured["subtype"])
	}
}
