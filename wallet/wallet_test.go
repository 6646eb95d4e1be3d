package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nanoshift/nanogo/keys"
	"github.com/nanoshift/nanogo/rpc"
	"github.com/nanoshift/nanogo/types"
)

func newTestWallet(t *testing.T, handler http.HandlerFunc) *Wallet {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := rpc.NewClient(srv.URL, srv.Client())
	seed, err := keys.NewSeed(make([]byte, 32))
	if err != nil {
		t.Fatal(err)
	}
	return New(seed, client, WorkSourceNode)
}

func TestAccountDerivesOnFirstAccess(t *testing.T) {
	w := newTestWallet(t, func(w http.ResponseWriter, r *http.Request) {})
	acc, err := w.Account(0)
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	if acc.Index() != 0 {
		t.Errorf("Index() = %d, want 0", acc.Index())
	}
	if len(w.keypairs) != 1 {
		t.Errorf("expected 1 cached keypair, got %d", len(w.keypairs))
	}
}

func TestAccountDerivesAllIndicesUpToRequested(t *testing.T) {
	w := newTestWallet(t, func(w http.ResponseWriter, r *http.Request) {})
	if _, err := w.Account(3); err != nil {
		t.Fatalf("Account: %v", err)
	}
	if len(w.keypairs) != 4 {
		t.Errorf("expected 4 cached keypairs, got %d", len(w.keypairs))
	}
}

func TestSendFlowFollowsInfoWorkProcessOrder(t *testing.T) {
	var actions []string
	w := newTestWallet(t, func(rw http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		action, _ := body["action"].(string)
		actions = append(actions, action)

		switch action {
		case "account_info":
			json.NewEncoder(rw).Encode(map[string]interface{}{
				"frontier":            "0000000000000000000000000000000000000000000000000000000000000001",
				"open_block":          "0000000000000000000000000000000000000000000000000000000000000001",
				"representative_block": "0000000000000000000000000000000000000000000000000000000000000001",
				"balance":              "1000",
				"representative":       "nano_15ds3yajhbfcnm394ujpq3t1m1axdss3oos3xkc114tf5a5b6o8nmhaenhpe",
				"block_count":          "1",
			})
		case "work_generate":
			json.NewEncoder(rw).Encode(map[string]interface{}{
				"work":       "0000000000000001",
				"difficulty": "ffffffff00000000",
			})
		case "process":
			json.NewEncoder(rw).Encode(map[string]interface{}{
				"hash": "0000000000000000000000000000000000000000000000000000000000000002",
			})
		}
	})

	acc, err := w.Account(0)
	if err != nil {
		t.Fatalf("Account: %v", err)
	}

	var destination types.PublicKey
	hash, err := acc.Send(context.Background(), destination, types.RawFromUint64(100))
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if hash.IsZero() {
		t.Error("expected a non-zero process hash")
	}

	want := []string{"account_info", "work_generate", "process"}
	if len(actions) != len(want) {
		t.Fatalf("actions = %v, want %v", actions, want)
	}
	for i, a := range want {
		if actions[i] != a {
			t.Errorf("actions[%d] = %q, want %q", i, actions[i], a)
		}
	}
}
