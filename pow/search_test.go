package pow

import (
	"errors"
	"testing"
	"time"

	"github.com/nanoshift/nanogo/nanoerr"
)

// easyThreshold is low enough that Search finds a nonce almost
// immediately, keeping these tests fast without weakening the production
// thresholds.
const easyThreshold = uint64(0x0000000100000000)

func TestSearchFindsValidWork(t *testing.T) {
	root := [32]byte{5, 6, 7}
	work, err := Search(root, easyThreshold, Options{Workers: 4})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !Valid(work, root, easyThreshold) {
		t.Errorf("Search returned work %d that does not satisfy the threshold", work)
	}
}

func TestSearchSingleWorker(t *testing.T) {
	root := [32]byte{1}
	work, err := Search(root, easyThreshold, Options{Workers: 1})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !Valid(work, root, easyThreshold) {
		t.Error("single-worker search returned invalid work")
	}
}

func TestSearchCancellation(t *testing.T) {
	root := [32]byte{2}
	cancel := make(chan struct{})
	close(cancel) // already cancelled before the search starts

	impossible := ^uint64(0) // no work satisfies this threshold
	_, err := Search(root, impossible, Options{Workers: 2, Cancel: cancel})

	var nerr *nanoerr.Error
	if !errors.As(err, &nerr) || nerr.Kind != nanoerr.WorkCancelled {
		t.Fatalf("expected WorkCancelled, got %v", err)
	}
}

func TestSearchAutoWorkerCount(t *testing.T) {
	root := [32]byte{3}
	done := make(chan struct{})
	go func() {
		defer close(done)
		work, err := Search(root, easyThreshold, Options{})
		if err != nil {
			t.Errorf("Search: %v", err)
			return
		}
		if !Valid(work, root, easyThreshold) {
			t.Error("auto worker-count search returned invalid work")
		}
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Search with auto worker count did not complete in time")
	}
}
