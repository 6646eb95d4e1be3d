// Package pow implements proof-of-work search and validation: Nano's
// Blake2b-based difficulty function and a worker-pool nonce search with
// cooperative cancellation, grounded on the teacher's goroutine-based
// background workers and polled-flag cancellation idiom.
package pow

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Network thresholds for epoch-2 mainnet. Receive/Open is roughly 64x
// easier than Send/Change/Epoch.
const (
	ThresholdSend        uint64 = 0xFFFFFFF800000000
	ThresholdReceiveOpen uint64 = 0xFFFFFE0000000000
)

// Difficulty computes Blake2b-64(work_le8 || root) and interprets the
// 8-byte digest as a little-endian u64.
func Difficulty(work uint64, root [32]byte) uint64 {
	var workLE [8]byte
	binary.LittleEndian.PutUint64(workLE[:], work)

	h, _ := blake2b.New(8, nil)
	h.Write(workLE[:])
	h.Write(root[:])
	digest := h.Sum(nil)

	return binary.LittleEndian.Uint64(digest)
}

// Valid reports whether work meets or exceeds threshold for root.
func Valid(work uint64, root [32]byte, threshold uint64) bool {
	return Difficulty(work, root) >= threshold
}

// ThresholdFor returns the network threshold appropriate for a block with
// the given root selection, where isOpenOrReceive distinguishes the
// easier Receive/Open threshold from Send/Change/Epoch.
func ThresholdFor(isOpenOrReceive bool) uint64 {
	if isOpenOrReceive {
		return ThresholdReceiveOpen
	}
	return ThresholdSend
}
