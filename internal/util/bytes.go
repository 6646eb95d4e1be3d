// Package util holds small byte/hex helpers shared by types and address.
// Kept deliberately tiny: anything that grows real domain meaning (address
// checksums, block hashing) lives in its own package instead.
package util

import (
	"encoding/hex"
	"strings"
)

// ReverseBytes returns a new slice with bytes reversed.
func ReverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// HexToBytes decodes a hex string to bytes, returning an error if invalid.
func HexToBytes(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// BytesToHex encodes bytes to an uppercase hex string, matching the node's
// display convention for hashes, keys, and signatures.
func BytesToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
