// Package keys implements seed-based key derivation and Ed25519 signing
// with Blake2b-512 in place of SHA-512, per the network's key expansion
// and challenge-hashing scheme.
package keys

import (
	"crypto/subtle"

	"github.com/nanoshift/nanogo/nanoerr"
)

// Seed is 32 bytes of secret master key material. Equality is
// constant-time. Destroy zeroes the backing memory; callers that hold a
// Seed for the lifetime of a process should defer Destroy() at the point
// they no longer need it. Seed never appears in debug output — String and
// GoString always emit a redaction marker.
type Seed struct {
	b [32]byte
}

// NewSeed copies 32 bytes into a Seed.
func NewSeed(b []byte) (Seed, error) {
	if len(b) != 32 {
		return Seed{}, nanoerr.New(nanoerr.InvalidSeed)
	}
	var s Seed
	copy(s.b[:], b)
	return s, nil
}

// Bytes returns a copy of the seed's 32 bytes. Callers should not retain
// the returned slice beyond their immediate use.
func (s Seed) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, s.b[:])
	return out
}

// Equal compares two seeds in constant time.
func (s Seed) Equal(other Seed) bool {
	return subtle.ConstantTimeCompare(s.b[:], other.b[:]) == 1
}

// Destroy overwrites the seed's backing memory with zeros.
func (s *Seed) Destroy() {
	for i := range s.b {
		s.b[i] = 0
	}
}

// String never reveals secret material.
func (s Seed) String() string { return "Seed(REDACTED)" }

// GoString never reveals secret material.
func (s Seed) GoString() string { return "keys.Seed(REDACTED)" }
