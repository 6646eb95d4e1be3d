// Package types holds the fixed-width byte containers the rest of the
// module builds on: public keys, block hashes, links, signatures, work,
// and the 128-bit raw currency amount. Each type carries its canonical
// hex/decimal display form and byte order contract.
package types

import (
	"encoding/binary"
	"strings"

	"github.com/nanoshift/nanogo/internal/util"
	"github.com/nanoshift/nanogo/nanoerr"
)

// PublicKey is a 32-byte Ed25519 public key. The all-zero value is legal
// (burn/unset account).
type PublicKey [32]byte

// BlockHash is a 32-byte Blake2b-256 block digest.
type BlockHash [32]byte

// Link is the polymorphic 32-byte field whose meaning depends on a block's
// subtype: a destination public key (Send), a source block hash
// (Receive/Open), the zero value (Change), or an epoch-signer key (Epoch).
// Conversions to/from PublicKey and BlockHash are byte-identity — the
// "type" is carried by the block's subtype, not by Link itself.
type Link [32]byte

// Signature is a 64-byte Ed25519 signature (R || s).
type Signature [64]byte

// Work is a 64-bit proof-of-work nonce. Canonical hex display is
// big-endian; the work-hash input (see package pow) uses little-endian
// bytes. This split is load-bearing for interoperability with the node.
type Work uint64

func parseHex(s string, n int) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) != n*2 {
		return nil, nanoerr.New(nanoerr.HexInvalidLength)
	}
	out, err := util.HexToBytes(s)
	if err != nil {
		return nil, nanoerr.New(nanoerr.HexInvalidCharacter)
	}
	return out, nil
}

func toHex(b []byte) string {
	return util.BytesToHex(b)
}

// PublicKey

// Hex returns the 64-char uppercase hex form of the key.
func (k PublicKey) Hex() string { return toHex(k[:]) }

func (k PublicKey) String() string { return k.Hex() }

// Bytes returns the raw 32 bytes.
func (k PublicKey) Bytes() []byte { return k[:] }

// IsZero reports whether this is the all-zero (burn/unset) key.
func (k PublicKey) IsZero() bool { return k == PublicKey{} }

// PublicKeyFromHex parses a 64-char hex string into a PublicKey.
func PublicKeyFromHex(s string) (PublicKey, error) {
	var k PublicKey
	b, err := parseHex(s, 32)
	if err != nil {
		return k, err
	}
	copy(k[:], b)
	return k, nil
}

// PublicKeyFromBytes copies 32 bytes into a PublicKey.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var k PublicKey
	if len(b) != 32 {
		return k, nanoerr.New(nanoerr.InvalidPublicKey)
	}
	copy(k[:], b)
	return k, nil
}

// MarshalText implements encoding.TextMarshaler.
func (k PublicKey) MarshalText() ([]byte, error) { return []byte(k.Hex()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PublicKey) UnmarshalText(text []byte) error {
	v, err := PublicKeyFromHex(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// BlockHash

func (h BlockHash) Hex() string { return toHex(h[:]) }
func (h BlockHash) String() string { return h.Hex() }
func (h BlockHash) Bytes() []byte { return h[:] }
func (h BlockHash) IsZero() bool { return h == BlockHash{} }

func BlockHashFromHex(s string) (BlockHash, error) {
	var h BlockHash
	b, err := parseHex(s, 32)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func BlockHashFromBytes(b []byte) (BlockHash, error) {
	var h BlockHash
	if len(b) != 32 {
		return h, nanoerr.New(nanoerr.InvalidBlockHash)
	}
	copy(h[:], b)
	return h, nil
}

func (h BlockHash) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }

func (h *BlockHash) UnmarshalText(text []byte) error {
	v, err := BlockHashFromHex(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// Link — polymorphic 32-byte field. Constructors document the intended
// interpretation; the byte representation never changes.

// LinkFromPublicKey builds a Link interpreted as a destination public key
// (Send) or epoch-signer key (Epoch).
func LinkFromPublicKey(pk PublicKey) Link { return Link(pk) }

// LinkFromBlockHash builds a Link interpreted as a source block hash
// (Receive/Open).
func LinkFromBlockHash(h BlockHash) Link { return Link(h) }

// LinkFromAccount builds a Link from an account's public key.
func LinkFromAccount(pk PublicKey) Link { return Link(pk) }

// ZeroLink is the Link value used for Change blocks.
var ZeroLink = Link{}

// AsPublicKey reinterprets the link as a public key (Send/Epoch).
func (l Link) AsPublicKey() PublicKey { return PublicKey(l) }

// AsBlockHash reinterprets the link as a block hash (Receive/Open).
func (l Link) AsBlockHash() BlockHash { return BlockHash(l) }

func (l Link) Hex() string { return toHex(l[:]) }
func (l Link) String() string { return l.Hex() }
func (l Link) Bytes() []byte { return l[:] }
func (l Link) IsZero() bool { return l == Link{} }

func LinkFromHex(s string) (Link, error) {
	var l Link
	b, err := parseHex(s, 32)
	if err != nil {
		return l, err
	}
	copy(l[:], b)
	return l, nil
}

func (l Link) MarshalText() ([]byte, error) { return []byte(l.Hex()), nil }

func (l *Link) UnmarshalText(text []byte) error {
	v, err := LinkFromHex(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Signature

func (s Signature) Hex() string { return toHex(s[:]) }
func (s Signature) String() string { return s.Hex() }
func (s Signature) Bytes() []byte { return s[:] }

func SignatureFromHex(str string) (Signature, error) {
	var s Signature
	b, err := parseHex(str, 64)
	if err != nil {
		return s, err
	}
	copy(s[:], b)
	return s, nil
}

func SignatureFromBytes(b []byte) (Signature, error) {
	var s Signature
	if len(b) != 64 {
		return s, nanoerr.New(nanoerr.InvalidSignature)
	}
	copy(s[:], b)
	return s, nil
}

func (s Signature) MarshalText() ([]byte, error) { return []byte(s.Hex()), nil }

func (s *Signature) UnmarshalText(text []byte) error {
	v, err := SignatureFromHex(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Work

// Hex returns the 16-char uppercase big-endian hex form, the wire
// convention for the "work" field in RPC requests and replies.
func (w Work) Hex() string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(w))
	return toHex(b[:])
}

func (w Work) String() string { return w.Hex() }

// LittleEndianBytes returns the 8-byte little-endian encoding used as the
// work-hash input (see package pow).
func (w Work) LittleEndianBytes() [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(w))
	return b
}

// WorkFromHex parses the 16-char big-endian hex form.
func WorkFromHex(s string) (Work, error) {
	b, err := parseHex(s, 8)
	if err != nil {
		return 0, err
	}
	return Work(binary.BigEndian.Uint64(b)), nil
}

func (w Work) MarshalText() ([]byte, error) { return []byte(w.Hex()), nil }

func (w *Work) UnmarshalText(text []byte) error {
	v, err := WorkFromHex(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}
