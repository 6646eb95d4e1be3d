// Package address implements the Nano account address codec: a custom
// base32 encoding over a 256-bit public key with a 4-bit left pad and a
// reversed Blake2b-40 checksum, plus the Account type that pairs a public
// key with its canonical string form.
package address

import (
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/nanoshift/nanogo/internal/util"
	"github.com/nanoshift/nanogo/nanoerr"
	"github.com/nanoshift/nanogo/types"
)

// alphabet is exactly the 32 symbols used by the node's base32 variant —
// it omits '0', '2', 'l', 'v' to avoid visual ambiguity.
const alphabet = "13456789abcdefghijkmnopqrstuwxyz"

// encodePrefix is always emitted on encode; decodePrefixes are both
// accepted on decode.
const encodePrefix = "nano_"

var decodePrefixes = []string{"nano_", "xno_"}

var alphabetIndex [256]int8

func init() {
	for i := range alphabetIndex {
		alphabetIndex[i] = -1
	}
	for i, c := range alphabet {
		alphabetIndex[byte(c)] = int8(i)
		// Decoding accepts both cases; the alphabet itself is lowercase,
		// so also index the uppercase form of each letter symbol.
		if c >= 'a' && c <= 'z' {
			alphabetIndex[byte(c)-'a'+'A'] = int8(i)
		}
	}
}

const payloadLen = 52
const checksumLen = 8
const addressBodyLen = payloadLen + checksumLen // 60

// Account is the semantic pair of a public key and its canonical base32
// address string.
type Account struct {
	publicKey types.PublicKey
	address   string
}

// NewAccount constructs an Account from a public key. This is infallible:
// every 32-byte value, including the all-zero key, has a valid address.
func NewAccount(pk types.PublicKey) Account {
	return Account{publicKey: pk, address: Encode(pk)}
}

// ParseAccount constructs an Account from an address string (either
// prefix, either case), storing the canonical "nano_" lowercase form and
// failing with a typed reason (prefix, length, encoding, checksum).
func ParseAccount(s string) (Account, error) {
	pk, err := Decode(s)
	if err != nil {
		return Account{}, err
	}
	return Account{publicKey: pk, address: Encode(pk)}, nil
}

// PublicKey returns the account's public key.
func (a Account) PublicKey() types.PublicKey { return a.publicKey }

// Address returns the canonical address string.
func (a Account) Address() string { return a.address }

func (a Account) String() string { return a.address }

// MarshalText implements encoding.TextMarshaler.
func (a Account) MarshalText() ([]byte, error) { return []byte(a.address), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Account) UnmarshalText(text []byte) error {
	v, err := ParseAccount(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Encode renders a public key as a canonical "nano_"-prefixed address.
func Encode(pk types.PublicKey) string {
	payload := encodePayload(pk)
	checksum := encodeChecksum(pk)
	return encodePrefix + payload + checksum
}

// Decode parses an address string (either "nano_" or "xno_" prefix,
// case-insensitive payload) back into a public key, verifying its
// checksum.
func Decode(s string) (types.PublicKey, error) {
	var pk types.PublicKey

	prefix := ""
	for _, p := range decodePrefixes {
		if len(s) >= len(p) && s[:len(p)] == p {
			prefix = p
			break
		}
	}
	if prefix == "" {
		return pk, nanoerr.New(nanoerr.InvalidAccountPrefix)
	}

	body := s[len(prefix):]
	if len(body) != addressBodyLen {
		return pk, nanoerr.New(nanoerr.InvalidAccountLength)
	}

	payload := body[:payloadLen]
	checksumStr := body[payloadLen:]

	pk, err := decodePayload(payload)
	if err != nil {
		return types.PublicKey{}, err
	}

	checksumBytes, err := decodeChecksumSymbols(checksumStr)
	if err != nil {
		return types.PublicKey{}, err
	}

	want := checksum5(pk)
	if checksumBytes != want {
		return types.PublicKey{}, nanoerr.New(nanoerr.ChecksumMismatch)
	}

	return pk, nil
}

// encodePayload emits the 52-symbol base32 form of a left-padded public
// key: a 4-bit zero pad followed by the 256 key bits, chunked MSB-first
// into 52 groups of 5 bits. Equivalently: treat the pad+key as a single
// 260-bit big-endian integer and emit it 5 bits at a time, MSB first.
func encodePayload(pk types.PublicKey) string {
	acc := new(big.Int).SetBytes(pk[:])

	out := make([]byte, payloadLen)
	for i := payloadLen - 1; i >= 0; i-- {
		group := new(big.Int).And(acc, big.NewInt(0x1f))
		out[i] = alphabet[group.Uint64()]
		acc.Rsh(acc, 5)
	}
	// acc now holds only the (zero) pad bits; nothing further to encode.
	return string(out)
}

// decodePayload is the inverse of encodePayload: reassemble the 260-bit
// pad+key integer from 52 five-bit symbols, then require the top 4 pad
// bits to be zero before truncating to the 256-bit public key.
func decodePayload(payload string) (types.PublicKey, error) {
	var pk types.PublicKey

	acc := new(big.Int)
	for i := 0; i < payloadLen; i++ {
		v := alphabetIndex[payload[i]]
		if v < 0 {
			return pk, nanoerr.New(nanoerr.InvalidAccountEncoding)
		}
		acc.Lsh(acc, 5)
		acc.Or(acc, big.NewInt(int64(v)))
	}

	if acc.BitLen() > 256 {
		return pk, nanoerr.New(nanoerr.InvalidAccountEncoding)
	}

	b := acc.Bytes()
	copy(pk[32-len(b):], b)
	return pk, nil
}

// checksum5 computes the 5-byte Blake2b digest of the public key and
// reverses its byte order, per the node's convention.
func checksum5(pk types.PublicKey) [5]byte {
	h, _ := blake2b.New(5, nil)
	h.Write(pk[:])
	sum := h.Sum(nil)
	var out [5]byte
	copy(out[:], util.ReverseBytes(sum))
	return out
}

// encodeChecksum renders the reversed Blake2b-40 checksum as 8 base32
// symbols via the 40-bit composition b[0]<<32 | b[1]<<24 | ... | b[4],
// emitted MSB-first 5 bits at a time.
func encodeChecksum(pk types.PublicKey) string {
	b := checksum5(pk)
	v := uint64(b[0])<<32 | uint64(b[1])<<24 | uint64(b[2])<<16 | uint64(b[3])<<8 | uint64(b[4])

	out := make([]byte, checksumLen)
	for i := 0; i < checksumLen; i++ {
		shift := uint(40 - 5*(i+1))
		idx := (v >> shift) & 0x1f
		out[i] = alphabet[idx]
	}
	return string(out)
}

func decodeChecksumSymbols(s string) ([5]byte, error) {
	var v uint64
	for i := 0; i < checksumLen; i++ {
		idx := alphabetIndex[s[i]]
		if idx < 0 {
			return [5]byte{}, nanoerr.New(nanoerr.InvalidAccountEncoding)
		}
		v = (v << 5) | uint64(idx)
	}
	var out [5]byte
	out[0] = byte(v >> 32)
	out[1] = byte(v >> 24)
	out[2] = byte(v >> 16)
	out[3] = byte(v >> 8)
	out[4] = byte(v)
	return out, nil
}
