package types

import (
	"math/big"

	"github.com/nanoshift/nanogo/nanoerr"
)

// NanoRaw is the number of raw units in one display "nano" unit: 10^30.
var NanoRaw = new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)

var maxRaw = func() *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), 128)
	return max.Sub(max, big.NewInt(1))
}()

// Raw is an unsigned 128-bit scalar, the atomic currency unit. It
// serializes as a decimal string on the wire and as 16 big-endian bytes
// in block hash input.
type Raw struct {
	v *big.Int
}

// ZeroRaw is the zero amount.
func ZeroRaw() Raw { return Raw{v: new(big.Int)} }

// RawFromUint64 builds a Raw from a uint64.
func RawFromUint64(v uint64) Raw {
	return Raw{v: new(big.Int).SetUint64(v)}
}

// RawFromBigInt builds a Raw from a big.Int, copying it and rejecting
// negative or out-of-range values.
func RawFromBigInt(v *big.Int) (Raw, error) {
	if v.Sign() < 0 {
		return Raw{}, nanoerr.New(nanoerr.AmountNegative)
	}
	if v.Cmp(maxRaw) > 0 {
		return Raw{}, nanoerr.New(nanoerr.AmountOverflow)
	}
	return Raw{v: new(big.Int).Set(v)}, nil
}

// ParseRaw parses a quoted decimal string as used on the RPC wire.
func ParseRaw(s string) (Raw, error) {
	if s == "" {
		return Raw{}, nanoerr.New(nanoerr.AmountInvalidFormat)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Raw{}, nanoerr.New(nanoerr.AmountInvalidFormat)
	}
	return RawFromBigInt(v)
}

func (r Raw) bigInt() *big.Int {
	if r.v == nil {
		return new(big.Int)
	}
	return r.v
}

// String renders the decimal wire form, e.g. "0", "1", "1.5" is never
// produced here — that's ToNano's job. This is the raw integer.
func (r Raw) String() string { return r.bigInt().String() }

// ToBigInt returns a copy of the underlying big.Int.
func (r Raw) ToBigInt() *big.Int { return new(big.Int).Set(r.bigInt()) }

// ToBEBytes16 returns the canonical 16-byte big-endian wire form used in
// block hash input.
func (r Raw) ToBEBytes16() [16]byte {
	var out [16]byte
	b := r.bigInt().Bytes()
	copy(out[16-len(b):], b)
	return out
}

// RawFromBEBytes16 parses the canonical 16-byte big-endian form.
func RawFromBEBytes16(b [16]byte) Raw {
	return Raw{v: new(big.Int).SetBytes(b[:])}
}

// Cmp orders two Raw values like big.Int.Cmp.
func (r Raw) Cmp(other Raw) int { return r.bigInt().Cmp(other.bigInt()) }

// IsZero reports whether the amount is zero.
func (r Raw) IsZero() bool { return r.bigInt().Sign() == 0 }

// SaturatingAdd adds, clamping to the 128-bit max on overflow.
func (r Raw) SaturatingAdd(other Raw) Raw {
	sum := new(big.Int).Add(r.bigInt(), other.bigInt())
	if sum.Cmp(maxRaw) > 0 {
		sum.Set(maxRaw)
	}
	return Raw{v: sum}
}

// SaturatingSub subtracts, clamping to zero on underflow.
func (r Raw) SaturatingSub(other Raw) Raw {
	diff := new(big.Int).Sub(r.bigInt(), other.bigInt())
	if diff.Sign() < 0 {
		diff.SetInt64(0)
	}
	return Raw{v: diff}
}

// CheckedSub subtracts, returning AmountOverflow instead of saturating —
// an opt-in stricter alternative to SaturatingSub for callers who want a
// true-underflow programming error surfaced rather than hidden (see
// DESIGN.md's resolution of the corresponding open question).
func (r Raw) CheckedSub(other Raw) (Raw, error) {
	diff := new(big.Int).Sub(r.bigInt(), other.bigInt())
	if diff.Sign() < 0 {
		return Raw{}, nanoerr.New(nanoerr.AmountOverflow)
	}
	return Raw{v: diff}, nil
}

// ToNano renders the amount divided by 10^30 as a decimal string with
// trailing zeros trimmed, e.g. Raw(1.5e30) -> "1.5", Raw(0) -> "0".
func (r Raw) ToNano() string {
	v := r.bigInt()
	if v.Sign() == 0 {
		return "0"
	}
	q, rem := new(big.Int).QuoRem(v, NanoRaw, new(big.Int))
	if rem.Sign() == 0 {
		return q.String()
	}
	// Render the fractional part as 30 zero-padded digits, then trim.
	fracStr := rem.String()
	for len(fracStr) < 30 {
		fracStr = "0" + fracStr
	}
	i := len(fracStr)
	for i > 0 && fracStr[i-1] == '0' {
		i--
	}
	return q.String() + "." + fracStr[:i]
}

func (r Raw) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Raw) UnmarshalText(text []byte) error {
	v, err := ParseRaw(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
