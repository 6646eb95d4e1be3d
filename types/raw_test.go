package types

import (
	"math/big"
	"testing"
)

func TestRawDecimalRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "3", "340282366920938463463374607431768211455"}
	for _, s := range cases {
		r, err := ParseRaw(s)
		if err != nil {
			t.Fatalf("ParseRaw(%q): %v", s, err)
		}
		if got := r.String(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestRawBEBytesRoundTrip(t *testing.T) {
	r := RawFromUint64(3)
	b := r.ToBEBytes16()
	got := RawFromBEBytes16(b)
	if got.Cmp(r) != 0 {
		t.Errorf("BE round trip: got %s want %s", got, r)
	}
}

func TestRawToNano(t *testing.T) {
	cases := []struct {
		raw  *big.Int
		want string
	}{
		{new(big.Int).Set(NanoRaw), "1"},
		{new(big.Int).Mul(big.NewInt(3), new(big.Int).Div(NanoRaw, big.NewInt(2))), "1.5"},
		{big.NewInt(0), "0"},
	}
	for _, c := range cases {
		r, err := RawFromBigInt(c.raw)
		if err != nil {
			t.Fatal(err)
		}
		if got := r.ToNano(); got != c.want {
			t.Errorf("ToNano(%s) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestRawSaturating(t *testing.T) {
	a := RawFromUint64(5)
	b := RawFromUint64(10)
	if got := a.SaturatingSub(b); !got.IsZero() {
		t.Errorf("SaturatingSub underflow: got %s, want 0", got)
	}
	if _, err := a.CheckedSub(b); err == nil {
		t.Error("CheckedSub underflow: expected error")
	}

	max, _ := RawFromBigInt(maxRaw)
	if got := max.SaturatingAdd(RawFromUint64(1)); got.Cmp(max) != 0 {
		t.Errorf("SaturatingAdd overflow: got %s, want max", got)
	}
}

func TestWorkHexByteOrderSplit(t *testing.T) {
	w := Work(1)
	if w.Hex() != "0000000000000001" {
		t.Errorf("Hex() = %q, want big-endian form", w.Hex())
	}
	le := w.LittleEndianBytes()
	if le != [8]byte{1, 0, 0, 0, 0, 0, 0, 0} {
		t.Errorf("LittleEndianBytes() = %v", le)
	}
}
