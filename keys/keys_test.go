package keys

import (
	"bytes"
	"testing"

	"github.com/nanoshift/nanogo/types"
)

func zeroSeed(t *testing.T) Seed {
	t.Helper()
	s, err := NewSeed(make([]byte, 32))
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	return s
}

func TestDeriveZeroSeedIndex0(t *testing.T) {
	seed := zeroSeed(t)
	kp, err := Derive(seed, 0)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	want, _ := types.PublicKeyFromHex("C008B814A7D269A1FA3C6528B19201A24D797912DB9996FF02A1FF356E45552B")
	if kp.PublicKey() != want {
		t.Errorf("PublicKey() = %s, want %s", kp.PublicKey(), want)
	}
}

func TestDeriveZeroSeedIndex1(t *testing.T) {
	seed := zeroSeed(t)
	kp, err := Derive(seed, 1)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	want, _ := types.PublicKeyFromHex("E30D22B7935BCC25412FC07427391AB4C98A4AD68BAA733300D23D82C9D20AD3")
	if kp.PublicKey() != want {
		t.Errorf("PublicKey() = %s, want %s", kp.PublicKey(), want)
	}
}

func TestDeriveDeterministic(t *testing.T) {
	seed := zeroSeed(t)
	kp1, err := Derive(seed, 7)
	if err != nil {
		t.Fatal(err)
	}
	kp2, err := Derive(seed, 7)
	if err != nil {
		t.Fatal(err)
	}
	if kp1.PublicKey() != kp2.PublicKey() {
		t.Error("Derive is not deterministic")
	}
}

func TestDeriveDistinctIndices(t *testing.T) {
	seed := zeroSeed(t)
	kp0, _ := Derive(seed, 0)
	kp1, _ := Derive(seed, 1)
	if kp0.PublicKey() == kp1.PublicKey() {
		t.Error("distinct indices produced the same public key")
	}
}

func TestSignDeterministic(t *testing.T) {
	seed := zeroSeed(t)
	kp, err := Derive(seed, 0)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("hello nano")
	sig1, err := kp.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	sig2, err := kp.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	if sig1 != sig2 {
		t.Error("Sign is not deterministic for the same (keypair, message)")
	}
}

func TestSignVerifyInverse(t *testing.T) {
	seed := zeroSeed(t)
	kp, err := Derive(seed, 0)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("a message to sign")
	sig, err := kp.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := Verify(kp.PublicKey(), msg, sig)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("Verify rejected a valid signature")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	seed := zeroSeed(t)
	kp, err := Derive(seed, 0)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("original message")
	sig, err := kp.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := Verify(kp.PublicKey(), []byte("tampered message"), sig)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("Verify accepted a signature over a different message")
	}
}

func TestVerifyRejectsNonCanonicalScalar(t *testing.T) {
	seed := zeroSeed(t)
	kp, err := Derive(seed, 0)
	if err != nil {
		t.Fatal(err)
	}
	msg := []byte("x")
	sig, err := kp.Sign(msg)
	if err != nil {
		t.Fatal(err)
	}
	// Set s to 0xFF...FF, which is >= L and therefore non-canonical.
	for i := 32; i < 64; i++ {
		sig[i] = 0xFF
	}
	_, err = Verify(kp.PublicKey(), msg, sig)
	if err == nil {
		t.Error("expected error for non-canonical scalar")
	}
}

func TestSeedConstantTimeEqual(t *testing.T) {
	a, _ := NewSeed(bytes.Repeat([]byte{1}, 32))
	b, _ := NewSeed(bytes.Repeat([]byte{1}, 32))
	c, _ := NewSeed(bytes.Repeat([]byte{2}, 32))
	if !a.Equal(b) {
		t.Error("identical seeds should be equal")
	}
	if a.Equal(c) {
		t.Error("distinct seeds should not be equal")
	}
}

func TestSeedDestroyZeroes(t *testing.T) {
	s, _ := NewSeed(bytes.Repeat([]byte{9}, 32))
	s.Destroy()
	if !bytes.Equal(s.Bytes(), make([]byte, 32)) {
		t.Error("Destroy did not zero the seed")
	}
}

func TestSeedStringRedacted(t *testing.T) {
	s, _ := NewSeed(bytes.Repeat([]byte{9}, 32))
	if s.String() != "Seed(REDACTED)" {
		t.Errorf("String() leaked secret material: %q", s.String())
	}
}

func TestKeyPairCloneIndependence(t *testing.T) {
	seed := zeroSeed(t)
	kp, err := Derive(seed, 0)
	if err != nil {
		t.Fatal(err)
	}
	clone := kp.Clone()
	clone.Destroy()
	// The original must still be usable after the clone is destroyed.
	if _, err := kp.Sign([]byte("still alive")); err != nil {
		t.Errorf("original keypair unusable after clone destroyed: %v", err)
	}
}
