package block

import (
	"errors"
	"testing"

	"github.com/nanoshift/nanogo/keys"
	"github.com/nanoshift/nanogo/nanoerr"
	"github.com/nanoshift/nanogo/types"
)

func testKeyPair(t *testing.T) keys.KeyPair {
	t.Helper()
	seed, err := keys.NewSeed(make([]byte, 32))
	if err != nil {
		t.Fatal(err)
	}
	kp, err := keys.Derive(seed, 0)
	if err != nil {
		t.Fatal(err)
	}
	return kp
}

func TestBuilderMissingFieldErrors(t *testing.T) {
	b := NewBuilder()
	_, err := b.Build()
	var nerr *nanoerr.Error
	if !errors.As(err, &nerr) || nerr.Kind != nanoerr.MissingField || nerr.Field != "account" {
		t.Fatalf("expected MissingField(account), got %v", err)
	}
}

func TestBuilderBuildSucceedsWhenComplete(t *testing.T) {
	kp := testKeyPair(t)
	blk, err := Change(kp.PublicKey(), types.BlockHash{1}, kp.PublicKey(), types.RawFromUint64(1)).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if blk.Subtype != types.SubtypeChange {
		t.Errorf("Subtype = %v, want Change", blk.Subtype)
	}
	if !blk.Link.IsZero() {
		t.Error("change block must have a zero link")
	}
}

func TestBuilderSignIsNoOpWhenIncomplete(t *testing.T) {
	kp := testKeyPair(t)
	b := NewBuilder().Account(kp.PublicKey())
	if err := b.Sign(kp); err != nil {
		t.Fatalf("Sign on incomplete builder returned an error: %v", err)
	}
	if b.signature != nil {
		t.Error("Sign on incomplete builder should not store a signature")
	}
}

func TestBuilderSignThenBuildProducesVerifiableBlock(t *testing.T) {
	kp := testKeyPair(t)
	b := Send(kp.PublicKey(), types.BlockHash{2}, kp.PublicKey(), types.RawFromUint64(1), kp.PublicKey())
	if err := b.Sign(kp); err != nil {
		t.Fatalf("Sign: %v", err)
	}
	blk, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if blk.Signature == nil {
		t.Fatal("expected a signature")
	}
	ok, err := blk.Verify()
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("Verify rejected a signature produced by Sign")
	}
}

func TestHashMatchesBuiltBlockHash(t *testing.T) {
	kp := testKeyPair(t)
	b := Open(kp.PublicKey(), kp.PublicKey(), types.RawFromUint64(5), types.BlockHash{3})
	staged, err := b.Hash()
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	blk, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if staged != blk.Hash() {
		t.Error("Builder.Hash() does not match the built block's own Hash()")
	}
}

func TestOpenFactorySetsZeroPrevious(t *testing.T) {
	kp := testKeyPair(t)
	blk, err := Open(kp.PublicKey(), kp.PublicKey(), types.RawFromUint64(1), types.BlockHash{9}).Build()
	if err != nil {
		t.Fatal(err)
	}
	if !blk.Previous.IsZero() {
		t.Error("Open block must have a zero previous")
	}
	if !blk.IsOpen() {
		t.Error("IsOpen() should report true for an Open block")
	}
	if blk.Root() != [32]byte(blk.Account) {
		t.Error("Root() of an Open block must equal the account public key")
	}
}

func TestRootSelectionNonOpen(t *testing.T) {
	kp := testKeyPair(t)
	prev := types.BlockHash{7}
	blk, err := Send(kp.PublicKey(), prev, kp.PublicKey(), types.RawFromUint64(1), kp.PublicKey()).Build()
	if err != nil {
		t.Fatal(err)
	}
	if blk.Root() != [32]byte(prev) {
		t.Error("Root() of a non-open block must equal previous")
	}
}
