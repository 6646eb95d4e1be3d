package keys

import (
	"encoding/binary"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/blake2b"

	"github.com/nanoshift/nanogo/nanoerr"
	"github.com/nanoshift/nanogo/types"
)

// KeyPair is a derived account key: the 32-byte secret ("private"), its
// public key, the expanded-and-clamped Ed25519 scalar, and the 32-byte
// nonce prefix used for deterministic signing. Destroy zeroes the secret
// bytes and prefix; Clone copies the secret material so both copies must
// be destroyed independently.
type KeyPair struct {
	secret    [32]byte
	public    types.PublicKey
	scalar    *edwards25519.Scalar
	noncePrefix [32]byte
}

// Derive computes private = Blake2b-256(seed || index_be32) and expands
// it into a full KeyPair. Pure: re-deriving with the same (seed, index)
// yields bit-identical output.
func Derive(seed Seed, index uint32) (KeyPair, error) {
	var idxBytes [4]byte
	binary.BigEndian.PutUint32(idxBytes[:], index)

	sb := seed.Bytes()
	defer zero(sb)

	h, err := blake2b.New256(nil)
	if err != nil {
		return KeyPair{}, nanoerr.Wrap(nanoerr.InvalidSeed, err)
	}
	h.Write(sb)
	h.Write(idxBytes[:])
	private := h.Sum(nil)
	defer zero(private)

	return FromPrivateBytes(private)
}

// FromPrivateBytes expands a 32-byte secret scalar seed into a full
// KeyPair, per §4.2: h = Blake2b-512(private); low 32 bytes clamped as the
// expanded scalar; high 32 bytes become the nonce prefix. The clamped value
// is stored reduced modulo the group order L (SetBytesWithClamping reduces);
// since the basepoint has order L, the public key and signatures are the
// same as with the unreduced clamped integer.
func FromPrivateBytes(private []byte) (KeyPair, error) {
	if len(private) != 32 {
		return KeyPair{}, nanoerr.New(nanoerr.InvalidPrivateKey)
	}

	wide, err := blake2b.New512(nil)
	if err != nil {
		return KeyPair{}, nanoerr.Wrap(nanoerr.InvalidPrivateKey, err)
	}
	wide.Write(private)
	h := wide.Sum(nil)

	scalarBytes := make([]byte, 32)
	copy(scalarBytes, h[:32])
	scalarBytes[0] &= 0xF8
	scalarBytes[31] &= 0x7F
	scalarBytes[31] |= 0x40

	scalar, err := edwards25519.NewScalar().SetBytesWithClamping(scalarBytes)
	if err != nil {
		return KeyPair{}, nanoerr.Wrap(nanoerr.InvalidPrivateKey, err)
	}

	pubPoint := edwards25519.NewIdentityPoint().ScalarBaseMult(scalar)
	pub, err := types.PublicKeyFromBytes(pubPoint.Bytes())
	if err != nil {
		return KeyPair{}, nanoerr.Wrap(nanoerr.InvalidPublicKey, err)
	}

	kp := KeyPair{
		public: pub,
		scalar: scalar,
	}
	copy(kp.secret[:], private)
	copy(kp.noncePrefix[:], h[32:])
	return kp, nil
}

// PublicKey returns the account public key A = scalar * G.
func (k KeyPair) PublicKey() types.PublicKey { return k.public }

// Clone copies the secret material; both the receiver and the returned
// copy must be Destroy()ed independently.
func (k KeyPair) Clone() KeyPair {
	clone := k
	scalarCopy := edwards25519.NewScalar()
	scalarCopy.Set(k.scalar)
	clone.scalar = scalarCopy
	return clone
}

// Destroy zeroes the secret bytes and nonce prefix.
func (k *KeyPair) Destroy() {
	for i := range k.secret {
		k.secret[i] = 0
	}
	for i := range k.noncePrefix {
		k.noncePrefix[i] = 0
	}
	k.scalar = nil
}

func (k KeyPair) String() string   { return "KeyPair(REDACTED)" }
func (k KeyPair) GoString() string { return "keys.KeyPair(REDACTED)" }

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
