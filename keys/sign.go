package keys

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/blake2b"

	"github.com/nanoshift/nanogo/nanoerr"
	"github.com/nanoshift/nanogo/types"
)

// Sign produces a deterministic Ed25519-Blake2b signature over m, per
// §4.2: r is derived from (hash_prefix, m) rather than randomness, so two
// successive signings of the same message are bitwise equal.
func (k KeyPair) Sign(m []byte) (types.Signature, error) {
	rScalar, err := reduceWideHash(k.noncePrefix[:], m)
	if err != nil {
		return types.Signature{}, err
	}

	R := edwards25519.NewIdentityPoint().ScalarBaseMult(rScalar)
	Rbytes := R.Bytes()

	kScalar, err := reduceWideHash(Rbytes, k.public[:], m)
	if err != nil {
		return types.Signature{}, err
	}

	s := edwards25519.NewScalar().MultiplyAdd(kScalar, k.scalar, rScalar)

	var sig types.Signature
	copy(sig[:32], Rbytes)
	copy(sig[32:], s.Bytes())
	return sig, nil
}

// Verify checks sig against message m under public key pub, per §4.2:
// the signature scalar s must be canonical (< group order L) and R must
// decode to a valid compressed Edwards point.
func Verify(pub types.PublicKey, m []byte, sig types.Signature) (bool, error) {
	R, err := edwards25519.NewIdentityPoint().SetBytes(sig[:32])
	if err != nil {
		return false, nanoerr.Wrap(nanoerr.InvalidSignature, err)
	}

	s, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false, nanoerr.Wrap(nanoerr.InvalidSignature, err)
	}

	A, err := edwards25519.NewIdentityPoint().SetBytes(pub[:])
	if err != nil {
		return false, nanoerr.Wrap(nanoerr.InvalidPublicKey, err)
	}

	kScalar, err := reduceWideHash(sig[:32], pub[:], m)
	if err != nil {
		return false, err
	}

	sG := edwards25519.NewIdentityPoint().ScalarBaseMult(s)
	kA := edwards25519.NewIdentityPoint().ScalarMult(kScalar, A)
	rhs := edwards25519.NewIdentityPoint().Add(R, kA)

	return sG.Equal(rhs) == 1, nil
}

// reduceWideHash computes Blake2b-512 over the concatenation of parts and
// reduces the 64-byte digest modulo the group order L, per RFC 8032's
// scalar-reduction step (used for both r and k in §4.2).
func reduceWideHash(parts ...[]byte) (*edwards25519.Scalar, error) {
	h, err := blake2b.New512(nil)
	if err != nil {
		return nil, nanoerr.Wrap(nanoerr.InvalidSignature, err)
	}
	for _, p := range parts {
		h.Write(p)
	}
	wide := h.Sum(nil)
	return edwards25519.NewScalar().SetUniformBytes(wide)
}
