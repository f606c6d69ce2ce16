package mactok

import (
	"io"

	"github.com/bwesterb/go-ristretto"
)

// SecretKey is the issuer's signing material. X, Y and Z are the signing
// exponents, RX and RY open the commitments published in the PublicKey.
type SecretKey struct {
	X    *ristretto.Scalar
	Y    *ristretto.Scalar
	Z    *ristretto.Scalar
	BigX *ristretto.Point // X * G
	BigY *ristretto.Point // Y * G
	RX   *ristretto.Scalar
	RY   *ristretto.Scalar
}

// PublicKey carries Pedersen commitments to x and y, and Z = z * G.
type PublicKey struct {
	Z  *ristretto.Point
	CX *ristretto.Point
	CY *ristretto.Point
}

func (pp *Params) NewSecretKey(rng io.Reader) (*SecretKey, error) {
	scalars, err := nonZeroScalars(rng, 5)
	if err != nil {
		return nil, err
	}
	x, y, z, rx, ry := scalars[0], scalars[1], scalars[2], scalars[3], scalars[4]

	var bigX, bigY ristretto.Point
	return &SecretKey{
		X:    x,
		Y:    y,
		Z:    z,
		BigX: bigX.ScalarMult(&pp.g, x),
		BigY: bigY.ScalarMult(&pp.g, y),
		RX:   rx,
		RY:   ry,
	}, nil
}

func (pp *Params) NewPublicKey(sk *SecretKey) *PublicKey {
	var z ristretto.Point
	return &PublicKey{
		Z:  z.ScalarMult(&pp.g, sk.Z),
		CX: pp.Commit(sk.X, sk.RX),
		CY: pp.Commit(sk.Y, sk.RY),
	}
}

func NewSecretKey(rng io.Reader) (*SecretKey, error) {
	return DefaultParams().NewSecretKey(rng)
}

func NewPublicKey(sk *SecretKey) *PublicKey {
	return DefaultParams().NewPublicKey(sk)
}

func (sk *SecretKey) Equal(o *SecretKey) bool {
	return sk.X.Equals(o.X) &&
		sk.Y.Equals(o.Y) &&
		sk.Z.Equals(o.Z) &&
		sk.BigX.Equals(o.BigX) &&
		sk.BigY.Equals(o.BigY) &&
		sk.RX.Equals(o.RX) &&
		sk.RY.Equals(o.RY)
}

func (pk *PublicKey) Equal(o *PublicKey) bool {
	return pk.Z.Equals(o.Z) && pk.CX.Equals(o.CX) && pk.CY.Equals(o.CY)
}
