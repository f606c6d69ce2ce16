package mactok

import (
	"io"

	"github.com/bwesterb/go-ristretto"
)

// BlindSignature is the issuer's answer to a Ticket. U is never the
// identity for an honestly produced signature.
type BlindSignature struct {
	U  *ristretto.Point
	V  *ristretto.Point
	TS *ristretto.Scalar
	Pi *Proof
}

// NewBlindSignature signs ticket embedding the private metadata bit. The bit
// is chosen by the issuer's policy; it is never visible to the client.
func (pp *Params) NewBlindSignature(rng io.Reader, pk *PublicKey, sk *SecretKey, ticket *Ticket, bit bool) (*BlindSignature, error) {
	scalars, err := nonZeroScalars(rng, 2)
	if err != nil {
		return nil, err
	}
	ts, d := scalars[0], scalars[1]

	// U <-- d * G
	var u ristretto.Point
	u.ScalarMult(&pp.g, d)

	b := bitScalar(bit)

	// V <-- (X + b * Y + ts * Z + T) * d
	one := oneScalar()
	sum := multiscalarMul(
		[]*ristretto.Scalar{one, b, ts, one},
		[]*ristretto.Point{sk.BigX, sk.BigY, pk.Z, ticket.T},
	)
	var v ristretto.Point
	v.ScalarMult(sum, d)

	pi, err := createProof(pp, rng, sk, pk, &u, &v, ts, b, d)
	if err != nil {
		return nil, err
	}

	return &BlindSignature{
		U:  &u,
		V:  &v,
		TS: ts,
		Pi: pi,
	}, nil
}

func NewBlindSignature(rng io.Reader, pk *PublicKey, sk *SecretKey, ticket *Ticket, bit bool) (*BlindSignature, error) {
	return DefaultParams().NewBlindSignature(rng, pk, sk, ticket, bit)
}

func (bs *BlindSignature) Equal(o *BlindSignature) bool {
	return bs.U.Equals(o.U) && bs.V.Equals(o.V) && bs.TS.Equals(o.TS) && bs.Pi.Equal(o.Pi)
}
