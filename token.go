package mactok

import (
	"io"

	"github.com/bwesterb/go-ristretto"
)

// Token is the finalized, rerandomized signature. It cannot be linked to the
// Ticket or BlindSignature it came from.
type Token struct {
	T *ristretto.Scalar
	P *ristretto.Point
	Q *ristretto.Point
}

// NewToken verifies bs and unblinds it with the receipt. Any failure is
// reported as ErrRejected without saying which check failed.
func (pp *Params) NewToken(rng io.Reader, pk *PublicKey, bs *BlindSignature, ticket *Ticket, receipt *Receipt) (*Token, error) {
	if bs == nil || bs.Pi == nil {
		return nil, rejectInvalidProof
	}
	if isIdentity(bs.U) {
		return nil, rejectDegenerateSignature
	}
	if _, err := pp.VerifyProof(pk, ticket, bs); err != nil {
		return nil, rejectInvalidProof
	}

	c, err := nonZeroScalar(rng)
	if err != nil {
		return nil, err
	}

	// P <-- c * U
	var p ristretto.Point
	p.ScalarMult(bs.U, c)

	// Q <-- c * (V - r * U)
	var rU, unblinded, q ristretto.Point
	rU.ScalarMult(bs.U, receipt.R)
	unblinded.Sub(bs.V, &rU)
	q.ScalarMult(&unblinded, c)

	// t <-- tc + ts
	var t ristretto.Scalar
	t.Add(receipt.TC, bs.TS)

	return &Token{T: &t, P: &p, Q: &q}, nil
}

func NewToken(rng io.Reader, pk *PublicKey, bs *BlindSignature, ticket *Ticket, receipt *Receipt) (*Token, error) {
	return DefaultParams().NewToken(rng, pk, bs, ticket, receipt)
}

func (t *Token) Equal(o *Token) bool {
	return t.T.Equals(o.T) && t.P.Equals(o.P) && t.Q.Equals(o.Q)
}
