package mactok

import (
	"io"

	"github.com/bwesterb/go-ristretto"
)

// Ticket is the blinded request sent to the issuer, T = r * G + tc * Z.
type Ticket struct {
	T *ristretto.Point
}

// Receipt opens a Ticket. It stays with the client and is consumed when the
// token is finalized.
type Receipt struct {
	R  *ristretto.Scalar
	TC *ristretto.Scalar
}

func (pp *Params) NewTicket(rng io.Reader, pk *PublicKey) (*Ticket, *Receipt, error) {
	scalars, err := nonZeroScalars(rng, 2)
	if err != nil {
		return nil, nil, err
	}
	receipt := &Receipt{R: scalars[0], TC: scalars[1]}

	t := multiscalarMul([]*ristretto.Scalar{receipt.R, receipt.TC}, []*ristretto.Point{&pp.g, pk.Z})
	return &Ticket{T: t}, receipt, nil
}

func NewTicket(rng io.Reader, pk *PublicKey) (*Ticket, *Receipt, error) {
	return DefaultParams().NewTicket(rng, pk)
}

func (t *Ticket) Equal(o *Ticket) bool {
	return t.T.Equals(o.T)
}
