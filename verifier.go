package mactok

import (
	"github.com/bwesterb/go-ristretto"
)

// VerifyProof recomputes the proof commitments from public values and checks
// them against the challenge. It needs nothing secret.
func (pp *Params) VerifyProof(pk *PublicKey, ticket *Ticket, bs *BlindSignature) (bool, error) {
	if bs == nil || bs.Pi == nil {
		return false, rejectInvalidProof
	}
	pi := bs.Pi

	// C_0 <-- a_0 * H - e_0 * C
	cZero := multiscalarMul([]*ristretto.Scalar{pi.AZero, negScalar(pi.EZero)}, []*ristretto.Point{&pp.h, pi.C})

	// C_1 <-- a_1 * H - e_1 * (C - C_y)
	var shifted ristretto.Point
	shifted.Sub(pi.C, pk.CY)
	cOne := multiscalarMul([]*ristretto.Scalar{pi.AOne, negScalar(pi.EOne)}, []*ristretto.Point{&pp.h, &shifted})

	// e <-- e_0 + e_1
	var e ristretto.Scalar
	e.Add(pi.EZero, pi.EOne)

	// C_d <-- a_d * U + e * G
	cD := multiscalarMul([]*ristretto.Scalar{pi.AD, &e}, []*ristretto.Point{bs.U, &pp.g})

	// C_rho <-- a_d * V + a_rho * H + e * (C_x + C + ts * Z + T)
	one := oneScalar()
	aux := multiscalarMul(
		[]*ristretto.Scalar{one, one, bs.TS, one},
		[]*ristretto.Point{pk.CX, pi.C, pk.Z, ticket.T},
	)
	var aDV ristretto.Point
	aDV.ScalarMult(bs.V, pi.AD)
	cRho := multiscalarMul([]*ristretto.Scalar{pi.ARho, &e}, []*ristretto.Point{&pp.h, aux})
	cRho.Add(cRho, &aDV)

	// C_w <-- a_d * V + a_w * G + e * T
	cW := multiscalarMul([]*ristretto.Scalar{pi.AW, &e}, []*ristretto.Point{&pp.g, ticket.T})
	cW.Add(cW, &aDV)

	pc := &proofCommitments{
		CZero: cZero,
		COne:  cOne,
		CD:    cD,
		CRho:  cRho,
		CW:    cW,
	}
	if !proofChallenge(pp, pk, bs.U, bs.V, bs.TS, pi.C, pc).Equals(&e) {
		return false, rejectInvalidProof
	}
	return true, nil
}

func VerifyProof(pk *PublicKey, ticket *Ticket, bs *BlindSignature) (bool, error) {
	return DefaultParams().VerifyProof(pk, ticket, bs)
}
