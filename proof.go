package mactok

import (
	"io"

	"github.com/bwesterb/go-ristretto"
)

// Proof shows that a BlindSignature was computed with the issuer's key for
// one of the two bit values without revealing which. EZero/AZero always
// belong to the bit=0 branch and EOne/AOne to the bit=1 branch.
type Proof struct {
	C     *ristretto.Point
	EZero *ristretto.Scalar
	EOne  *ristretto.Scalar
	AZero *ristretto.Scalar
	AOne  *ristretto.Scalar
	AD    *ristretto.Scalar
	ARho  *ristretto.Scalar
	AW    *ristretto.Scalar
}

// createProof proves the branch b honestly and simulates branch 1 - b.
// Both branches go through the same arithmetic for either bit; b only
// steers the final selections.
func createProof(pp *Params, rng io.Reader, sk *SecretKey, pk *PublicKey, u, v *ristretto.Point, ts, b, d *ristretto.Scalar) (*Proof, error) {
	// e_{1-b}, a_{1-b} <-- ZZ_p*
	simulator, err := nonZeroScalars(rng, 2)
	if err != nil {
		return nil, err
	}
	eSim, aSim := simulator[0], simulator[1]

	// r_mu, r_d, r_rho, r_w <-- ZZ_p*
	randomizers, err := nonZeroScalars(rng, 4)
	if err != nil {
		return nil, err
	}
	rMu, rD, rRho, rW := randomizers[0], randomizers[1], randomizers[2], randomizers[3]

	// mu <-- ZZ_p*
	mu, err := nonZeroScalar(rng)
	if err != nil {
		return nil, err
	}

	var notB ristretto.Scalar
	notB.Sub(oneScalar(), b)

	// C <-- b * C_y + mu * H
	c := multiscalarMul([]*ristretto.Scalar{b, mu}, []*ristretto.Point{pk.CY, &pp.h})

	// C_b <-- r_mu * H
	var cHonest ristretto.Point
	cHonest.ScalarMult(&pp.h, rMu)

	// C_{1-b} <-- a_{1-b} * H - e_{1-b} * (C - (1 - b) * C_y)
	var notBCY, shifted ristretto.Point
	notBCY.ScalarMult(pk.CY, &notB)
	shifted.Sub(c, &notBCY)
	cSim := multiscalarMul([]*ristretto.Scalar{aSim, negScalar(eSim)}, []*ristretto.Point{&pp.h, &shifted})

	// C_d <-- r_d * U
	var cD ristretto.Point
	cD.ScalarMult(u, rD)

	// C_rho <-- r_d * V + r_rho * H
	var rDV, rRhoH, cRho ristretto.Point
	rDV.ScalarMult(v, rD)
	rRhoH.ScalarMult(&pp.h, rRho)
	cRho.Add(&rDV, &rRhoH)

	// C_w <-- r_d * V + r_w * G
	var rWG, cW ristretto.Point
	rWG.ScalarMult(&pp.g, rW)
	cW.Add(&rDV, &rWG)

	pc := &proofCommitments{
		CZero: selectPoint(&notB, &cHonest, cSim),
		COne:  selectPoint(b, &cHonest, cSim),
		CD:    &cD,
		CRho:  &cRho,
		CW:    &cW,
	}
	e := proofChallenge(pp, pk, u, v, ts, c, pc)

	// e_b <-- e - e_{1-b}
	var eHonest ristretto.Scalar
	eHonest.Sub(e, eSim)

	// a_b <-- r_mu + e_b * mu
	var aHonest ristretto.Scalar
	aHonest.Mul(&eHonest, mu)
	aHonest.Add(rMu, &aHonest)

	// a_d <-- r_d - e / d
	var dInv, aD ristretto.Scalar
	dInv.Inverse(d)
	aD.Mul(e, &dInv)
	aD.Sub(rD, &aD)

	// rho <-- -(r_x + b * r_y + mu)
	var rho ristretto.Scalar
	rho.Mul(b, sk.RY)
	rho.Add(sk.RX, &rho)
	rho.Add(&rho, mu)
	rhoNeg := negScalar(&rho)

	// a_rho <-- r_rho + e * rho
	var aRho ristretto.Scalar
	aRho.Mul(e, rhoNeg)
	aRho.Add(rRho, &aRho)

	// w <-- x + b * y + ts * z
	var by, tsz, w ristretto.Scalar
	by.Mul(b, sk.Y)
	tsz.Mul(ts, sk.Z)
	w.Add(sk.X, &by)
	w.Add(&w, &tsz)

	// a_w <-- r_w + e * w
	var aW ristretto.Scalar
	aW.Mul(e, &w)
	aW.Add(rW, &aW)

	return &Proof{
		C:     c,
		EZero: selectScalar(&notB, &eHonest, eSim),
		EOne:  selectScalar(b, &eHonest, eSim),
		AZero: selectScalar(&notB, &aHonest, aSim),
		AOne:  selectScalar(b, &aHonest, aSim),
		AD:    &aD,
		ARho:  &aRho,
		AW:    &aW,
	}, nil
}

func (p *Proof) Equal(o *Proof) bool {
	return p.C.Equals(o.C) &&
		p.EZero.Equals(o.EZero) &&
		p.EOne.Equals(o.EOne) &&
		p.AZero.Equals(o.AZero) &&
		p.AOne.Equals(o.AOne) &&
		p.AD.Equals(o.AD) &&
		p.ARho.Equals(o.ARho) &&
		p.AW.Equals(o.AW)
}
