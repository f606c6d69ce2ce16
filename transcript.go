package mactok

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
)

func InitialTranscript(label string) *merlin.Transcript {
	return merlin.NewTranscript(label)
}

func ProofDomainSep(t *merlin.Transcript) *merlin.Transcript {
	appendBytes([]byte("dom-sep"), []byte(PROOF_DOMAIN_SEPARATOR), t)
	return t
}

// proofCommitments are the prover's first-move values, recomputed by the
// verifier from the responses.
type proofCommitments struct {
	CZero *ristretto.Point
	COne  *ristretto.Point
	CD    *ristretto.Point
	CRho  *ristretto.Point
	CW    *ristretto.Point
}

// proofChallenge binds the public key, the signature values and the
// commitments into the challenge e. Prover and verifier must feed it the
// same transcript shape.
func proofChallenge(pp *Params, pk *PublicKey, u, v *ristretto.Point, ts *ristretto.Scalar, c *ristretto.Point, pc *proofCommitments) *ristretto.Scalar {
	t := ProofDomainSep(InitialTranscript(pp.Domain()))

	AppendPoint("C_x", pk.CX, t)
	AppendPoint("C_y", pk.CY, t)
	AppendPoint("Z", pk.Z, t)
	AppendPoint("U", u, t)
	AppendPoint("V", v, t)
	AppendScalar("ts", ts, t)
	AppendPoint("C", c, t)
	AppendPoint("C_0", pc.CZero, t)
	AppendPoint("C_1", pc.COne, t)
	AppendPoint("C_d", pc.CD, t)
	AppendPoint("C_rho", pc.CRho, t)
	AppendPoint("C_w", pc.CW, t)

	return ChallengeScalar("e", t)
}

func appendBytes(field, data []byte, t *merlin.Transcript) {
	t.AppendMessage(field, data)
}

// ChallengeScalar extracts 64 bytes and reduces them modulo the group order.
func ChallengeScalar(label string, t *merlin.Transcript) *ristretto.Scalar {
	data := t.ExtractBytes([]byte(label), 64)
	return fromBytesModOrderWide(data)
}

func AppendScalar(label string, s *ristretto.Scalar, t *merlin.Transcript) {
	appendBytes([]byte(label), s.Bytes(), t)
}

func AppendPoint(label string, p *ristretto.Point, t *merlin.Transcript) {
	appendBytes([]byte(label), p.Bytes(), t)
}
