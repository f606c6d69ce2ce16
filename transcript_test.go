package mactok

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
)

func TestTranscript(t *testing.T) {
	assert := assert.New(t)

	tt := InitialTranscript("test protocol")
	appendBytes([]byte("some label"), []byte("some data"), tt)
	assert.Equal("d5a21972d0d5fe320c0d263fac7fffb8145aa640af6e9bca177c03c7efcf0615", hex.EncodeToString(tt.ExtractBytes([]byte("challenge"), 32)))

	data, _ := hex.DecodeString("8c9e7d8be647b6a1075e89116015d2610bb2af0e9ec21155aac3371284f6688aace5630ea6f01e885d39b9a2bf91f412dc777c672b30895c480b99b3404c8f10")
	assert.Equal("2f35e7225a239904853604bf8368dc14a5181ab697eb9880fe850b02a2e12e06", hex.EncodeToString(fromBytesModOrderWide(data).Bytes()))

	t1 := ProofDomainSep(InitialTranscript(DEFAULT_DOMAIN_TAG))
	t2 := ProofDomainSep(InitialTranscript(DEFAULT_DOMAIN_TAG))
	t3 := InitialTranscript(DEFAULT_DOMAIN_TAG)
	e1, e2, e3 := ChallengeScalar("e", t1), ChallengeScalar("e", t2), ChallengeScalar("e", t3)
	assert.True(e1.Equals(e2))
	assert.False(e1.Equals(e3))
}

func TestProofChallengeBindsInputs(t *testing.T) {
	assert := assert.New(t)

	pp := DefaultParams()
	sk, _ := NewSecretKey(rand.Reader)
	pk := NewPublicKey(sk)

	points := make([]*ristretto.Point, 9)
	for i := range points {
		var p ristretto.Point
		points[i] = p.Rand()
	}
	ts, _ := nonZeroScalar(rand.Reader)
	challenge := func(points []*ristretto.Point, ts *ristretto.Scalar) *ristretto.Scalar {
		pc := &proofCommitments{CZero: points[3], COne: points[4], CD: points[5], CRho: points[6], CW: points[7]}
		return proofChallenge(pp, pk, points[0], points[1], ts, points[2], pc)
	}

	e := challenge(points, ts)
	assert.True(e.Equals(challenge(points, ts)))

	for i := 0; i < 8; i++ {
		changed := append([]*ristretto.Point{}, points...)
		changed[i] = points[8]
		assert.False(e.Equals(challenge(changed, ts)), "point %d", i)
	}
	var ts2 ristretto.Scalar
	assert.False(e.Equals(challenge(points, ts2.Add(ts, oneScalar()))))

	e2 := proofChallenge(NewParams("mactok other"), pk, points[0], points[1], ts, points[2],
		&proofCommitments{CZero: points[3], COne: points[4], CD: points[5], CRho: points[6], CW: points[7]})
	assert.False(e.Equals(e2))
}
