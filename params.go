package mactok

import (
	"crypto/sha512"
	"sync"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/sha3"
)

const (
	DEFAULT_DOMAIN_TAG       = "mactok"
	GENERATORS_CHAIN_LABEL   = "GeneratorsChain"
	PROOF_DOMAIN_SEPARATOR   = "mactok proof v1"
	FINGERPRINT_DOMAIN_TAG   = "mactok_fingerprint"
	SEEDED_READER_DOMAIN_TAG = "mactok_seeded_reader"
)

// Params holds the two independent generators every key, ticket and proof
// is computed against, plus the domain label bound into proof transcripts.
// A Params value is never modified after construction.
type Params struct {
	g      ristretto.Point
	h      ristretto.Point
	domain string
}

var (
	defaultParams     *Params
	defaultParamsOnce sync.Once
)

// DefaultParams returns the process-wide parameters: G is the Ristretto base
// point and H is hashed from the compressed base point with SHA-512.
func DefaultParams() *Params {
	defaultParamsOnce.Do(func() {
		var base ristretto.Point
		base.SetBase()

		h := sha512.Sum512(base.Bytes())

		defaultParams = &Params{
			g:      base,
			h:      *pointFromUniformBytes(h[:]),
			domain: DEFAULT_DOMAIN_TAG,
		}
	})
	return defaultParams
}

// NewParams derives an alternate parameter set whose H comes from a
// SHAKE256 generators chain keyed by label. Tokens issued under one
// parameter set never verify or redeem under another.
func NewParams(label string) *Params {
	if label == "" {
		return DefaultParams()
	}
	var base ristretto.Point
	base.SetBase()
	return &Params{
		g:      base,
		h:      *NewGeneratorsChain([]byte(label)).Next(),
		domain: label,
	}
}

func (pp *Params) G() *ristretto.Point {
	return clonePoint(&pp.g)
}

func (pp *Params) H() *ristretto.Point {
	return clonePoint(&pp.h)
}

func (pp *Params) Domain() string {
	return pp.domain
}

// Commit returns value * G + blinding * H
func (pp *Params) Commit(value, blinding *ristretto.Scalar) *ristretto.Point {
	return multiscalarMul([]*ristretto.Scalar{value, blinding}, []*ristretto.Point{&pp.g, &pp.h})
}

type GeneratorsChain struct {
	sha3.ShakeHash
}

func NewGeneratorsChain(label []byte) *GeneratorsChain {
	h := sha3.NewShake256()
	h.Write([]byte(GENERATORS_CHAIN_LABEL))
	h.Write(label)
	return &GeneratorsChain{h}
}

func (c *GeneratorsChain) Next() *ristretto.Point {
	var data [64]byte
	c.Read(data[:])
	return pointFromUniformBytes(data[:])
}

func pointFromUniformBytes(key []byte) *ristretto.Point {
	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], key[:32])
	copy(r2Bytes[:], key[32:])
	var r, r1, r2 ristretto.Point
	return r.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes))
}
