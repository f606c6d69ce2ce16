package mactok

import (
	"bytes"
	"encoding/hex"
	"io"

	"github.com/bwesterb/go-ristretto"
	"github.com/pkg/errors"
)

const (
	SCALAR_SIZE = 32
	POINT_SIZE  = 32

	MAX_NONZERO_SCALAR_ATTEMPTS = 64
)

// randomScalar reduces 64 bytes read from rng modulo the group order.
func randomScalar(rng io.Reader) (*ristretto.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return nil, errors.Wrap(err, "mactok: read randomness")
	}
	var s ristretto.Scalar
	return s.SetReduced(&buf), nil
}

func nonZeroScalar(rng io.Reader) (*ristretto.Scalar, error) {
	for i := 0; i < MAX_NONZERO_SCALAR_ATTEMPTS; i++ {
		s, err := randomScalar(rng)
		if err != nil {
			return nil, err
		}
		if !isZeroScalar(s) {
			return s, nil
		}
	}
	return nil, errors.New("mactok: randomness source keeps yielding zero scalars")
}

func nonZeroScalars(rng io.Reader, n int) ([]*ristretto.Scalar, error) {
	scalars := make([]*ristretto.Scalar, n)
	for i := range scalars {
		s, err := nonZeroScalar(rng)
		if err != nil {
			return nil, err
		}
		scalars[i] = s
	}
	return scalars, nil
}

func zeroScalar() *ristretto.Scalar {
	var s ristretto.Scalar
	return s.SetZero()
}

func oneScalar() *ristretto.Scalar {
	var s ristretto.Scalar
	return s.SetOne()
}

func isZeroScalar(s *ristretto.Scalar) bool {
	return s.Equals(zeroScalar())
}

// bitScalar encodes the metadata bit as the scalar 0 or 1.
func bitScalar(bit bool) *ristretto.Scalar {
	var buf [32]byte
	if bit {
		buf[0] = 1
	}
	var s ristretto.Scalar
	return s.SetBytes(&buf)
}

// selectScalar returns b * x + (1 - b) * y for b in {0, 1}. Both products
// are always computed.
func selectScalar(b, x, y *ristretto.Scalar) *ristretto.Scalar {
	var notB, l, r, s ristretto.Scalar
	notB.Sub(oneScalar(), b)
	l.Mul(b, x)
	r.Mul(&notB, y)
	return s.Add(&l, &r)
}

// selectPoint returns b * p + (1 - b) * q for b in {0, 1}.
func selectPoint(b *ristretto.Scalar, p, q *ristretto.Point) *ristretto.Point {
	var notB ristretto.Scalar
	notB.Sub(oneScalar(), b)
	return multiscalarMul([]*ristretto.Scalar{b, &notB}, []*ristretto.Point{p, q})
}

func negScalar(s *ristretto.Scalar) *ristretto.Scalar {
	var r ristretto.Scalar
	return r.Sub(zeroScalar(), s)
}

func cloneScalar(s *ristretto.Scalar) *ristretto.Scalar {
	var r ristretto.Scalar
	r.SetZero()
	return r.Add(&r, s)
}

func identityPoint() *ristretto.Point {
	var p ristretto.Point
	return p.SetZero()
}

func isIdentity(p *ristretto.Point) bool {
	return p.Equals(identityPoint())
}

func clonePoint(p *ristretto.Point) *ristretto.Point {
	var r ristretto.Point
	r.SetZero()
	return r.Add(&r, p)
}

func multiscalarMul(scalars []*ristretto.Scalar, points []*ristretto.Point) *ristretto.Point {
	var p ristretto.Point
	p.SetZero()
	for i := range scalars {
		var t ristretto.Point
		t.ScalarMult(points[i], scalars[i])
		p.Add(&p, &t)
	}
	return &p
}

func fromBytesModOrderWide(data []byte) *ristretto.Scalar {
	var data64 [64]byte
	copy(data64[:], data)
	var hs ristretto.Scalar
	return hs.SetReduced(&data64)
}

// groupOrder is l = 2^252 + 27742317777372353535851937790883648493, little endian.
var groupOrder = [SCALAR_SIZE]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

func isReduced(buf []byte) bool {
	for i := SCALAR_SIZE - 1; i >= 0; i-- {
		if buf[i] != groupOrder[i] {
			return buf[i] < groupOrder[i]
		}
	}
	return false
}

// scalarFromCanonical rejects encodings that are not fully reduced, so every
// scalar has exactly one accepted byte string.
func scalarFromCanonical(buf []byte) (*ristretto.Scalar, error) {
	if len(buf) != SCALAR_SIZE {
		return nil, errors.Errorf("mactok: invalid scalar length %d", len(buf))
	}
	if !isReduced(buf) {
		return nil, errors.New("mactok: non-canonical scalar")
	}
	var buf32 [32]byte
	copy(buf32[:], buf)
	var s ristretto.Scalar
	s.SetBytes(&buf32)
	if !bytes.Equal(s.Bytes(), buf) {
		return nil, errors.New("mactok: non-canonical scalar")
	}
	return &s, nil
}

func pointFromCanonical(buf []byte) (*ristretto.Point, error) {
	if len(buf) != POINT_SIZE {
		return nil, errors.Errorf("mactok: invalid point length %d", len(buf))
	}
	var buf32 [32]byte
	copy(buf32[:], buf)
	var p ristretto.Point
	if !p.SetBytes(&buf32) {
		return nil, errors.New("mactok: invalid point encoding")
	}
	if !bytes.Equal(p.Bytes(), buf) {
		return nil, errors.New("mactok: non-canonical point")
	}
	return &p, nil
}

func hexToScalar(h string) (*ristretto.Scalar, error) {
	buf, err := hex.DecodeString(h)
	if err != nil {
		return nil, errors.Wrap(err, "mactok: decode scalar hex")
	}
	return scalarFromCanonical(buf)
}

func hexToPoint(h string) (*ristretto.Point, error) {
	buf, err := hex.DecodeString(h)
	if err != nil {
		return nil, errors.Wrap(err, "mactok: decode point hex")
	}
	return pointFromCanonical(buf)
}
