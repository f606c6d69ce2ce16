package mactok

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/pkg/errors"
)

const (
	PUBLIC_KEY_SIZE      = 3 * POINT_SIZE
	SECRET_KEY_SIZE      = 5*SCALAR_SIZE + 2*POINT_SIZE
	TICKET_SIZE          = POINT_SIZE
	PROOF_SIZE           = POINT_SIZE + 7*SCALAR_SIZE
	BLIND_SIGNATURE_SIZE = 2*POINT_SIZE + SCALAR_SIZE + PROOF_SIZE
	TOKEN_SIZE           = SCALAR_SIZE + 2*POINT_SIZE
)

// wireReader walks a fixed-width encoding. The first failure sticks and
// every later read returns nil.
type wireReader struct {
	buf []byte
	err error
}

func newWireReader(data []byte, size int, kind string) *wireReader {
	r := &wireReader{buf: data}
	if len(data) != size {
		r.err = errors.Errorf("mactok: invalid %s length %d, want %d", kind, len(data), size)
	}
	return r
}

func (r *wireReader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf) < n {
		r.err = errors.New("mactok: short buffer")
		return nil
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b
}

func (r *wireReader) scalar(name string) *ristretto.Scalar {
	b := r.next(SCALAR_SIZE)
	if r.err != nil {
		return nil
	}
	s, err := scalarFromCanonical(b)
	if err != nil {
		r.err = errors.Wrap(err, name)
	}
	return s
}

func (r *wireReader) point(name string) *ristretto.Point {
	b := r.next(POINT_SIZE)
	if r.err != nil {
		return nil
	}
	p, err := pointFromCanonical(b)
	if err != nil {
		r.err = errors.Wrap(err, name)
	}
	return p
}

func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, PUBLIC_KEY_SIZE)
	buf = append(buf, pk.Z.Bytes()...)
	buf = append(buf, pk.CX.Bytes()...)
	buf = append(buf, pk.CY.Bytes()...)
	return buf, nil
}

func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	r := newWireReader(data, PUBLIC_KEY_SIZE, "public key")
	z, cx, cy := r.point("Z"), r.point("C_x"), r.point("C_y")
	if r.err != nil {
		return r.err
	}
	pk.Z, pk.CX, pk.CY = z, cx, cy
	return nil
}

func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, SECRET_KEY_SIZE)
	buf = append(buf, sk.X.Bytes()...)
	buf = append(buf, sk.Y.Bytes()...)
	buf = append(buf, sk.Z.Bytes()...)
	buf = append(buf, sk.BigX.Bytes()...)
	buf = append(buf, sk.BigY.Bytes()...)
	buf = append(buf, sk.RX.Bytes()...)
	buf = append(buf, sk.RY.Bytes()...)
	return buf, nil
}

// UnmarshalBinary accepts only keys whose exponents are nonzero and whose
// cached points match them.
func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	r := newWireReader(data, SECRET_KEY_SIZE, "secret key")
	x, y, z := r.scalar("x"), r.scalar("y"), r.scalar("z")
	bigX, bigY := r.point("X"), r.point("Y")
	rx, ry := r.scalar("r_x"), r.scalar("r_y")
	if r.err != nil {
		return r.err
	}
	decoded := &SecretKey{X: x, Y: y, Z: z, BigX: bigX, BigY: bigY, RX: rx, RY: ry}
	if err := decoded.validate(); err != nil {
		return err
	}
	*sk = *decoded
	return nil
}

func (sk *SecretKey) validate() error {
	for _, s := range []*ristretto.Scalar{sk.X, sk.Y, sk.Z, sk.RX, sk.RY} {
		if isZeroScalar(s) {
			return errors.New("mactok: secret key has a zero scalar")
		}
	}
	var x, y ristretto.Point
	if !x.ScalarMultBase(sk.X).Equals(sk.BigX) || !y.ScalarMultBase(sk.Y).Equals(sk.BigY) {
		return errors.New("mactok: inconsistent secret key")
	}
	return nil
}

func (t *Ticket) MarshalBinary() ([]byte, error) {
	return t.T.Bytes(), nil
}

func (t *Ticket) UnmarshalBinary(data []byte) error {
	r := newWireReader(data, TICKET_SIZE, "ticket")
	p := r.point("T")
	if r.err != nil {
		return r.err
	}
	t.T = p
	return nil
}

func (p *Proof) appendBinary(buf []byte) []byte {
	buf = append(buf, p.C.Bytes()...)
	for _, s := range []*ristretto.Scalar{p.EZero, p.EOne, p.AZero, p.AOne, p.AD, p.ARho, p.AW} {
		buf = append(buf, s.Bytes()...)
	}
	return buf
}

func (p *Proof) MarshalBinary() ([]byte, error) {
	return p.appendBinary(make([]byte, 0, PROOF_SIZE)), nil
}

func (p *Proof) UnmarshalBinary(data []byte) error {
	r := newWireReader(data, PROOF_SIZE, "proof")
	decoded := r.proof()
	if r.err != nil {
		return r.err
	}
	*p = *decoded
	return nil
}

func (r *wireReader) proof() *Proof {
	return &Proof{
		C:     r.point("C"),
		EZero: r.scalar("e_0"),
		EOne:  r.scalar("e_1"),
		AZero: r.scalar("a_0"),
		AOne:  r.scalar("a_1"),
		AD:    r.scalar("a_d"),
		ARho:  r.scalar("a_rho"),
		AW:    r.scalar("a_w"),
	}
}

func (bs *BlindSignature) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, BLIND_SIGNATURE_SIZE)
	buf = append(buf, bs.U.Bytes()...)
	buf = append(buf, bs.V.Bytes()...)
	buf = append(buf, bs.TS.Bytes()...)
	return bs.Pi.appendBinary(buf), nil
}

func (bs *BlindSignature) UnmarshalBinary(data []byte) error {
	r := newWireReader(data, BLIND_SIGNATURE_SIZE, "blind signature")
	u, v, ts := r.point("U"), r.point("V"), r.scalar("ts")
	pi := r.proof()
	if r.err != nil {
		return r.err
	}
	bs.U, bs.V, bs.TS, bs.Pi = u, v, ts, pi
	return nil
}

func (t *Token) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, TOKEN_SIZE)
	buf = append(buf, t.T.Bytes()...)
	buf = append(buf, t.P.Bytes()...)
	buf = append(buf, t.Q.Bytes()...)
	return buf, nil
}

func (t *Token) UnmarshalBinary(data []byte) error {
	r := newWireReader(data, TOKEN_SIZE, "token")
	s, p, q := r.scalar("t"), r.point("P"), r.point("Q")
	if r.err != nil {
		return r.err
	}
	t.T, t.P, t.Q = s, p, q
	return nil
}
