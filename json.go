package mactok

import (
	"encoding/hex"
	"encoding/json"

	"github.com/bwesterb/go-ristretto"
	"github.com/pkg/errors"
)

type hexDecoder struct {
	err error
}

func (d *hexDecoder) scalar(name, h string) *ristretto.Scalar {
	if d.err != nil {
		return nil
	}
	s, err := hexToScalar(h)
	if err != nil {
		d.err = errors.Wrap(err, name)
	}
	return s
}

func (d *hexDecoder) point(name, h string) *ristretto.Point {
	if d.err != nil {
		return nil
	}
	p, err := hexToPoint(h)
	if err != nil {
		d.err = errors.Wrap(err, name)
	}
	return p
}

type secretKeyJSON struct {
	X    string `json:"x"`
	Y    string `json:"y"`
	Z    string `json:"z"`
	BigX string `json:"big_x"`
	BigY string `json:"big_y"`
	RX   string `json:"r_x"`
	RY   string `json:"r_y"`
}

func (sk *SecretKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(secretKeyJSON{
		X:    hex.EncodeToString(sk.X.Bytes()),
		Y:    hex.EncodeToString(sk.Y.Bytes()),
		Z:    hex.EncodeToString(sk.Z.Bytes()),
		BigX: hex.EncodeToString(sk.BigX.Bytes()),
		BigY: hex.EncodeToString(sk.BigY.Bytes()),
		RX:   hex.EncodeToString(sk.RX.Bytes()),
		RY:   hex.EncodeToString(sk.RY.Bytes()),
	})
}

func (sk *SecretKey) UnmarshalJSON(data []byte) error {
	var v secretKeyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "mactok: secret key json")
	}
	var d hexDecoder
	decoded := &SecretKey{
		X:    d.scalar("x", v.X),
		Y:    d.scalar("y", v.Y),
		Z:    d.scalar("z", v.Z),
		BigX: d.point("big_x", v.BigX),
		BigY: d.point("big_y", v.BigY),
		RX:   d.scalar("r_x", v.RX),
		RY:   d.scalar("r_y", v.RY),
	}
	if d.err != nil {
		return d.err
	}
	if err := decoded.validate(); err != nil {
		return err
	}
	*sk = *decoded
	return nil
}

type publicKeyJSON struct {
	Z  string `json:"z"`
	CX string `json:"c_x"`
	CY string `json:"c_y"`
}

func (pk *PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(publicKeyJSON{
		Z:  hex.EncodeToString(pk.Z.Bytes()),
		CX: hex.EncodeToString(pk.CX.Bytes()),
		CY: hex.EncodeToString(pk.CY.Bytes()),
	})
}

func (pk *PublicKey) UnmarshalJSON(data []byte) error {
	var v publicKeyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "mactok: public key json")
	}
	var d hexDecoder
	z, cx, cy := d.point("z", v.Z), d.point("c_x", v.CX), d.point("c_y", v.CY)
	if d.err != nil {
		return d.err
	}
	pk.Z, pk.CX, pk.CY = z, cx, cy
	return nil
}

type ticketJSON struct {
	T string `json:"t"`
}

func (t *Ticket) MarshalJSON() ([]byte, error) {
	return json.Marshal(ticketJSON{T: hex.EncodeToString(t.T.Bytes())})
}

func (t *Ticket) UnmarshalJSON(data []byte) error {
	var v ticketJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "mactok: ticket json")
	}
	var d hexDecoder
	p := d.point("t", v.T)
	if d.err != nil {
		return d.err
	}
	t.T = p
	return nil
}

type proofJSON struct {
	C     string `json:"c"`
	EZero string `json:"e_0"`
	EOne  string `json:"e_1"`
	AZero string `json:"a_0"`
	AOne  string `json:"a_1"`
	AD    string `json:"a_d"`
	ARho  string `json:"a_rho"`
	AW    string `json:"a_w"`
}

type blindSignatureJSON struct {
	U  string    `json:"u"`
	V  string    `json:"v"`
	TS string    `json:"ts"`
	Pi proofJSON `json:"pi"`
}

func (bs *BlindSignature) MarshalJSON() ([]byte, error) {
	pi := bs.Pi
	return json.Marshal(blindSignatureJSON{
		U:  hex.EncodeToString(bs.U.Bytes()),
		V:  hex.EncodeToString(bs.V.Bytes()),
		TS: hex.EncodeToString(bs.TS.Bytes()),
		Pi: proofJSON{
			C:     hex.EncodeToString(pi.C.Bytes()),
			EZero: hex.EncodeToString(pi.EZero.Bytes()),
			EOne:  hex.EncodeToString(pi.EOne.Bytes()),
			AZero: hex.EncodeToString(pi.AZero.Bytes()),
			AOne:  hex.EncodeToString(pi.AOne.Bytes()),
			AD:    hex.EncodeToString(pi.AD.Bytes()),
			ARho:  hex.EncodeToString(pi.ARho.Bytes()),
			AW:    hex.EncodeToString(pi.AW.Bytes()),
		},
	})
}

func (bs *BlindSignature) UnmarshalJSON(data []byte) error {
	var v blindSignatureJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "mactok: blind signature json")
	}
	var d hexDecoder
	u, vv, ts := d.point("u", v.U), d.point("v", v.V), d.scalar("ts", v.TS)
	pi := &Proof{
		C:     d.point("c", v.Pi.C),
		EZero: d.scalar("e_0", v.Pi.EZero),
		EOne:  d.scalar("e_1", v.Pi.EOne),
		AZero: d.scalar("a_0", v.Pi.AZero),
		AOne:  d.scalar("a_1", v.Pi.AOne),
		AD:    d.scalar("a_d", v.Pi.AD),
		ARho:  d.scalar("a_rho", v.Pi.ARho),
		AW:    d.scalar("a_w", v.Pi.AW),
	}
	if d.err != nil {
		return d.err
	}
	bs.U, bs.V, bs.TS, bs.Pi = u, vv, ts, pi
	return nil
}

type tokenJSON struct {
	T string `json:"t"`
	P string `json:"p"`
	Q string `json:"q"`
}

func (t *Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(tokenJSON{
		T: hex.EncodeToString(t.T.Bytes()),
		P: hex.EncodeToString(t.P.Bytes()),
		Q: hex.EncodeToString(t.Q.Bytes()),
	})
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var v tokenJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "mactok: token json")
	}
	var d hexDecoder
	s, p, q := d.scalar("t", v.T), d.point("p", v.P), d.point("q", v.Q)
	if d.err != nil {
		return d.err
	}
	t.T, t.P, t.Q = s, p, q
	return nil
}
