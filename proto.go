package mactok

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Protobuf field numbers of the transmitted messages. Every field is a
// length-delimited 32-byte scalar or compressed point, except the nested
// proof of a blind signature.
//
//	message PublicKey      { bytes z = 1; bytes c_x = 2; bytes c_y = 3; }
//	message Ticket         { bytes t = 1; }
//	message Proof          { bytes c = 1; bytes e_0 = 2; bytes e_1 = 3; bytes a_0 = 4;
//	                         bytes a_1 = 5; bytes a_d = 6; bytes a_rho = 7; bytes a_w = 8; }
//	message BlindSignature { bytes u = 1; bytes v = 2; bytes ts = 3; Proof proof = 4; }
//	message Token          { bytes t = 1; bytes p = 2; bytes q = 3; }
const (
	protoBlindSignatureProof protowire.Number = 4
)

// protoFields collects the bytes fields of one message. Repeated fields keep
// the last value, as protobuf does for scalars.
func protoFields(data []byte, last protowire.Number) (map[protowire.Number][]byte, error) {
	fields := make(map[protowire.Number][]byte)
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, errors.Wrap(protowire.ParseError(n), "mactok: proto tag")
		}
		data = data[n:]
		if num > last || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, errors.Wrap(protowire.ParseError(n), "mactok: proto field")
			}
			data = data[n:]
			continue
		}
		v, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, errors.Wrap(protowire.ParseError(n), "mactok: proto bytes")
		}
		fields[num] = v
		data = data[n:]
	}
	return fields, nil
}

func protoAppend(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

type protoMessage struct {
	fields map[protowire.Number][]byte
	kind   string
	err    error
}

func parseProtoMessage(data []byte, last protowire.Number, kind string) *protoMessage {
	fields, err := protoFields(data, last)
	return &protoMessage{fields: fields, kind: kind, err: err}
}

func (m *protoMessage) raw(num protowire.Number, name string) []byte {
	if m.err != nil {
		return nil
	}
	v, ok := m.fields[num]
	if !ok {
		m.err = errors.Errorf("mactok: %s missing field %s", m.kind, name)
	}
	return v
}

func (m *protoMessage) point(num protowire.Number, name string) *ristretto.Point {
	b := m.raw(num, name)
	if m.err != nil {
		return nil
	}
	p, err := pointFromCanonical(b)
	if err != nil {
		m.err = errors.Wrap(err, name)
	}
	return p
}

func (m *protoMessage) scalar(num protowire.Number, name string) *ristretto.Scalar {
	b := m.raw(num, name)
	if m.err != nil {
		return nil
	}
	s, err := scalarFromCanonical(b)
	if err != nil {
		m.err = errors.Wrap(err, name)
	}
	return s
}

func (pk *PublicKey) MarshalProto() []byte {
	var b []byte
	b = protoAppend(b, 1, pk.Z.Bytes())
	b = protoAppend(b, 2, pk.CX.Bytes())
	b = protoAppend(b, 3, pk.CY.Bytes())
	return b
}

func (pk *PublicKey) UnmarshalProto(data []byte) error {
	m := parseProtoMessage(data, 3, "public key")
	z, cx, cy := m.point(1, "z"), m.point(2, "c_x"), m.point(3, "c_y")
	if m.err != nil {
		return m.err
	}
	pk.Z, pk.CX, pk.CY = z, cx, cy
	return nil
}

func (t *Ticket) MarshalProto() []byte {
	return protoAppend(nil, 1, t.T.Bytes())
}

func (t *Ticket) UnmarshalProto(data []byte) error {
	m := parseProtoMessage(data, 1, "ticket")
	p := m.point(1, "t")
	if m.err != nil {
		return m.err
	}
	t.T = p
	return nil
}

func (p *Proof) MarshalProto() []byte {
	b := protoAppend(nil, 1, p.C.Bytes())
	for i, s := range []*ristretto.Scalar{p.EZero, p.EOne, p.AZero, p.AOne, p.AD, p.ARho, p.AW} {
		b = protoAppend(b, protowire.Number(i+2), s.Bytes())
	}
	return b
}

func (p *Proof) UnmarshalProto(data []byte) error {
	m := parseProtoMessage(data, 8, "proof")
	decoded := &Proof{
		C:     m.point(1, "c"),
		EZero: m.scalar(2, "e_0"),
		EOne:  m.scalar(3, "e_1"),
		AZero: m.scalar(4, "a_0"),
		AOne:  m.scalar(5, "a_1"),
		AD:    m.scalar(6, "a_d"),
		ARho:  m.scalar(7, "a_rho"),
		AW:    m.scalar(8, "a_w"),
	}
	if m.err != nil {
		return m.err
	}
	*p = *decoded
	return nil
}

func (bs *BlindSignature) MarshalProto() []byte {
	var b []byte
	b = protoAppend(b, 1, bs.U.Bytes())
	b = protoAppend(b, 2, bs.V.Bytes())
	b = protoAppend(b, 3, bs.TS.Bytes())
	b = protoAppend(b, protoBlindSignatureProof, bs.Pi.MarshalProto())
	return b
}

func (bs *BlindSignature) UnmarshalProto(data []byte) error {
	m := parseProtoMessage(data, protoBlindSignatureProof, "blind signature")
	u, v, ts := m.point(1, "u"), m.point(2, "v"), m.scalar(3, "ts")
	raw := m.raw(protoBlindSignatureProof, "proof")
	if m.err != nil {
		return m.err
	}
	var pi Proof
	if err := pi.UnmarshalProto(raw); err != nil {
		return err
	}
	bs.U, bs.V, bs.TS, bs.Pi = u, v, ts, &pi
	return nil
}

func (t *Token) MarshalProto() []byte {
	var b []byte
	b = protoAppend(b, 1, t.T.Bytes())
	b = protoAppend(b, 2, t.P.Bytes())
	b = protoAppend(b, 3, t.Q.Bytes())
	return b
}

func (t *Token) UnmarshalProto(data []byte) error {
	m := parseProtoMessage(data, 3, "token")
	s, p, q := m.scalar(1, "t"), m.point(2, "p"), m.point(3, "q")
	if m.err != nil {
		return m.err
	}
	t.T, t.P, t.Q = s, p, q
	return nil
}
