package mactok

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

// b58Encode prefixes the little-endian CRC-32 of data and base58-encodes
// the result.
func b58Encode(data []byte) string {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, crc32.ChecksumIEEE(data))
	buf = append(buf, data...)
	return base58.Encode(buf)
}

func b58Decode(code, kind string) ([]byte, error) {
	data := base58.Decode(code)
	if len(data) < 4 {
		return nil, errors.Errorf("mactok: invalid %s code %s", kind, code)
	}
	sum := make([]byte, 4)
	binary.LittleEndian.PutUint32(sum, crc32.ChecksumIEEE(data[4:]))
	if !bytes.Equal(sum, data[:4]) {
		return nil, errors.Errorf("mactok: invalid %s code %s", kind, code)
	}
	return data[4:], nil
}

func (pk *PublicKey) B58Code() string {
	return b58Encode(pk.MarshalProto())
}

func PublicKeyFromB58(code string) (*PublicKey, error) {
	data, err := b58Decode(code, "public key")
	if err != nil {
		return nil, err
	}
	var pk PublicKey
	if err := pk.UnmarshalProto(data); err != nil {
		return nil, err
	}
	return &pk, nil
}

func (t *Ticket) B58Code() string {
	return b58Encode(t.MarshalProto())
}

func TicketFromB58(code string) (*Ticket, error) {
	data, err := b58Decode(code, "ticket")
	if err != nil {
		return nil, err
	}
	var t Ticket
	if err := t.UnmarshalProto(data); err != nil {
		return nil, err
	}
	return &t, nil
}

func (bs *BlindSignature) B58Code() string {
	return b58Encode(bs.MarshalProto())
}

func BlindSignatureFromB58(code string) (*BlindSignature, error) {
	data, err := b58Decode(code, "blind signature")
	if err != nil {
		return nil, err
	}
	var bs BlindSignature
	if err := bs.UnmarshalProto(data); err != nil {
		return nil, err
	}
	return &bs, nil
}

func (t *Token) B58Code() string {
	return b58Encode(t.MarshalProto())
}

func TokenFromB58(code string) (*Token, error) {
	data, err := b58Decode(code, "token")
	if err != nil {
		return nil, err
	}
	var t Token
	if err := t.UnmarshalProto(data); err != nil {
		return nil, err
	}
	return &t, nil
}
