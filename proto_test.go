package mactok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestProtoEncoding(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t, true)

	var pk PublicKey
	assert.Nil(pk.UnmarshalProto(f.pk.MarshalProto()))
	assert.True(f.pk.Equal(&pk))

	var ticket Ticket
	assert.Nil(ticket.UnmarshalProto(f.ticket.MarshalProto()))
	assert.True(f.ticket.Equal(&ticket))

	var pi Proof
	assert.Nil(pi.UnmarshalProto(f.bs.Pi.MarshalProto()))
	assert.True(f.bs.Pi.Equal(&pi))

	var bs BlindSignature
	assert.Nil(bs.UnmarshalProto(f.bs.MarshalProto()))
	assert.True(f.bs.Equal(&bs))
	valid, err := VerifyProof(f.pk, f.ticket, &bs)
	assert.Nil(err)
	assert.True(valid)

	var token Token
	assert.Nil(token.UnmarshalProto(f.token.MarshalProto()))
	assert.True(f.token.Equal(&token))
}

func TestProtoUnknownAndMissingFields(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t, false)

	data := f.token.MarshalProto()
	data = protowire.AppendTag(data, 9, protowire.VarintType)
	data = protowire.AppendVarint(data, 1234)
	data = protowire.AppendTag(data, 10, protowire.BytesType)
	data = protowire.AppendBytes(data, []byte("ignored"))
	var token Token
	assert.Nil(token.UnmarshalProto(data))
	assert.True(f.token.Equal(&token))

	var missing Token
	partial := protoAppend(nil, 1, f.token.T.Bytes())
	partial = protoAppend(partial, 2, f.token.P.Bytes())
	assert.NotNil(missing.UnmarshalProto(partial))
	assert.Nil(missing.T)

	short := protoAppend(nil, 1, f.ticket.T.Bytes()[:31])
	var ticket Ticket
	assert.NotNil(ticket.UnmarshalProto(short))

	truncated := f.bs.MarshalProto()
	var bs BlindSignature
	assert.NotNil(bs.UnmarshalProto(truncated[:len(truncated)-5]))

	var proofless BlindSignature
	noProof := protoAppend(nil, 1, f.bs.U.Bytes())
	noProof = protoAppend(noProof, 2, f.bs.V.Bytes())
	noProof = protoAppend(noProof, 3, f.bs.TS.Bytes())
	assert.NotNil(proofless.UnmarshalProto(noProof))
}

func FuzzBlindSignatureProto(f *testing.F) {
	fx := newFixture(f, true)
	f.Add(fx.bs.MarshalProto())

	f.Fuzz(func(t *testing.T, data []byte) {
		var bs BlindSignature
		if err := bs.UnmarshalProto(data); err != nil {
			return
		}
		var again BlindSignature
		assert.Nil(t, again.UnmarshalProto(bs.MarshalProto()))
		assert.True(t, bs.Equal(&again))
	})
}
