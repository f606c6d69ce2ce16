package mactok

import (
	"crypto/rand"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	sk      *SecretKey
	pk      *PublicKey
	ticket  *Ticket
	receipt *Receipt
	bs      *BlindSignature
	token   *Token
}

func newFixture(t testing.TB, bit bool) *fixture {
	sk, err := NewSecretKey(rand.Reader)
	require.Nil(t, err)
	pk := NewPublicKey(sk)
	ticket, receipt, err := NewTicket(rand.Reader, pk)
	require.Nil(t, err)
	bs, err := NewBlindSignature(rand.Reader, pk, sk, ticket, bit)
	require.Nil(t, err)
	token, err := NewToken(rand.Reader, pk, bs, ticket, receipt)
	require.Nil(t, err)
	return &fixture{sk: sk, pk: pk, ticket: ticket, receipt: receipt, bs: bs, token: token}
}

func TestBinaryEncoding(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t, true)

	data, err := f.sk.MarshalBinary()
	assert.Nil(err)
	assert.Len(data, SECRET_KEY_SIZE)
	var sk SecretKey
	assert.Nil(sk.UnmarshalBinary(data))
	assert.True(f.sk.Equal(&sk))

	data, _ = f.pk.MarshalBinary()
	assert.Len(data, PUBLIC_KEY_SIZE)
	var pk PublicKey
	assert.Nil(pk.UnmarshalBinary(data))
	assert.True(f.pk.Equal(&pk))

	data, _ = f.ticket.MarshalBinary()
	assert.Len(data, TICKET_SIZE)
	var ticket Ticket
	assert.Nil(ticket.UnmarshalBinary(data))
	assert.True(f.ticket.Equal(&ticket))

	data, _ = f.bs.Pi.MarshalBinary()
	assert.Len(data, PROOF_SIZE)
	var pi Proof
	assert.Nil(pi.UnmarshalBinary(data))
	assert.True(f.bs.Pi.Equal(&pi))

	data, _ = f.bs.MarshalBinary()
	assert.Len(data, 352)
	var bs BlindSignature
	assert.Nil(bs.UnmarshalBinary(data))
	assert.True(f.bs.Equal(&bs))

	data, _ = f.token.MarshalBinary()
	assert.Len(data, TOKEN_SIZE)
	var token Token
	assert.Nil(token.UnmarshalBinary(data))
	assert.True(f.token.Equal(&token))

	redeemed, err := RedeemToken(&token, &sk)
	assert.Nil(err)
	assert.True(redeemed)
}

func TestBinaryDecodingStrict(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t, false)

	data, _ := f.token.MarshalBinary()
	var token Token
	assert.NotNil(token.UnmarshalBinary(data[:TOKEN_SIZE-1]))
	assert.NotNil(token.UnmarshalBinary(append(data, 0)))
	assert.Nil(token.T)

	// t = 2^256 - 1 is not reduced
	bad := append([]byte{}, data...)
	for i := 0; i < SCALAR_SIZE; i++ {
		bad[i] = 0xff
	}
	assert.NotNil(token.UnmarshalBinary(bad))

	// odd field elements are never valid point encodings
	bad = append([]byte{}, data...)
	bad[SCALAR_SIZE] |= 1
	assert.NotNil(token.UnmarshalBinary(bad))

	data, _ = f.sk.MarshalBinary()
	var sk SecretKey
	bad = append([]byte{}, data...)
	copy(bad[3*SCALAR_SIZE:], f.sk.BigY.Bytes())
	assert.NotNil(sk.UnmarshalBinary(bad))

	bad = append([]byte{}, data...)
	copy(bad[3*SCALAR_SIZE+2*POINT_SIZE:], make([]byte, SCALAR_SIZE))
	assert.NotNil(sk.UnmarshalBinary(bad))
	assert.Nil(sk.X)
}

func TestBlindSignatureTamper(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t, true)

	data, _ := f.bs.MarshalBinary()
	for i := range data {
		tampered := append([]byte{}, data...)
		tampered[i] ^= 0x01

		var bs BlindSignature
		if err := bs.UnmarshalBinary(tampered); err != nil {
			continue
		}
		valid, err := VerifyProof(f.pk, f.ticket, &bs)
		assert.False(valid, "byte %d", i)
		assert.NotNil(err, "byte %d", i)

		token, err := NewToken(rand.Reader, f.pk, &bs, f.ticket, f.receipt)
		assert.Nil(token, "byte %d", i)
		assert.NotNil(err, "byte %d", i)
	}
}

func TestSelectConstantShape(t *testing.T) {
	assert := assert.New(t)

	x, _ := nonZeroScalar(rand.Reader)
	y, _ := nonZeroScalar(rand.Reader)
	assert.True(selectScalar(bitScalar(true), x, y).Equals(x))
	assert.True(selectScalar(bitScalar(false), x, y).Equals(y))

	var p, q ristretto.Point
	p.Rand()
	q.Rand()
	assert.True(selectPoint(bitScalar(true), &p, &q).Equals(&p))
	assert.True(selectPoint(bitScalar(false), &p, &q).Equals(&q))
}

func FuzzBlindSignatureBinary(f *testing.F) {
	fx := newFixture(f, true)
	data, _ := fx.bs.MarshalBinary()
	f.Add(data)
	f.Add(make([]byte, BLIND_SIGNATURE_SIZE))

	f.Fuzz(func(t *testing.T, data []byte) {
		var bs BlindSignature
		if err := bs.UnmarshalBinary(data); err != nil {
			return
		}
		encoded, _ := bs.MarshalBinary()
		assert.Equal(t, data, encoded)
		VerifyProof(fx.pk, fx.ticket, &bs)
	})
}

func FuzzTokenBinary(f *testing.F) {
	fx := newFixture(f, false)
	data, _ := fx.token.MarshalBinary()
	f.Add(data)

	f.Fuzz(func(t *testing.T, data []byte) {
		var token Token
		if err := token.UnmarshalBinary(data); err != nil {
			return
		}
		encoded, _ := token.MarshalBinary()
		assert.Equal(t, data, encoded)
		RedeemToken(&token, fx.sk)
	})
}

func TestScalarCanonical(t *testing.T) {
	assert := assert.New(t)

	l := groupOrder
	_, err := scalarFromCanonical(l[:])
	assert.NotNil(err)

	l[0]--
	s, err := scalarFromCanonical(l[:])
	assert.Nil(err)
	var sum ristretto.Scalar
	assert.True(sum.Add(s, oneScalar()).Equals(zeroScalar()))

	_, err = scalarFromCanonical(make([]byte, SCALAR_SIZE-1))
	assert.NotNil(err)
	_, err = pointFromCanonical(make([]byte, POINT_SIZE))
	assert.Nil(err)
}
