package mactok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t, true)

	assert.Len(f.token.Fingerprint(), 64)
	assert.Len(f.ticket.Fingerprint(), 64)

	data, _ := f.token.MarshalBinary()
	var token Token
	assert.Nil(token.UnmarshalBinary(data))
	assert.Equal(f.token.Fingerprint(), token.Fingerprint())

	other := newFixture(t, true)
	assert.NotEqual(f.token.Fingerprint(), other.token.Fingerprint())
	assert.NotEqual(f.ticket.Fingerprint(), other.ticket.Fingerprint())

	ticket := &Ticket{T: f.token.P}
	assert.NotEqual(fingerprint("ticket", f.token.P.Bytes()), fingerprint("token", f.token.P.Bytes()))
	assert.Equal(fingerprint("ticket", f.token.P.Bytes()), ticket.Fingerprint())
}
