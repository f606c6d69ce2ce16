package mactok

import (
	"encoding/hex"

	"github.com/dchest/blake2b"
)

func fingerprint(kind string, data []byte) string {
	hash := blake2b.New256()
	hash.Write([]byte(FINGERPRINT_DOMAIN_TAG))
	hash.Write([]byte(kind))
	hash.Write(data)
	return hex.EncodeToString(hash.Sum(nil))
}

// Fingerprint identifies a ticket in logs without exposing the receipt.
func (t *Ticket) Fingerprint() string {
	data, _ := t.MarshalBinary()
	return fingerprint("ticket", data)
}

// Fingerprint is stable for a token and distinct across tokens, so it can
// key a store of spent tokens.
func (t *Token) Fingerprint() string {
	data, _ := t.MarshalBinary()
	return fingerprint("token", data)
}
