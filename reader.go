package mactok

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// NewSeededReader returns an endless deterministic byte stream expanded from
// seed. Use it for reproducible tests and seed-derived keys, never for
// issuance randomness.
func NewSeededReader(seed []byte) io.Reader {
	h := sha3.NewShake256()
	h.Write([]byte(SEEDED_READER_DOMAIN_TAG))
	h.Write(seed)
	return h
}
