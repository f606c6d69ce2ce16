package mactok

import "github.com/pkg/errors"

// ErrRejected is the only failure the protocol reports: a blind signature
// that does not finalize, or a token that does not redeem. Which check
// failed is deliberately not exposed.
var ErrRejected = errors.New("mactok: rejected")

type rejection uint8

const (
	rejectDegenerateSignature rejection = iota + 1
	rejectInvalidProof
	rejectAmbiguousToken
)

func (r rejection) Error() string {
	return ErrRejected.Error()
}

func (r rejection) Is(target error) bool {
	return target == ErrRejected
}

func (r rejection) kind() string {
	switch r {
	case rejectDegenerateSignature:
		return "degenerate signature"
	case rejectInvalidProof:
		return "invalid proof"
	case rejectAmbiguousToken:
		return "ambiguous or invalid token"
	default:
		return "unknown"
	}
}
