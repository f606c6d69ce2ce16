package mactok

import (
	"github.com/bwesterb/go-ristretto"
)

// RedeemToken recovers the metadata bit of a token issued under sk. Exactly
// one of the two candidate points must equal Q; a token with P at the
// identity is rejected before either is compared.
func RedeemToken(token *Token, sk *SecretKey) (bool, error) {
	if isIdentity(token.P) {
		return false, rejectAmbiguousToken
	}

	// false <-- x + t * z
	var falseScalar ristretto.Scalar
	falseScalar.Mul(token.T, sk.Z)
	falseScalar.Add(sk.X, &falseScalar)

	// true <-- x + t * z + y
	var trueScalar ristretto.Scalar
	trueScalar.Add(&falseScalar, sk.Y)

	var falsePoint, truePoint ristretto.Point
	falsePoint.ScalarMult(token.P, &falseScalar)
	truePoint.ScalarMult(token.P, &trueScalar)

	isTrue := truePoint.Equals(token.Q)
	isFalse := falsePoint.Equals(token.Q)
	if isTrue == isFalse {
		return false, rejectAmbiguousToken
	}
	return isTrue, nil
}
