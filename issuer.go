package mactok

import (
	"io"
)

// Issuer signs tickets and redeems tokens under one secret key. It holds no
// mutable state and can serve concurrent requests.
type Issuer struct {
	params *Params
	sk     *SecretKey
	pk     *PublicKey
	logger Logger
}

func NewIssuer(pp *Params, sk *SecretKey, logger Logger) *Issuer {
	return &Issuer{
		params: pp,
		sk:     sk,
		pk:     pp.NewPublicKey(sk),
		logger: loggerOrNop(logger),
	}
}

func GenerateIssuer(pp *Params, rng io.Reader, logger Logger) (*Issuer, error) {
	sk, err := pp.NewSecretKey(rng)
	if err != nil {
		return nil, err
	}
	return NewIssuer(pp, sk, logger), nil
}

func (is *Issuer) PublicKey() *PublicKey {
	return is.pk
}

// Issue blindly signs ticket. The bit comes from the caller's policy and is
// never logged.
func (is *Issuer) Issue(rng io.Reader, ticket *Ticket, bit bool) (*BlindSignature, error) {
	bs, err := is.params.NewBlindSignature(rng, is.pk, is.sk, ticket, bit)
	if err != nil {
		is.logger.Errorf("issue ticket %s: %v", ticket.Fingerprint(), err)
		return nil, err
	}
	is.logger.Debugf("issued ticket %s", ticket.Fingerprint())
	return bs, nil
}

func (is *Issuer) Redeem(token *Token) (bool, error) {
	bit, err := RedeemToken(token, is.sk)
	if err != nil {
		is.logger.Warnf("reject token %s", token.Fingerprint())
		return false, err
	}
	is.logger.Debugf("redeemed token %s", token.Fingerprint())
	return bit, nil
}
