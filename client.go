package mactok

import (
	"io"
)

// Client requests tickets from one issuer and finalizes its answers.
type Client struct {
	params *Params
	pk     *PublicKey
	logger Logger
}

func NewClient(pp *Params, pk *PublicKey, logger Logger) *Client {
	return &Client{params: pp, pk: pk, logger: loggerOrNop(logger)}
}

// Request returns a ticket for the issuer and the receipt to keep.
func (c *Client) Request(rng io.Reader) (*Ticket, *Receipt, error) {
	ticket, receipt, err := c.params.NewTicket(rng, c.pk)
	if err != nil {
		return nil, nil, err
	}
	c.logger.Debugf("requested ticket %s", ticket.Fingerprint())
	return ticket, receipt, nil
}

func (c *Client) Finalize(rng io.Reader, bs *BlindSignature, ticket *Ticket, receipt *Receipt) (*Token, error) {
	token, err := c.params.NewToken(rng, c.pk, bs, ticket, receipt)
	if err != nil {
		c.logger.Warnf("reject signature for ticket %s", ticket.Fingerprint())
		return nil, err
	}
	c.logger.Debugf("finalized ticket %s", ticket.Fingerprint())
	return token, nil
}
