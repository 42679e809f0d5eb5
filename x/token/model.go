package token

import (
	"regexp"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

var _ orm.Model = (*TokenInfo)(nil)
var _ orm.Model = (*Holding)(nil)

// isTickerFormat validates the token ticker symbol.
var isTickerFormat = regexp.MustCompile(`^[A-Z]{3,6}$`).MatchString

// TokenInfo is the singleton token state: the ticker symbol, the
// issuer allowed to mint and pause, and the pause switch.
type TokenInfo struct {
	Ticker string
	Issuer vault.Address
	// Paused refuses all token movements while set.
	Paused bool
}

// Validate enforces the token construction rules.
func (t *TokenInfo) Validate() error {
	if !isTickerFormat(t.Ticker) {
		return errors.Wrapf(errors.ErrInput, "invalid ticker %q", t.Ticker)
	}
	if err := t.Issuer.Validate(); err != nil {
		return errors.Wrap(err, "issuer")
	}
	return nil
}

// Holding is the token balance of one address.
type Holding struct {
	Balance uint64
}

// Validate is a no-op, any balance is a valid holding.
func (h *Holding) Validate() error {
	return nil
}

const (
	// infoBucketName is where the singleton token state lives.
	infoBucketName = "tokinfo"
	// holdingBucketName is where per address holdings live, keyed by
	// address.
	holdingBucketName = "holdings"
)

// infoKey is the singleton key the TokenInfo model lives under.
var infoKey = []byte("info")

func holdingKey(addr vault.Address) ([]byte, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "holder address")
	}
	return addr, nil
}
