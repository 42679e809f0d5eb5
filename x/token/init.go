package token

import (
	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Initializer fulfils the vault.Initializer interface to create the
// token and distribute initial holdings from genesis file options.
type Initializer struct{}

var _ vault.Initializer = (*Initializer)(nil)

// FromGenesis creates the token described under the "token" options
// key. It expects the following format:
//
//	"token": {
//	  "ticker": "VLT",
//	  "issuer": "hex:...",
//	  "holdings": [
//	    {"address": "hex:...", "balance": 123456}
//	  ]
//	}
func (*Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	var conf struct {
		Ticker   string `json:"ticker"`
		Issuer   string `json:"issuer"`
		Holdings []struct {
			Address string `json:"address"`
			Balance uint64 `json:"balance"`
		} `json:"holdings"`
	}
	if err := opts.ReadOptions("token", &conf); err != nil {
		return errors.Wrap(err, "cannot load token options")
	}
	if conf.Ticker == "" {
		return nil
	}
	issuer, err := vault.ParseAddress(conf.Issuer)
	if err != nil {
		return errors.Wrap(err, "issuer")
	}
	ctrl := NewController()
	if err := ctrl.Create(db, conf.Ticker, issuer); err != nil {
		return err
	}
	for i, h := range conf.Holdings {
		addr, err := vault.ParseAddress(h.Address)
		if err != nil {
			return errors.Wrapf(err, "holding #%d", i)
		}
		if err := ctrl.Issue(db, issuer, addr, h.Balance); err != nil {
			return errors.Wrapf(err, "holding #%d", i)
		}
	}
	return nil
}
