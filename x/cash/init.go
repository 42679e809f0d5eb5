package cash

import (
	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Initializer fulfils the vault.Initializer interface to load initial
// wallet balances from genesis file options.
type Initializer struct{}

var _ vault.Initializer = (*Initializer)(nil)

// FromGenesis credits the wallets listed under the "cash" options key.
// It expects the following format:
//
//	"cash": [
//	  {"address": "hex:...", "balance": 123456}
//	]
func (*Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	var fellows []struct {
		Address string `json:"address"`
		Balance uint64 `json:"balance"`
	}
	if err := opts.ReadOptions("cash", &fellows); err != nil {
		return errors.Wrap(err, "cannot load cash options")
	}
	ctrl := NewController()
	for i, f := range fellows {
		addr, err := vault.ParseAddress(f.Address)
		if err != nil {
			return errors.Wrapf(err, "wallet #%d", i)
		}
		if err := ctrl.Deposit(db, addr, f.Balance); err != nil {
			return errors.Wrapf(err, "wallet #%d", i)
		}
	}
	return nil
}
