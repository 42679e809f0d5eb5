package cash

import (
	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

var _ orm.Model = (*Wallet)(nil)

// Wallet is the native currency balance of one address. Wallets are
// created on first deposit and never deleted, a drained wallet simply
// holds zero.
type Wallet struct {
	Balance uint64
}

// Validate is a no-op, any balance is a valid wallet state.
func (w *Wallet) Validate() error {
	return nil
}

// walletBucketName is where the wallet models live, keyed by address.
const walletBucketName = "wallets"

func walletKey(addr vault.Address) ([]byte, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "wallet address")
	}
	return addr, nil
}
