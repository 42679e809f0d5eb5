package cash

import (
	"math"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

// Controller is the only entity allowed to mutate wallet state.
type Controller struct {
	bucket orm.Bucket
}

// NewController returns a controller operating on the default wallet
// namespace.
func NewController() *Controller {
	return &Controller{
		bucket: orm.NewBucket(walletBucketName),
	}
}

// Balance returns the current balance of the given address. An address
// without a wallet holds zero.
func (c *Controller) Balance(db vault.ReadOnlyKVStore, addr vault.Address) (uint64, error) {
	key, err := walletKey(addr)
	if err != nil {
		return 0, err
	}
	var w Wallet
	switch err := c.bucket.One(db, key, &w); {
	case err == nil:
		return w.Balance, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

// Deposit credits the given address, creating the wallet if needed.
func (c *Controller) Deposit(db vault.KVStore, addr vault.Address, amount uint64) error {
	key, err := walletKey(addr)
	if err != nil {
		return err
	}
	balance, err := c.Balance(db, addr)
	if err != nil {
		return err
	}
	if balance > math.MaxUint64-amount {
		return errors.Wrapf(errors.ErrOverflow, "deposit %d to %s", amount, addr)
	}
	return c.bucket.Save(db, key, &Wallet{Balance: balance + amount})
}

// Move transfers value between two wallets. An insufficient source
// balance is reported with ok=false and no error, nothing is a fault
// about asking for more than is there. Both wallets are updated or
// neither is, callers run inside a cache-wrap.
func (c *Controller) Move(db vault.KVStore, src, dest vault.Address, amount uint64) (bool, error) {
	srcKey, err := walletKey(src)
	if err != nil {
		return false, err
	}
	srcBalance, err := c.Balance(db, src)
	if err != nil {
		return false, err
	}
	if srcBalance < amount {
		return false, nil
	}
	if err := c.bucket.Save(db, srcKey, &Wallet{Balance: srcBalance - amount}); err != nil {
		return false, err
	}
	if err := c.Deposit(db, dest, amount); err != nil {
		return false, err
	}
	return true, nil
}
