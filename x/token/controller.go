package token

import (
	"math"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

// Controller owns all token state mutations: issuance, pausing and
// holder to holder movements.
type Controller struct {
	info     orm.Bucket
	holdings orm.Bucket
}

// NewController returns a controller operating on the default token
// namespaces.
func NewController() *Controller {
	return &Controller{
		info:     orm.NewBucket(infoBucketName),
		holdings: orm.NewBucket(holdingBucketName),
	}
}

// Create installs the token singleton. It fails with ErrState if a
// token was already created in this store.
func (c *Controller) Create(db vault.KVStore, ticker string, issuer vault.Address) error {
	switch has, err := c.info.Has(db, infoKey); {
	case err != nil:
		return err
	case has:
		return errors.Wrap(errors.ErrState, "token already created")
	}
	info := TokenInfo{Ticker: ticker, Issuer: issuer.Clone()}
	return c.info.Save(db, infoKey, &info)
}

// Info loads the token singleton.
func (c *Controller) Info(db vault.ReadOnlyKVStore) (*TokenInfo, error) {
	var info TokenInfo
	if err := c.info.One(db, infoKey, &info); err != nil {
		return nil, errors.Wrap(err, "token")
	}
	return &info, nil
}

// BalanceOf returns the holding of the given address. An address
// without a holding owns zero.
func (c *Controller) BalanceOf(db vault.ReadOnlyKVStore, addr vault.Address) (uint64, error) {
	key, err := holdingKey(addr)
	if err != nil {
		return 0, err
	}
	var h Holding
	switch err := c.holdings.One(db, key, &h); {
	case err == nil:
		return h.Balance, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

// Issue mints new tokens to the given address. Only the issuer may
// mint, and minting works on a paused token too.
func (c *Controller) Issue(db vault.KVStore, issuer, to vault.Address, amount uint64) error {
	info, err := c.Info(db)
	if err != nil {
		return err
	}
	if !info.Issuer.Equals(issuer) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not the issuer", issuer)
	}
	key, err := holdingKey(to)
	if err != nil {
		return err
	}
	balance, err := c.BalanceOf(db, to)
	if err != nil {
		return err
	}
	if balance > math.MaxUint64-amount {
		return errors.Wrapf(errors.ErrOverflow, "issue %d to %s", amount, to)
	}
	return c.holdings.Save(db, key, &Holding{Balance: balance + amount})
}

// Pause stops all token movements. Only the issuer may pause.
func (c *Controller) Pause(db vault.KVStore, issuer vault.Address) error {
	return c.setPaused(db, issuer, true)
}

// Unpause resumes token movements. Only the issuer may unpause.
func (c *Controller) Unpause(db vault.KVStore, issuer vault.Address) error {
	return c.setPaused(db, issuer, false)
}

func (c *Controller) setPaused(db vault.KVStore, issuer vault.Address, paused bool) error {
	info, err := c.Info(db)
	if err != nil {
		return err
	}
	if !info.Issuer.Equals(issuer) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not the issuer", issuer)
	}
	info.Paused = paused
	return c.info.Save(db, infoKey, info)
}

// Transfer moves tokens between two holders. A paused token and an
// insufficient source holding are both declared refusals, reported
// with ok=false and no error.
func (c *Controller) Transfer(db vault.KVStore, src, dest vault.Address, amount uint64) (bool, error) {
	info, err := c.Info(db)
	if err != nil {
		return false, err
	}
	if info.Paused {
		return false, nil
	}
	srcKey, err := holdingKey(src)
	if err != nil {
		return false, err
	}
	destKey, err := holdingKey(dest)
	if err != nil {
		return false, err
	}
	srcBalance, err := c.BalanceOf(db, src)
	if err != nil {
		return false, err
	}
	if srcBalance < amount {
		return false, nil
	}
	// A self transfer is a funded no-op.
	if src.Equals(dest) {
		return true, nil
	}
	destBalance, err := c.BalanceOf(db, dest)
	if err != nil {
		return false, err
	}
	if destBalance > math.MaxUint64-amount {
		return false, errors.Wrapf(errors.ErrOverflow, "transfer %d to %s", amount, dest)
	}
	if err := c.holdings.Save(db, srcKey, &Holding{Balance: srcBalance - amount}); err != nil {
		return false, err
	}
	return true, c.holdings.Save(db, destKey, &Holding{Balance: destBalance + amount})
}
