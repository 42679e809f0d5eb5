package token

import (
	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/x/multisig"
)

// Backend settles vault transfers in the fungible token. The vault
// pool is a regular holding owned by the pool address. While the
// token is paused every settlement is refused and the transfer stays
// pending.
type Backend struct {
	pool vault.Address
	ctrl *Controller
}

var _ multisig.SettlementBackend = (*Backend)(nil)

// NewBackend returns a settlement backend paying out of the holding
// owned by the pool address.
func NewBackend(pool vault.Address) *Backend {
	return &Backend{
		pool: pool.Clone(),
		ctrl: NewController(),
	}
}

// Pool returns the address the backend pays out of.
func (b *Backend) Pool() vault.Address {
	return b.pool.Clone()
}

// Controller exposes the token controller, for issuance, pause
// control and holding inspection.
func (b *Backend) Controller() *Controller {
	return b.ctrl
}

func (b *Backend) AvailableBalance(db vault.KVStore) (uint64, error) {
	return b.ctrl.BalanceOf(db, b.pool)
}

func (b *Backend) Send(db vault.KVStore, recipient vault.Address, amount uint64) (bool, error) {
	return b.ctrl.Transfer(db, b.pool, recipient, amount)
}
