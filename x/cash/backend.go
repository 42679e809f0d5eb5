package cash

import (
	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/x/multisig"
)

// Backend settles vault transfers in native currency. The vault pool
// is a regular wallet owned by the pool address, executing a transfer
// moves value from that wallet to the recipient wallet.
type Backend struct {
	pool vault.Address
	ctrl *Controller
}

var _ multisig.SettlementBackend = (*Backend)(nil)

// NewBackend returns a settlement backend paying out of the wallet
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

// Controller exposes the wallet controller, for funding the pool and
// inspecting balances.
func (b *Backend) Controller() *Controller {
	return b.ctrl
}

func (b *Backend) AvailableBalance(db vault.KVStore) (uint64, error) {
	return b.ctrl.Balance(db, b.pool)
}

func (b *Backend) Send(db vault.KVStore, recipient vault.Address, amount uint64) (bool, error) {
	return b.ctrl.Move(db, b.pool, recipient, amount)
}
