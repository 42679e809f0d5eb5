package vaulttest

import (
	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/x/multisig"
)

// Payment records one successful Send call on a Backend.
type Payment struct {
	Recipient vault.Address
	Amount    uint64
}

// Backend is a scriptable multisig.SettlementBackend. It keeps the
// pool balance in memory and can be told to refuse or fail the next
// value movements.
type Backend struct {
	// Balance is the current pool balance. Decremented by every
	// successful Send.
	Balance uint64
	// Refuse makes Send report (false, nil), a declared settlement
	// refusal, without moving value.
	Refuse bool
	// Err is returned from both AvailableBalance and Send when set. It
	// models an infrastructure fault.
	Err error
	// Sent collects all successful payments in order.
	Sent []Payment
}

var _ multisig.SettlementBackend = (*Backend)(nil)

func (b *Backend) AvailableBalance(vault.KVStore) (uint64, error) {
	if b.Err != nil {
		return 0, b.Err
	}
	return b.Balance, nil
}

func (b *Backend) Send(db vault.KVStore, recipient vault.Address, amount uint64) (bool, error) {
	if b.Err != nil {
		return false, b.Err
	}
	if b.Refuse {
		return false, nil
	}
	if b.Balance < amount {
		return false, nil
	}
	b.Balance -= amount
	b.Sent = append(b.Sent, Payment{Recipient: recipient.Clone(), Amount: amount})
	return true, nil
}
