package multisig

import (
	vault "github.com/iov-one/vault"
)

// SettlementBackend is the external capability that actually moves
// value out of the vault pool and reports success or failure.
//
// Implementations operate on the store handle they are given, which
// during execution is the same cache-wrap the engine mutates. That
// way a settlement that fails after a partial write is rolled back
// together with the rest of the operation.
//
// A backend must never call back into the engine. The engine invokes
// Send while holding the instance lock and with the transfer record in
// a not yet finalized state, a callback would find it mid transition.
type SettlementBackend interface {
	// AvailableBalance returns the amount the vault currently holds.
	AvailableBalance(db vault.KVStore) (uint64, error)

	// Send moves amount to the recipient. A refused or failed value
	// movement is reported with ok=false and a nil error, in the way a
	// paused token contract signals failure by returning false. The
	// error return is for infrastructure faults. The engine treats
	// both outcomes identically, execution aborts with no state
	// retained and the transfer stays retryable.
	Send(db vault.KVStore, recipient vault.Address, amount uint64) (ok bool, err error)
}
