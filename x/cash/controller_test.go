package cash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/x/cash"
)

func TestControllerBalance(t *testing.T) {
	db := vaulttest.MemStore()
	ctrl := cash.NewController()

	addr := vaulttest.SequentialAddress(1)

	// No wallet means zero balance, not an error.
	balance, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)

	require.NoError(t, ctrl.Deposit(db, addr, 100))
	require.NoError(t, ctrl.Deposit(db, addr, 50))

	balance, err = ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(150), balance)
}

func TestControllerBalanceInvalidAddress(t *testing.T) {
	db := vaulttest.MemStore()
	ctrl := cash.NewController()

	_, err := ctrl.Balance(db, []byte{1, 2, 3})
	assert.Error(t, err)
}

func TestControllerDepositOverflow(t *testing.T) {
	db := vaulttest.MemStore()
	ctrl := cash.NewController()

	addr := vaulttest.SequentialAddress(1)
	require.NoError(t, ctrl.Deposit(db, addr, ^uint64(0)))

	err := ctrl.Deposit(db, addr, 1)
	assert.True(t, errors.ErrOverflow.Is(err), "unexpected error: %+v", err)

	balance, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), balance, "refused deposit must not change the balance")
}

func TestControllerMove(t *testing.T) {
	db := vaulttest.MemStore()
	ctrl := cash.NewController()

	src := vaulttest.SequentialAddress(1)
	dest := vaulttest.SequentialAddress(2)
	require.NoError(t, ctrl.Deposit(db, src, 100))

	ok, err := ctrl.Move(db, src, dest, 60)
	require.NoError(t, err)
	assert.True(t, ok)

	srcBalance, err := ctrl.Balance(db, src)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), srcBalance)
	destBalance, err := ctrl.Balance(db, dest)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), destBalance)

	// Insufficient funds are a refusal, not a fault.
	ok, err = ctrl.Move(db, src, dest, 41)
	require.NoError(t, err)
	assert.False(t, ok)

	srcBalance, err = ctrl.Balance(db, src)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), srcBalance)

	// Draining a wallet to zero is fine.
	ok, err = ctrl.Move(db, src, dest, 40)
	require.NoError(t, err)
	assert.True(t, ok)
	srcBalance, err = ctrl.Balance(db, src)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), srcBalance)
}
