package cash_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/x/cash"
	"github.com/iov-one/vault/x/multisig"
)

func TestBackendSettlesThroughWallets(t *testing.T) {
	db := vaulttest.MemStore()
	auth := &vaulttest.CtxAuth{Key: "auth"}
	pool := vaulttest.SequentialAddress(100)
	backend := cash.NewBackend(pool)

	signers := []vault.Address{
		vaulttest.SequentialAddress(1),
		vaulttest.SequentialAddress(2),
		vaulttest.SequentialAddress(3),
	}
	engine, err := multisig.NewEngine(db, auth, backend, signers, 2)
	require.NoError(t, err)

	require.NoError(t, backend.Controller().Deposit(db, pool, 1000))

	ctx := func(a vault.Address) vault.Context {
		return auth.SetSigners(context.Background(), a)
	}
	rcpt := vaulttest.SequentialAddress(9)

	id, err := engine.Propose(ctx(signers[0]), rcpt, 400)
	require.NoError(t, err)
	require.NoError(t, engine.Approve(ctx(signers[1]), id))
	require.NoError(t, engine.Execute(ctx(signers[0]), id))

	poolBalance, err := backend.Controller().Balance(db, pool)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), poolBalance)
	rcptBalance, err := backend.Controller().Balance(db, rcpt)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), rcptBalance)
}

func TestBackendInsufficientPool(t *testing.T) {
	db := vaulttest.MemStore()
	auth := &vaulttest.CtxAuth{Key: "auth"}
	pool := vaulttest.SequentialAddress(100)
	backend := cash.NewBackend(pool)

	signer := vaulttest.SequentialAddress(1)
	engine, err := multisig.NewEngine(db, auth, backend, []vault.Address{signer}, 1)
	require.NoError(t, err)
	require.NoError(t, backend.Controller().Deposit(db, pool, 100))

	ctx := auth.SetSigners(context.Background(), signer)
	rcpt := vaulttest.SequentialAddress(9)

	id, err := engine.Propose(ctx, rcpt, 400)
	require.NoError(t, err)

	err = engine.Execute(ctx, id)
	assert.True(t, multisig.ErrInsufficientFunds.Is(err), "unexpected error: %+v", err)

	// The transfer stays pending and executes once the pool is funded.
	require.NoError(t, backend.Controller().Deposit(db, pool, 300))
	require.NoError(t, engine.Execute(ctx, id))

	rcptBalance, err := backend.Controller().Balance(db, rcpt)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), rcptBalance)
}
