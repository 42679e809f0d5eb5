package multisig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/x/multisig"
)

func TestRegistryInitialize(t *testing.T) {
	db := vaulttest.MemStore()
	reg := multisig.NewRegistry()

	a := vaulttest.SequentialAddress(1)
	b := vaulttest.SequentialAddress(2)

	require.NoError(t, reg.Initialize(db, []vault.Address{a, b}, 2))

	set, err := reg.SignerSet(db)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), set.Quorum)
	assert.Len(t, set.Signers, 2)

	quorum, err := reg.Quorum(db)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), quorum)

	// A second initialization must be refused.
	err = reg.Initialize(db, []vault.Address{a}, 1)
	assert.True(t, errors.ErrState.Is(err), "unexpected error: %+v", err)
}

func TestRegistryInitializeInvalid(t *testing.T) {
	db := vaulttest.MemStore()
	reg := multisig.NewRegistry()

	a := vaulttest.SequentialAddress(1)

	err := reg.Initialize(db, []vault.Address{a}, 2)
	assert.True(t, multisig.ErrQuorumExceedsSigners.Is(err), "unexpected error: %+v", err)

	// Nothing may be stored after a refused initialization.
	_, err = reg.SignerSet(db)
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %+v", err)
}

func TestRegistryMembership(t *testing.T) {
	db := vaulttest.MemStore()
	reg := multisig.NewRegistry()

	a := vaulttest.SequentialAddress(1)
	b := vaulttest.SequentialAddress(2)
	outsider := vaulttest.SequentialAddress(9)

	require.NoError(t, reg.Initialize(db, []vault.Address{a, b}, 1))

	for _, member := range []vault.Address{a, b} {
		ok, err := reg.IsAuthorized(db, member)
		require.NoError(t, err)
		assert.True(t, ok, "%s must be a member", member)
	}
	ok, err := reg.IsAuthorized(db, outsider)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = reg.IsAuthorized(db, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistryReplace(t *testing.T) {
	db := vaulttest.MemStore()
	reg := multisig.NewRegistry()

	a := vaulttest.SequentialAddress(1)
	b := vaulttest.SequentialAddress(2)
	c := vaulttest.SequentialAddress(3)
	d := vaulttest.SequentialAddress(4)

	require.NoError(t, reg.Initialize(db, []vault.Address{a, b}, 2))
	require.NoError(t, reg.Replace(db, []vault.Address{c, d}, 1))

	set, err := reg.SignerSet(db)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), set.Quorum)
	assert.Equal(t, []vault.Address{c, d}, set.Signers)

	// Old members lose membership, new ones gain it.
	for _, old := range []vault.Address{a, b} {
		ok, err := reg.IsAuthorized(db, old)
		require.NoError(t, err)
		assert.False(t, ok, "%s must not be a member anymore", old)
	}
	for _, member := range []vault.Address{c, d} {
		ok, err := reg.IsAuthorized(db, member)
		require.NoError(t, err)
		assert.True(t, ok, "%s must be a member", member)
	}
}

func TestRegistryReplaceInvalidKeepsOld(t *testing.T) {
	db := vaulttest.MemStore()
	reg := multisig.NewRegistry()

	a := vaulttest.SequentialAddress(1)
	b := vaulttest.SequentialAddress(2)

	require.NoError(t, reg.Initialize(db, []vault.Address{a, b}, 2))

	err := reg.Replace(db, nil, 1)
	assert.True(t, multisig.ErrEmptySignerSet.Is(err), "unexpected error: %+v", err)

	// Replace validates before touching the store, so the old set is
	// fully intact even without a cache-wrap.
	set, err := reg.SignerSet(db)
	require.NoError(t, err)
	assert.Equal(t, []vault.Address{a, b}, set.Signers)
	assert.Equal(t, uint32(2), set.Quorum)
}
