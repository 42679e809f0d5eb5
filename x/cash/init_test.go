package cash_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/x/cash"
)

func TestGenesisWallets(t *testing.T) {
	db := vaulttest.MemStore()
	addr := vaulttest.SequentialAddress(1)

	opts := vault.Options{
		"cash": json.RawMessage(`[
			{"address": "hex:` + addr.String() + `", "balance": 123456}
		]`),
	}
	var ini cash.Initializer
	require.NoError(t, ini.FromGenesis(opts, db))

	balance, err := cash.NewController().Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(123456), balance)
}

func TestGenesisWalletsMissingKey(t *testing.T) {
	db := vaulttest.MemStore()
	var ini cash.Initializer
	assert.NoError(t, ini.FromGenesis(vault.Options{}, db))
}

func TestGenesisWalletsBadAddress(t *testing.T) {
	db := vaulttest.MemStore()
	opts := vault.Options{
		"cash": json.RawMessage(`[{"address": "hex:zz", "balance": 1}]`),
	}
	var ini cash.Initializer
	assert.Error(t, (&ini).FromGenesis(opts, db))
}
