package token_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/x/token"
)

func TestGenesisToken(t *testing.T) {
	db := vaulttest.MemStore()
	issuer := vaulttest.SequentialAddress(1)
	holder := vaulttest.SequentialAddress(2)

	opts := vault.Options{
		"token": json.RawMessage(`{
			"ticker": "VLT",
			"issuer": "hex:` + issuer.String() + `",
			"holdings": [
				{"address": "hex:` + holder.String() + `", "balance": 5000}
			]
		}`),
	}
	var ini token.Initializer
	require.NoError(t, ini.FromGenesis(opts, db))

	ctrl := token.NewController()
	info, err := ctrl.Info(db)
	require.NoError(t, err)
	assert.Equal(t, "VLT", info.Ticker)

	balance, err := ctrl.BalanceOf(db, holder)
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), balance)
}

func TestGenesisTokenMissingKey(t *testing.T) {
	db := vaulttest.MemStore()
	var ini token.Initializer
	assert.NoError(t, ini.FromGenesis(vault.Options{}, db))
}
