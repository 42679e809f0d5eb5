// Package commands implements the vaultd command handlers.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"

	"github.com/tendermint/tendermint/libs/log"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store/iavl"
	"github.com/iov-one/vault/x/cash"
	"github.com/iov-one/vault/x/multisig"
	"github.com/iov-one/vault/x/token"
)

// storeName is the database name under the home directory.
const storeName = "vault"

// initializers in the order their genesis options are applied. The
// signer set must exist before any settlement state references it.
var initializers = []vault.Initializer{
	&multisig.Initializer{},
	&cash.Initializer{},
	&token.Initializer{},
}

// InitCmd initializes the vault store from a genesis options file.
func InitCmd(logger log.Logger, home string, args []string) error {
	flags := flag.NewFlagSet("init", flag.ExitOnError)
	genesis := flags.String("genesis", "genesis.json", "genesis options file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	raw, err := ioutil.ReadFile(*genesis)
	if err != nil {
		return errors.Wrap(err, "cannot read genesis file")
	}
	var opts vault.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return errors.Wrap(err, "cannot parse genesis file")
	}

	db, err := iavl.NewCommitStore(home, storeName)
	if err != nil {
		return errors.Wrap(err, "cannot open store")
	}
	if err := db.LoadLatestVersion(); err != nil {
		return errors.Wrap(err, "cannot load store")
	}
	if db.LatestVersion().Version != 0 {
		return errors.Wrap(errors.ErrState, "store already initialized")
	}

	cache := db.CacheWrap()
	for _, ini := range initializers {
		if err := ini.FromGenesis(opts, cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "genesis initialization")
		}
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	commit, err := db.Commit()
	if err != nil {
		return errors.Wrap(err, "cannot commit")
	}
	logger.Info("store initialized",
		"home", home, "version", commit.Version,
		"hash", fmt.Sprintf("%X", commit.Hash))
	return nil
}
