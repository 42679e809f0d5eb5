package commands

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store/iavl"
	"github.com/iov-one/vault/x/multisig"
)

// StatusCmd prints the signer set, the quorum and the transfer count
// of an initialized vault store.
func StatusCmd(logger log.Logger, home string, args []string) error {
	db, err := iavl.NewCommitStore(home, storeName)
	if err != nil {
		return errors.Wrap(err, "cannot open store")
	}
	if err := db.LoadLatestVersion(); err != nil {
		return errors.Wrap(err, "cannot load store")
	}

	set, err := multisig.NewRegistry().SignerSet(db)
	if err != nil {
		return errors.Wrap(err, "cannot load signer set")
	}
	count, err := multisig.NewLedger().Count(db)
	if err != nil {
		return errors.Wrap(err, "cannot count transfers")
	}

	commit := db.LatestVersion()
	fmt.Printf("version:   %d\n", commit.Version)
	fmt.Printf("quorum:    %d of %d\n", set.Quorum, len(set.Signers))
	for _, sig := range set.Signers {
		fmt.Printf("signer:    %s\n", sig)
	}
	fmt.Printf("transfers: %d\n", count)
	return nil
}
