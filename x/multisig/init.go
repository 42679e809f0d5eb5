package multisig

import (
	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Initializer fulfils the vault.Initializer interface to install the
// initial signer set from genesis file options.
type Initializer struct{}

var _ vault.Initializer = (*Initializer)(nil)

// FromGenesis initializes the signer registry from the "multisig"
// options key. It expects the following format:
//
//	"multisig": {
//	  "signers": ["hex:...", "bech32:..."],
//	  "quorum": 2
//	}
func (*Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	var conf struct {
		Signers []string `json:"signers"`
		Quorum  uint32   `json:"quorum"`
	}
	if err := opts.ReadOptions("multisig", &conf); err != nil {
		return errors.Wrap(err, "cannot load multisig options")
	}
	if len(conf.Signers) == 0 {
		return nil
	}
	signers := make([]vault.Address, 0, len(conf.Signers))
	for i, raw := range conf.Signers {
		addr, err := vault.ParseAddress(raw)
		if err != nil {
			return errors.Wrapf(err, "signer #%d", i)
		}
		signers = append(signers, addr)
	}
	return NewRegistry().Initialize(db, signers, conf.Quorum)
}
