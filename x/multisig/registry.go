package multisig

import (
	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

const (
	// registryBucketName is where the signer set model is stored.
	registryBucketName = "sigset"
	// memberPrefix namespaces the membership predicate keys. One key
	// exists per current signer, giving O(1) authorization checks.
	memberPrefix = "sigset.m:"
)

// registryKey is the singleton key the SignerSet model lives under.
var registryKey = []byte("registry")

// Registry holds the authorized signer set and the quorum threshold.
// The explicit signer list and the membership predicate keys are
// always updated together, so they never disagree in contents.
type Registry struct {
	bucket orm.Bucket
}

// NewRegistry returns a registry operating on the default namespace.
func NewRegistry() *Registry {
	return &Registry{
		bucket: orm.NewBucket(registryBucketName),
	}
}

// Initialize validates and stores the initial signer set and quorum.
// It fails if the registry was already initialized, this is a one time
// operation.
func (r *Registry) Initialize(db vault.KVStore, signers []vault.Address, quorum uint32) error {
	switch has, err := r.bucket.Has(db, registryKey); {
	case err != nil:
		return err
	case has:
		return errors.Wrap(errors.ErrState, "registry already initialized")
	}
	return r.install(db, nil, signers, quorum)
}

// Replace atomically swaps the entire signer set and the quorum for
// new ones. The new set is validated first, any failure leaves the
// prior registry completely unchanged.
func (r *Registry) Replace(db vault.KVStore, signers []vault.Address, quorum uint32) error {
	old, err := r.SignerSet(db)
	if err != nil {
		return err
	}
	return r.install(db, old, signers, quorum)
}

// install writes the new signer set, clearing the membership predicate
// of the old one first. Callers run this inside a cache-wrap, so a
// failure at any point is rolled back as a whole.
func (r *Registry) install(db vault.KVStore, old *SignerSet, signers []vault.Address, quorum uint32) error {
	set := SignerSet{Signers: signers, Quorum: quorum}
	if err := set.Validate(); err != nil {
		return err
	}
	if old != nil {
		for _, sig := range old.Signers {
			if err := db.Delete(memberKey(sig)); err != nil {
				return errors.Wrap(errors.ErrDatabase, err.Error())
			}
		}
	}
	for _, sig := range set.Signers {
		if err := db.Set(memberKey(sig), []byte{1}); err != nil {
			return errors.Wrap(errors.ErrDatabase, err.Error())
		}
	}
	return r.bucket.Save(db, registryKey, set.Copy())
}

// IsAuthorized returns true if the given identity is a member of the
// current signer set. This is an O(1) membership predicate lookup.
func (r *Registry) IsAuthorized(db vault.ReadOnlyKVStore, addr vault.Address) (bool, error) {
	if addr.IsEmpty() {
		return false, nil
	}
	has, err := db.Has(memberKey(addr))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return has, nil
}

// SignerSet loads the current registry state.
func (r *Registry) SignerSet(db vault.ReadOnlyKVStore) (*SignerSet, error) {
	var set SignerSet
	if err := r.bucket.One(db, registryKey, &set); err != nil {
		return nil, errors.Wrap(err, "registry")
	}
	return &set, nil
}

// Quorum returns the current quorum threshold.
func (r *Registry) Quorum(db vault.ReadOnlyKVStore) (uint32, error) {
	set, err := r.SignerSet(db)
	if err != nil {
		return 0, err
	}
	return set.Quorum, nil
}

func memberKey(addr vault.Address) []byte {
	return append([]byte(memberPrefix), addr...)
}
