// Package iavl adapts a merkleized iavl tree to the vault store
// interfaces, providing the durable, versioned backend used by
// long-running deployments.
package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
)

// treeCacheSize is the number of inner nodes the tree keeps in memory.
const treeCacheSize = 10000

// CommitStore manages an iavl committed state.
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ vault.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with leveldb disk backing. All
// data is stored inside the given directory, under the given database
// name.
func NewCommitStore(dir, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open backing database")
	}
	return &CommitStore{
		tree: iavl.NewMutableTree(db, treeCacheSize),
	}, nil
}

// Get returns nil iff key doesn't exist.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, value := s.tree.Get(key)
	return value, nil
}

// Has checks if a key exists.
func (s *CommitStore) Has(key []byte) (bool, error) {
	return s.tree.Has(key), nil
}

// Set writes to the working tree. The change is staged until Commit.
func (s *CommitStore) Set(key, value []byte) error {
	s.tree.Set(key, value)
	return nil
}

// Delete removes from the working tree. The change is staged until
// Commit.
func (s *CommitStore) Delete(key []byte) error {
	s.tree.Remove(key)
	return nil
}

// CacheWrap gives us a savepoint to perform actions on top of the
// working tree.
func (s *CommitStore) CacheWrap() vault.KVCacheWrap {
	return store.NewCacheWrap(s)
}

// Commit saves the next version to disk, and returns info.
func (s *CommitStore) Commit() (vault.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return vault.CommitID{}, errors.Wrap(err, "cannot save version")
	}
	return vault.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version. If there was a
// crash during the last commit, it is guaranteed to return a stable
// state, even if older.
func (s *CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return errors.Wrap(err, "cannot load latest version")
}

// LatestVersion returns info on the latest version saved to disk.
func (s *CommitStore) LatestVersion() vault.CommitID {
	return vault.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}
}
