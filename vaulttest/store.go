package vaulttest

import (
	"io/ioutil"
	"os"
	"testing"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/store/iavl"
)

// MemStore returns a fresh in-memory store.
func MemStore() vault.CacheableKVStore {
	return store.MemStore()
}

// CommitStore returns a disk backed commit store rooted in a temporary
// directory, together with a cleanup function removing it. Call the
// cleanup in a defer.
func CommitStore(t *testing.T) (vault.CommitKVStore, func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "vault-iavl")
	if err != nil {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	db, err := iavl.NewCommitStore(dir, "vault")
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("cannot open commit store: %s", err)
	}
	return db, func() { os.RemoveAll(dir) }
}
