/*
Package store provides kvstore implementations backing a vault
instance: an in-memory store for tests and light usage, and a
cache-wrap layer that buffers writes until they are either written to
the parent store or discarded.

The cache-wrap is the rollback mechanism of the vault. Every mutating
engine operation runs against a fresh cache-wrap and only a fully
successful operation is written through.
*/
package store

import (
	"bytes"

	"github.com/google/btree"

	vault "github.com/iov-one/vault"
)

// degree is the btree degree used for all internal trees.
const degree = 2

// MemStore returns a simple in-memory implementation useful for tests.
// There is no persistence here.
func MemStore() vault.CacheableKVStore {
	return &memStore{
		bt: btree.New(degree),
	}
}

type memStore struct {
	bt *btree.BTree
}

var _ vault.CacheableKVStore = (*memStore)(nil)

func (m *memStore) Get(key []byte) ([]byte, error) {
	res := m.bt.Get(bkey{key})
	if res == nil {
		return nil, nil
	}
	return res.(setItem).value, nil
}

func (m *memStore) Has(key []byte) (bool, error) {
	return m.bt.Has(bkey{key}), nil
}

func (m *memStore) Set(key, value []byte) error {
	m.bt.ReplaceOrInsert(newSetItem(key, value))
	return nil
}

func (m *memStore) Delete(key []byte) error {
	m.bt.Delete(bkey{key})
	return nil
}

func (m *memStore) CacheWrap() vault.KVCacheWrap {
	return NewCacheWrap(m)
}

// CacheWrap places a btree write buffer over a KVStore. Reads consult
// the buffer first and fall through to the parent. Writes never touch
// the parent until Write is called.
type CacheWrap struct {
	bt     *btree.BTree
	parent vault.KVStore
}

var _ vault.KVCacheWrap = (*CacheWrap)(nil)

// NewCacheWrap initializes a btree to buffer writes on top of the
// given store.
func NewCacheWrap(parent vault.KVStore) *CacheWrap {
	return &CacheWrap{
		bt:     btree.New(degree),
		parent: parent,
	}
}

// CacheWrap layers another buffer on top of this one. Don't change
// horses in mid-stream.
func (c *CacheWrap) CacheWrap() vault.KVCacheWrap {
	return NewCacheWrap(c)
}

// Get reads from the buffer if the key was touched, else the parent.
func (c *CacheWrap) Get(key []byte) ([]byte, error) {
	if res := c.bt.Get(bkey{key}); res != nil {
		switch t := res.(type) {
		case setItem:
			return t.value, nil
		case deletedItem:
			return nil, nil
		}
	}
	return c.parent.Get(key)
}

// Has reads from the buffer if the key was touched, else the parent.
func (c *CacheWrap) Has(key []byte) (bool, error) {
	if res := c.bt.Get(bkey{key}); res != nil {
		switch res.(type) {
		case setItem:
			return true, nil
		case deletedItem:
			return false, nil
		}
	}
	return c.parent.Has(key)
}

// Set buffers the write.
func (c *CacheWrap) Set(key, value []byte) error {
	c.bt.ReplaceOrInsert(newSetItem(key, value))
	return nil
}

// Delete buffers the removal.
func (c *CacheWrap) Delete(key []byte) error {
	c.bt.ReplaceOrInsert(newDeletedItem(key))
	return nil
}

// Write applies all buffered operations to the parent store and then
// invalidates this wrap.
func (c *CacheWrap) Write() error {
	var err error
	c.bt.Ascend(func(item btree.Item) bool {
		switch t := item.(type) {
		case setItem:
			err = c.parent.Set(t.key, t.value)
		case deletedItem:
			err = c.parent.Delete(t.key)
		}
		return err == nil
	})
	c.Discard()
	return err
}

// Discard invalidates this wrap and releases all buffered data.
func (c *CacheWrap) Discard() {
	for c.bt.DeleteMin() != nil {
	}
}

// we enforce all data in our btree implements keyer so we can compare
// nicely
type keyer interface {
	Key() []byte
}

// bkey implements keyer and btree.Item and may be used for queries or
// embedded in data to store.
type bkey struct {
	key []byte
}

var _ keyer = bkey{}
var _ btree.Item = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true iff second argument is greater than first.
//
// panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	cmp := item.(keyer).Key()
	return bytes.Compare(k.key, cmp) < 0
}

type deletedItem struct {
	bkey
}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{key}}
}

type setItem struct {
	bkey
	value []byte
}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey{key}, value}
}
