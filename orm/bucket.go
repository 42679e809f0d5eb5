/*
Package orm provides a thin, type-safe layer on top of the raw kvstore:
prefixed buckets persisting validated models through a go-amino binary
codec, and monotonic sequences for dense identifier allocation.
*/
package orm

import (
	"github.com/tendermint/go-amino"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Model is implemented by any entity that can be stored in a Bucket.
type Model interface {
	Validate() error
}

// Bucket is a generic holder that stores models of one kind under a
// shared key prefix. The zero value is not usable, always construct
// with NewBucket.
type Bucket struct {
	prefix []byte
	cdc    *amino.Codec
}

// NewBucket creates a bucket to store models under a dedicated
// namespace. Bucket name must not contain the separator rune.
func NewBucket(name string) Bucket {
	for _, c := range name {
		if c == ':' {
			panic("bucket name must not contain the ':' separator: " + name)
		}
	}
	return Bucket{
		prefix: []byte(name + ":"),
		cdc:    amino.NewCodec(),
	}
}

// DBKey returns the full key including the bucket namespace prefix.
func (b Bucket) DBKey(key []byte) []byte {
	return append(append([]byte(nil), b.prefix...), key...)
}

// One loads a single model stored under the given key into dest. It
// returns ErrNotFound if no entity is stored under that key.
func (b Bucket) One(db vault.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := b.cdc.UnmarshalBinaryBare(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrType, "cannot deserialize %T: %s", dest, err)
	}
	return nil
}

// Has returns true if an entity is stored under the given key.
func (b Bucket) Has(db vault.ReadOnlyKVStore, key []byte) (bool, error) {
	has, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return has, nil
}

// Save validates the model and persists it under the given key,
// overwriting any previous value.
func (b Bucket) Save(db vault.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := b.cdc.MarshalBinaryBare(m)
	if err != nil {
		return errors.Wrapf(errors.ErrType, "cannot serialize %T: %s", m, err)
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Delete removes an entity with the given key. It returns ErrNotFound
// if the entity does not exist.
func (b Bucket) Delete(db vault.KVStore, key []byte) error {
	dbkey := b.DBKey(key)
	has, err := db.Has(dbkey)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if !has {
		return errors.Wrapf(errors.ErrNotFound, "key %X", key)
	}
	if err := db.Delete(dbkey); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
