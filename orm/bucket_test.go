package orm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
)

type counterModel struct {
	Count int64
}

func (c *counterModel) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative counter")
	}
	return nil
}

func TestBucketSaveOne(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnt")

	var missing counterModel
	err := b.One(db, []byte("a"), &missing)
	require.True(t, errors.ErrNotFound.Is(err))

	require.NoError(t, b.Save(db, []byte("a"), &counterModel{Count: 5}))

	var loaded counterModel
	require.NoError(t, b.One(db, []byte("a"), &loaded))
	require.Equal(t, int64(5), loaded.Count)

	has, err := b.Has(db, []byte("a"))
	require.NoError(t, err)
	require.True(t, has)
}

func TestBucketRejectsInvalidModel(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnt")
	err := b.Save(db, []byte("a"), &counterModel{Count: -1})
	require.True(t, errors.ErrState.Is(err))
}

func TestBucketsAreIsolated(t *testing.T) {
	db := store.MemStore()
	first := NewBucket("one")
	second := NewBucket("two")

	require.NoError(t, first.Save(db, []byte("a"), &counterModel{Count: 1}))

	var dest counterModel
	err := second.One(db, []byte("a"), &dest)
	require.True(t, errors.ErrNotFound.Is(err))
}

func TestBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnt")

	err := b.Delete(db, []byte("a"))
	require.True(t, errors.ErrNotFound.Is(err))

	require.NoError(t, b.Save(db, []byte("a"), &counterModel{Count: 1}))
	require.NoError(t, b.Delete(db, []byte("a")))
	has, err := b.Has(db, []byte("a"))
	require.NoError(t, err)
	require.False(t, has)
}

func TestSequence(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("cnt", "id")

	latest, _, err := seq.Latest(db)
	require.NoError(t, err)
	require.Equal(t, int64(0), latest)

	n, err := seq.NextInt(db)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	raw, err := seq.NextVal(db)
	require.NoError(t, err)
	require.Equal(t, int64(2), DecodeSequence(raw))

	latest, _, err = seq.Latest(db)
	require.NoError(t, err)
	require.Equal(t, int64(2), latest)
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()
	first := NewSequence("cnt", "id")
	second := NewSequence("cnt", "other")

	_, err := first.NextInt(db)
	require.NoError(t, err)

	latest, _, err := second.Latest(db)
	require.NoError(t, err)
	require.Equal(t, int64(0), latest)
}
