package multisig

import (
	"encoding/binary"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

const (
	// transferBucketName is where transfer records are stored, keyed by
	// their 8 byte big endian identifier.
	transferBucketName = "transfers"
	// transferSeqName is the auto-increment counter transfer IDs are
	// allocated from. It is never decremented.
	transferSeqName = "id"
	// approvalPrefix namespaces the sparse (transferID, signer)
	// approval relation.
	approvalPrefix = "approvals:"
)

// Ledger creates, tracks and finalizes per transfer approval state.
// It exclusively owns all transfer records, no other component ever
// mutates one directly.
type Ledger struct {
	bucket orm.Bucket
	seq    orm.Sequence
}

// NewLedger returns a ledger operating on the default namespace.
func NewLedger() *Ledger {
	return &Ledger{
		bucket: orm.NewBucket(transferBucketName),
		seq:    orm.NewSequence(transferBucketName, transferSeqName),
	}
}

// Propose creates a new transfer record. The proposer implicitly
// approves, so a fresh record always carries one approval. Transfer
// IDs are dense, sequential and zero based.
func (l *Ledger) Propose(db vault.KVStore, proposer, recipient vault.Address, amount uint64) (uint64, error) {
	if isNullIdentity(recipient) {
		return 0, errors.Wrap(ErrInvalidRecipient, "null identity")
	}
	if err := recipient.Validate(); err != nil {
		return 0, errors.Wrapf(ErrInvalidRecipient, "%s", recipient)
	}
	if amount == 0 {
		return 0, errors.Wrap(ErrInvalidAmount, "zero amount")
	}

	n, err := l.seq.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "cannot acquire transfer id")
	}
	id := uint64(n - 1)

	t := &Transfer{
		Recipient: recipient.Clone(),
		Amount:    amount,
		Approvals: 1,
	}
	if err := l.bucket.Save(db, transferKey(id), t); err != nil {
		return 0, errors.Wrap(err, "cannot store transfer")
	}
	if err := l.markApproved(db, id, proposer); err != nil {
		return 0, err
	}
	return id, nil
}

// Approve records one more distinct signer approval on a pending
// transfer. Approvals of distinct signers commute, there is no
// ordering constraint between them.
func (l *Ledger) Approve(db vault.KVStore, signer vault.Address, id uint64) error {
	t, err := l.GetTransfer(db, id)
	if err != nil {
		return err
	}
	if t.Executed {
		return errors.Wrapf(ErrAlreadyExecuted, "transfer %d", id)
	}
	switch approved, err := l.HasApproved(db, id, signer); {
	case err != nil:
		return err
	case approved:
		return errors.Wrapf(ErrAlreadyApproved, "%s", signer)
	}

	t.Approvals++
	if err := l.bucket.Save(db, transferKey(id), t); err != nil {
		return errors.Wrap(err, "cannot store transfer")
	}
	return l.markApproved(db, id, signer)
}

// ReadyToExecute loads a transfer and verifies it may execute under
// the given quorum. The quorum check deliberately precedes the
// executed check, preserving the observable precedence of the
// original contract behavior.
func (l *Ledger) ReadyToExecute(db vault.ReadOnlyKVStore, id uint64, quorum uint32) (*Transfer, error) {
	t, err := l.GetTransfer(db, id)
	if err != nil {
		return nil, err
	}
	if t.Approvals < quorum {
		return nil, errors.Wrapf(ErrQuorumNotReached,
			"transfer %d: %d of %d", id, t.Approvals, quorum)
	}
	if t.Executed {
		return nil, errors.Wrapf(ErrAlreadyExecuted, "transfer %d", id)
	}
	return t, nil
}

// MarkExecuted flips the executed flag. This is the terminal mutation
// of a transfer record and must only be called after the settlement
// backend confirmed the value movement.
func (l *Ledger) MarkExecuted(db vault.KVStore, id uint64) error {
	t, err := l.GetTransfer(db, id)
	if err != nil {
		return err
	}
	if t.Executed {
		return errors.Wrapf(ErrAlreadyExecuted, "transfer %d", id)
	}
	t.Executed = true
	return l.bucket.Save(db, transferKey(id), t)
}

// GetTransfer loads a transfer record by its identifier. An identifier
// that was never allocated fails with ErrNotFound.
func (l *Ledger) GetTransfer(db vault.ReadOnlyKVStore, id uint64) (*Transfer, error) {
	var t Transfer
	if err := l.bucket.One(db, transferKey(id), &t); err != nil {
		return nil, errors.Wrapf(err, "transfer %d", id)
	}
	return &t, nil
}

// HasApproved returns true if the given signer already approved the
// given transfer.
func (l *Ledger) HasApproved(db vault.ReadOnlyKVStore, id uint64, signer vault.Address) (bool, error) {
	has, err := db.Has(approvalKey(id, signer))
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return has, nil
}

// Count returns the number of transfers ever proposed. Because IDs are
// dense and zero based, this is also the next ID to be allocated.
func (l *Ledger) Count(db vault.ReadOnlyKVStore) (uint64, error) {
	latest, _, err := l.seq.Latest(db)
	if err != nil {
		return 0, err
	}
	return uint64(latest), nil
}

func (l *Ledger) markApproved(db vault.KVStore, id uint64, signer vault.Address) error {
	if err := db.Set(approvalKey(id, signer), []byte{1}); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func transferKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func approvalKey(id uint64, signer vault.Address) []byte {
	key := append([]byte(approvalPrefix), transferKey(id)...)
	return append(key, signer...)
}
