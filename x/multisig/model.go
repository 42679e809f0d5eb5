package multisig

import (
	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
)

var _ orm.Model = (*SignerSet)(nil)
var _ orm.Model = (*Transfer)(nil)

// SignerSet is the registry state: the explicit ordered signer list
// and the quorum threshold. The companion membership predicate is kept
// as separate store keys and must always agree with Signers in
// contents.
type SignerSet struct {
	Signers []vault.Address
	Quorum  uint32
}

// Validate enforces the construction rules of a signer set. The checks
// are applied in a fixed order: empty set, quorum below one, quorum
// exceeding the member count and then per entry identity and
// duplicate validation.
func (s *SignerSet) Validate() error {
	if len(s.Signers) == 0 {
		return errors.Wrap(ErrEmptySignerSet, "no signers")
	}
	if s.Quorum < 1 {
		return errors.Wrap(ErrQuorumBelowOne, "quorum must be at least 1")
	}
	if int(s.Quorum) > len(s.Signers) {
		return errors.Wrapf(ErrQuorumExceedsSigners,
			"quorum %d, %d signers", s.Quorum, len(s.Signers))
	}
	seen := make(map[string]struct{}, len(s.Signers))
	for _, sig := range s.Signers {
		if isNullIdentity(sig) {
			return errors.Wrap(ErrInvalidSigner, "null identity")
		}
		if err := sig.Validate(); err != nil {
			return errors.Wrapf(ErrInvalidSigner, "%s", sig)
		}
		if _, ok := seen[string(sig)]; ok {
			return errors.Wrapf(ErrDuplicateSigner, "%s", sig)
		}
		seen[string(sig)] = struct{}{}
	}
	return nil
}

// Copy returns a deep copy sharing no memory with the original.
func (s *SignerSet) Copy() *SignerSet {
	signers := make([]vault.Address, 0, len(s.Signers))
	for _, sig := range s.Signers {
		signers = append(signers, sig.Clone())
	}
	return &SignerSet{
		Signers: signers,
		Quorum:  s.Quorum,
	}
}

// isNullIdentity reports whether the address is the null identity:
// unset, or all zero bytes.
func isNullIdentity(a vault.Address) bool {
	if a.IsEmpty() {
		return true
	}
	for _, b := range a {
		if b != 0 {
			return false
		}
	}
	return true
}

// Transfer is the persisted state of one proposed value movement,
// tracked from proposal through execution. Records are never deleted,
// they persist as an audit trail.
type Transfer struct {
	// Recipient receives the amount on execution.
	Recipient vault.Address
	// Amount is the value to move, in the backend native unit.
	Amount uint64
	// Approvals counts distinct signer approvals. It always equals the
	// cardinality of the per signer approval set kept by the ledger.
	Approvals uint32
	// Executed flips to true at most once, only after the settlement
	// backend confirmed the value movement.
	Executed bool
}

// Validate enforces the invariants every stored record holds.
func (t *Transfer) Validate() error {
	if isNullIdentity(t.Recipient) {
		return errors.Wrap(ErrInvalidRecipient, "null identity")
	}
	if err := t.Recipient.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidRecipient, "%s", t.Recipient)
	}
	if t.Amount == 0 {
		return errors.Wrap(ErrInvalidAmount, "zero amount")
	}
	if t.Approvals == 0 {
		return errors.Wrap(errors.ErrState, "no approvals")
	}
	return nil
}

// Copy returns a deep copy sharing no memory with the original.
func (t *Transfer) Copy() *Transfer {
	return &Transfer{
		Recipient: t.Recipient.Clone(),
		Amount:    t.Amount,
		Approvals: t.Approvals,
		Executed:  t.Executed,
	}
}
