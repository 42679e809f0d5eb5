package multisig

import (
	"github.com/iov-one/vault/errors"
)

// Error codes. The multisig extension takes 1100-1119.
var (
	// ErrEmptySignerSet is returned when a signer set is created or
	// replaced with no members.
	ErrEmptySignerSet = errors.Register(1100, "empty signer set")

	// ErrQuorumBelowOne is returned for a zero quorum threshold.
	ErrQuorumBelowOne = errors.Register(1101, "quorum below one")

	// ErrQuorumExceedsSigners is returned when the quorum threshold is
	// greater than the number of signers.
	ErrQuorumExceedsSigners = errors.Register(1102, "quorum exceeds signer count")

	// ErrInvalidSigner is returned when a signer entry is the null
	// identity or otherwise malformed.
	ErrInvalidSigner = errors.Register(1103, "invalid signer")

	// ErrDuplicateSigner is returned when the same identity appears
	// twice in a signer set.
	ErrDuplicateSigner = errors.Register(1104, "duplicate signer")

	// ErrNotASigner is returned when the caller of a mutating operation
	// is not a member of the current signer set.
	ErrNotASigner = errors.Register(1105, "not a signer")

	// ErrInvalidRecipient is returned when a transfer names the null
	// identity as recipient.
	ErrInvalidRecipient = errors.Register(1106, "invalid recipient")

	// ErrInvalidAmount is returned for a zero transfer amount.
	ErrInvalidAmount = errors.Register(1107, "invalid amount")

	// ErrAlreadyApproved is returned when a signer approves the same
	// transfer twice.
	ErrAlreadyApproved = errors.Register(1108, "already approved")

	// ErrAlreadyExecuted is returned when an executed transfer is
	// approved or executed again.
	ErrAlreadyExecuted = errors.Register(1109, "already executed")

	// ErrQuorumNotReached is returned when a transfer is executed
	// before enough distinct signers approved it.
	ErrQuorumNotReached = errors.Register(1110, "quorum not reached")

	// ErrInsufficientFunds is returned when the settlement backend
	// holds less than the transfer amount.
	ErrInsufficientFunds = errors.Register(1111, "insufficient funds")

	// ErrSettlementFailed is returned when the settlement backend
	// reports a failed value movement, regardless of whether the
	// failure was a hard fault or a false success flag.
	ErrSettlementFailed = errors.Register(1112, "settlement failed")
)
