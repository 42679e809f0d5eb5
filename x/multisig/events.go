package multisig

import (
	"strconv"

	"github.com/tendermint/tendermint/libs/common"

	vault "github.com/iov-one/vault"
)

// Event names delivered to the observability sink.
const (
	EventSignersUpdated   = "signers_updated"
	EventQuorumUpdated    = "quorum_updated"
	EventTransferProposed = "transfer_proposed"
	EventTransferApproved = "transfer_approved"
	EventTransferExecuted = "transfer_executed"
)

// EventSink receives fire-and-forget notifications about completed
// state transitions. Sinks must not fail, whatever they do with an
// event has no influence on the operation that emitted it.
type EventSink interface {
	Emit(event string, tags []common.KVPair)
}

// NopSink returns a sink that drops all events.
func NopSink() EventSink {
	return nopSink{}
}

type nopSink struct{}

func (nopSink) Emit(string, []common.KVPair) {}

func uintTag(key string, value uint64) common.KVPair {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(strconv.FormatUint(value, 10)),
	}
}

func addrTag(key string, addr vault.Address) common.KVPair {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(addr.String()),
	}
}
