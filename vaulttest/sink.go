package vaulttest

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/vault/x/multisig"
)

// Event is one emitted event with its tags.
type Event struct {
	Name string
	Tags []common.KVPair
}

// RecordingSink is a multisig.EventSink that collects every emitted
// event for later inspection.
type RecordingSink struct {
	Events []Event
}

var _ multisig.EventSink = (*RecordingSink)(nil)

func (s *RecordingSink) Emit(event string, tags []common.KVPair) {
	s.Events = append(s.Events, Event{Name: event, Tags: tags})
}

// Names returns the names of all recorded events in emission order.
func (s *RecordingSink) Names() []string {
	names := make([]string, len(s.Events))
	for i, ev := range s.Events {
		names[i] = ev.Name
	}
	return names
}
