package multisig

import (
	"sync"
	"sync/atomic"

	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"

	vault "github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x"
)

// Engine composes the Registry, the Ledger and a SettlementBackend
// into the public vault operation surface.
//
// Every mutating operation is one indivisible unit: it runs under the
// instance lock, against a cache-wrap of the backing store, and the
// wrap is only written through when the whole operation succeeded.
// Any declared failure leaves the store exactly as it was.
type Engine struct {
	mu sync.Mutex
	// settling is raised for the duration of the settlement backend
	// call. A mutating call that observes it was issued from within
	// the settlement itself. Instead of deadlocking on mu it fails
	// fast, which closes the window for re-entrant ledger mutation
	// while an execution is in flight.
	settling int32

	db       vault.CacheableKVStore
	auth     x.Authenticator
	backend  SettlementBackend
	registry *Registry
	ledger   *Ledger

	logger log.Logger
	events EventSink
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithLogger attaches a logger to the engine. All completed state
// transitions are reported on it.
func WithLogger(logger log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithEventSink attaches an observability sink to the engine.
func WithEventSink(sink EventSink) Option {
	return func(e *Engine) {
		e.events = sink
	}
}

// NewEngine initializes a fresh vault instance: the signer set and
// quorum are validated and installed in the given store. It fails with
// ErrState if the store already holds an initialized vault, use
// LoadEngine for that case.
func NewEngine(db vault.CacheableKVStore, auth x.Authenticator, backend SettlementBackend, signers []vault.Address, quorum uint32, opts ...Option) (*Engine, error) {
	e := newEngine(db, auth, backend, opts...)
	cache := db.CacheWrap()
	if err := e.registry.Initialize(cache, signers, quorum); err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	e.logger.Info("vault initialized", "signers", len(signers), "quorum", quorum)
	return e, nil
}

// LoadEngine attaches to a vault instance previously initialized in
// the given store. It fails with ErrNotFound on a pristine store.
func LoadEngine(db vault.CacheableKVStore, auth x.Authenticator, backend SettlementBackend, opts ...Option) (*Engine, error) {
	e := newEngine(db, auth, backend, opts...)
	if _, err := e.registry.SignerSet(db); err != nil {
		return nil, err
	}
	return e, nil
}

func newEngine(db vault.CacheableKVStore, auth x.Authenticator, backend SettlementBackend, opts ...Option) *Engine {
	e := &Engine{
		db:       db,
		auth:     auth,
		backend:  backend,
		registry: NewRegistry(),
		ledger:   NewLedger(),
		logger:   vault.DefaultLogger,
		events:   NopSink(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ReplaceSigners atomically swaps the entire signer set and quorum.
//
// Any single current signer can perform this, there is no quorum level
// consensus on registry rewrites. This mirrors the original contract
// behavior and is a known single point of capture. The operation is
// kept separate from the transfer pipeline so a future revision can
// route it through propose/approve/execute instead.
func (e *Engine) ReplaceSigners(ctx vault.Context, newSigners []vault.Address, newQuorum uint32) error {
	if err := e.enterMutation(); err != nil {
		return err
	}
	defer e.mu.Unlock()

	cache := e.db.CacheWrap()
	caller, err := e.authorize(ctx, cache)
	if err != nil {
		cache.Discard()
		return err
	}
	if err := e.registry.Replace(cache, newSigners, newQuorum); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}

	e.events.Emit(EventSignersUpdated, []common.KVPair{
		addrTag("by", caller),
		uintTag("signers", uint64(len(newSigners))),
	})
	e.events.Emit(EventQuorumUpdated, []common.KVPair{
		uintTag("quorum", uint64(newQuorum)),
	})
	e.logger.Info("signers replaced",
		"by", caller, "signers", len(newSigners), "quorum", newQuorum)
	return nil
}

// Propose creates a new transfer. The caller counts as the first
// approval. Returns the zero based identifier of the new record.
func (e *Engine) Propose(ctx vault.Context, recipient vault.Address, amount uint64) (uint64, error) {
	if err := e.enterMutation(); err != nil {
		return 0, err
	}
	defer e.mu.Unlock()

	cache := e.db.CacheWrap()
	caller, err := e.authorize(ctx, cache)
	if err != nil {
		cache.Discard()
		return 0, err
	}
	id, err := e.ledger.Propose(cache, caller, recipient, amount)
	if err != nil {
		cache.Discard()
		return 0, err
	}
	if err := cache.Write(); err != nil {
		return 0, errors.Wrap(errors.ErrDatabase, err.Error())
	}

	e.events.Emit(EventTransferProposed, []common.KVPair{
		uintTag("id", id),
		addrTag("recipient", recipient),
		uintTag("amount", amount),
	})
	e.logger.Info("transfer proposed",
		"id", id, "by", caller, "recipient", recipient, "amount", amount)
	return id, nil
}

// Approve records the caller's approval on a pending transfer.
func (e *Engine) Approve(ctx vault.Context, id uint64) error {
	if err := e.enterMutation(); err != nil {
		return err
	}
	defer e.mu.Unlock()

	cache := e.db.CacheWrap()
	caller, err := e.authorize(ctx, cache)
	if err != nil {
		cache.Discard()
		return err
	}
	if err := e.ledger.Approve(cache, caller, id); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}

	e.events.Emit(EventTransferApproved, []common.KVPair{
		uintTag("id", id),
		addrTag("signer", caller),
	})
	e.logger.Info("transfer approved", "id", id, "by", caller)
	return nil
}

// Execute settles a transfer that reached quorum. The executed flag
// flips only after the settlement backend confirmed the value
// movement, and flips at most once. On any failure the transfer stays
// pending and can be retried by any signer once the underlying
// condition changed.
func (e *Engine) Execute(ctx vault.Context, id uint64) error {
	if err := e.enterMutation(); err != nil {
		return err
	}
	defer e.mu.Unlock()

	cache := e.db.CacheWrap()
	caller, err := e.authorize(ctx, cache)
	if err != nil {
		cache.Discard()
		return err
	}
	quorum, err := e.registry.Quorum(cache)
	if err != nil {
		cache.Discard()
		return err
	}
	t, err := e.ledger.ReadyToExecute(cache, id, quorum)
	if err != nil {
		cache.Discard()
		return err
	}

	balance, err := e.backend.AvailableBalance(cache)
	if err != nil {
		cache.Discard()
		return errors.Wrap(err, "settlement backend")
	}
	if balance < t.Amount {
		cache.Discard()
		return errors.Wrapf(ErrInsufficientFunds,
			"transfer %d: have %d, need %d", id, balance, t.Amount)
	}

	atomic.StoreInt32(&e.settling, 1)
	ok, err := e.backend.Send(cache, t.Recipient, t.Amount)
	atomic.StoreInt32(&e.settling, 0)
	if err != nil {
		cache.Discard()
		return errors.Wrapf(ErrSettlementFailed, "transfer %d: %s", id, err)
	}
	if !ok {
		cache.Discard()
		return errors.Wrapf(ErrSettlementFailed, "transfer %d", id)
	}

	if err := e.ledger.MarkExecuted(cache, id); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}

	e.events.Emit(EventTransferExecuted, []common.KVPair{
		uintTag("id", id),
	})
	e.logger.Info("transfer executed",
		"id", id, "by", caller, "recipient", t.Recipient, "amount", t.Amount)
	return nil
}

// GetTransfer returns the persisted state of one transfer. Reads are
// not gated behind signer authorization.
func (e *Engine) GetTransfer(id uint64) (*Transfer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.GetTransfer(e.db, id)
}

// HasApproved returns true if the given signer approved the given
// transfer.
func (e *Engine) HasApproved(id uint64, signer vault.Address) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.HasApproved(e.db, id, signer)
}

// TransferCount returns the number of transfers ever proposed.
func (e *Engine) TransferCount() (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Count(e.db)
}

// Signers returns the current signer list.
func (e *Engine) Signers() ([]vault.Address, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	set, err := e.registry.SignerSet(e.db)
	if err != nil {
		return nil, err
	}
	return set.Copy().Signers, nil
}

// Quorum returns the current quorum threshold.
func (e *Engine) Quorum() (uint32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Quorum(e.db)
}

// enterMutation acquires the instance lock for a mutating operation.
// When called from within a settlement backend callback it refuses
// with ErrState instead of deadlocking, no ledger mutation is possible
// while an execution is in flight.
func (e *Engine) enterMutation() error {
	if atomic.LoadInt32(&e.settling) == 1 {
		return errors.Wrap(errors.ErrState, "settlement in flight")
	}
	e.mu.Lock()
	return nil
}

// authorize resolves the caller identity and checks the signer gate
// every mutating operation passes through.
func (e *Engine) authorize(ctx vault.Context, db vault.ReadOnlyKVStore) (vault.Address, error) {
	caller := x.MainSigner(ctx, e.auth)
	if caller == nil {
		return nil, errors.Wrap(ErrNotASigner, "no authenticated caller")
	}
	switch ok, err := e.registry.IsAuthorized(db, caller); {
	case err != nil:
		return nil, err
	case !ok:
		return nil, errors.Wrapf(ErrNotASigner, "%s", caller)
	}
	return caller, nil
}
