package wallet

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/openmsig/msig-client/pkg/events"
	"github.com/openmsig/msig-client/pkg/types"
)

// State is the sync engine's lifecycle state.
type State int

const (
	// StateUninitialized means no chain identity has been resolved yet.
	StateUninitialized State = iota
	// StateDisconnected means the wallet is not connected or the
	// network is unsupported.
	StateDisconnected
	// StateLoading means a count fetch is in flight and the local list
	// has not been reconciled against it.
	StateLoading
	// StateReady means the local list reflects the last known
	// authoritative count plus any optimistic entries.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Snapshot is the read-only view handed to consumers.
type Snapshot struct {
	Loading      bool                `json:"loading"`
	State        string              `json:"state"`
	Transactions []types.Transaction `json:"transactions"`
}

// Engine owns the local transaction list for the current sync session
// and reconciles it against the authoritative on-chain count. All
// transitions are serialized; the last write by id wins.
type Engine struct {
	fetcher *Fetcher

	mu      sync.Mutex
	state   State
	conn    types.ConnectionState
	key     types.SessionKey
	txs     []types.Transaction
	loading bool
	lastErr error
}

func NewEngine(fetcher *Fetcher) *Engine {
	return &Engine{fetcher: fetcher}
}

// Reconfigure applies a new connection state. A change of session key
// (wallet address or chain id) discards all local transactions and
// forces a fresh count read; previous state never leaks across
// sessions.
func (e *Engine) Reconfigure(ctx context.Context, conn types.ConnectionState) {
	e.mu.Lock()
	key := conn.SessionKey()
	sameSession := e.state != StateUninitialized && key == e.key && conn.IsConnected == e.conn.IsConnected
	e.conn = conn
	e.key = key
	if sameSession {
		e.mu.Unlock()
		return
	}

	e.txs = nil
	e.lastErr = nil
	e.fetcher.Invalidate(key)
	if !conn.IsConnected {
		e.state = StateDisconnected
		e.loading = false
		e.mu.Unlock()
		return
	}
	e.state = StateLoading
	e.loading = true
	e.mu.Unlock()

	log.Info().Str("sessionKey", key.String()).Msg("[SyncEngine] [Reconfigure] session changed, revalidating")
	// The count read outlives the caller; a request-scoped context being
	// cancelled must not kill the session's materialization. Stale
	// results are handled by the session-key guard instead.
	go e.load(context.WithoutCancel(ctx), key)
}

// Revalidate forces a fresh authoritative count read for the current
// session. Triggered by observed Submission events.
func (e *Engine) Revalidate(ctx context.Context) {
	e.mu.Lock()
	if e.state == StateUninitialized || e.state == StateDisconnected {
		e.mu.Unlock()
		return
	}
	key := e.key
	e.loading = true
	e.mu.Unlock()

	go e.revalidate(context.WithoutCancel(ctx), key)
}

// load materializes the list through the fetcher's cached-read path;
// Reconfigure invalidates the key first, so the read is fresh while
// concurrent initial loads still coalesce on the cache.
func (e *Engine) load(ctx context.Context, key types.SessionKey) {
	count, err := e.fetcher.Count(ctx, key, e.connected())
	e.applyCount(key, count, err)
}

func (e *Engine) revalidate(ctx context.Context, key types.SessionKey) {
	count, err := e.fetcher.Revalidate(ctx, key, e.connected())
	e.applyCount(key, count, err)
}

func (e *Engine) connected() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.conn.IsConnected
}

// applyCount merges a resolved count into the local list. Responses
// whose originating key no longer matches the current session are
// discarded; their state must not bleed into the new session.
func (e *Engine) applyCount(key types.SessionKey, count uint64, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if key != e.key {
		log.Debug().Err(ErrStaleResponse).
			Str("responseKey", key.String()).
			Str("sessionKey", e.key.String()).
			Msg("[SyncEngine] [applyCount] discarding stale response")
		return
	}
	e.loading = false
	if err != nil {
		var precondition *PreconditionError
		if errors.As(err, &precondition) {
			e.state = StateDisconnected
			return
		}
		// Read failures stop the loading indicator; a retry happens
		// only on the next explicit revalidation trigger.
		e.lastErr = err
		return
	}
	e.lastErr = nil

	if len(e.txs) == 0 {
		txs := make([]types.Transaction, 0, count)
		for id := uint64(0); id < count; id++ {
			txs = append(txs, types.Transaction{ID: id, WalletAddress: key.WalletAddress})
		}
		e.txs = txs
	} else {
		// A count resolving against a non-empty list signals an
		// externally observed change. Exactly one placeholder is
		// prepended per revalidation regardless of the actual delta;
		// a corrected design would diff count against the local
		// length and append that many.
		tx := types.Transaction{ID: uint64(len(e.txs)), WalletAddress: key.WalletAddress}
		e.txs = append([]types.Transaction{tx}, e.txs...)
	}
	e.state = StateReady
}

// OptimisticInsert prepends a placeholder for a transaction this
// session just submitted, with the id the chain will assign next, so
// the new entry is visible before the network confirms it.
func (e *Engine) OptimisticInsert() (types.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateReady {
		return types.Transaction{}, &PreconditionError{Reason: "sync session is not ready"}
	}
	tx := types.Transaction{ID: uint64(len(e.txs)), WalletAddress: e.key.WalletAddress}
	e.txs = append([]types.Transaction{tx}, e.txs...)
	return tx, nil
}

// UpdateTransaction replaces the transaction whose id matches. This is
// the sole path by which confirmations, payload and status attach to a
// placeholder. A missing id is a no-op; the return reports whether a
// replacement happened.
func (e *Engine) UpdateTransaction(tx types.Transaction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.txs {
		if e.txs[i].ID == tx.ID {
			e.txs[i] = tx
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current view.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	txs := make([]types.Transaction, len(e.txs))
	copy(txs, e.txs)
	return Snapshot{
		Loading:      e.loading,
		State:        e.state.String(),
		Transactions: txs,
	}
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Len is the current local list length, optimistic entries included.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.txs)
}

// LastError exposes the most recent read failure, if any.
func (e *Engine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Connection returns the connection state the engine was last
// configured with.
func (e *Engine) Connection() types.ConnectionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.conn
}

// SessionKey returns the current session key.
func (e *Engine) SessionKey() types.SessionKey {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.key
}

// Consume drains event bus envelopes for the session the channel was
// subscribed under. Submission events trigger a forced revalidation;
// they never touch the local list directly.
func (e *Engine) Consume(ctx context.Context, envelopes <-chan *events.EventEnvelope) {
	for {
		select {
		case <-ctx.Done():
			return
		case envelope, ok := <-envelopes:
			if !ok {
				return
			}
			if envelope.SessionID != e.SessionKey().String() {
				continue
			}
			switch envelope.EventType {
			case events.EVENT_WALLET_SUBMISSION:
				log.Debug().Str("sessionId", envelope.SessionID).
					Msg("[SyncEngine] [Consume] Submission event, revalidating count")
				e.Revalidate(ctx)
			}
		}
	}
}
