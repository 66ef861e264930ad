package wallet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/openmsig/msig-client/pkg/events"
	"github.com/openmsig/msig-client/pkg/types"
)

type stubReader struct {
	mu    sync.Mutex
	count uint64
	err   error
	calls int
}

func (r *stubReader) TransactionCount(ctx context.Context) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	return r.count, nil
}

func (r *stubReader) set(count uint64) {
	r.mu.Lock()
	r.count = count
	r.mu.Unlock()
}

func newTestEngine(reader *stubReader) *Engine {
	fetcher := NewFetcher(func(chainID uint64) (CountReader, bool) {
		if chainID == 31337 {
			return reader, true
		}
		return nil, false
	})
	return NewEngine(fetcher)
}

func testConnection(wallet string, chainID uint64) types.ConnectionState {
	return types.ConnectionState{
		ChainID:       chainID,
		Account:       common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		WalletAddress: common.HexToAddress(wallet),
		IsConnected:   true,
	}
}

func waitReady(t *testing.T, engine *Engine) {
	t.Helper()
	require.Eventually(t, func() bool {
		return engine.State() == StateReady && !engine.Snapshot().Loading
	}, time.Second, 5*time.Millisecond)
}

func TestEngineBulkMaterialization(t *testing.T) {
	reader := &stubReader{count: 3}
	engine := newTestEngine(reader)

	engine.Reconfigure(context.Background(), testConnection("0x1000000000000000000000000000000000000001", 31337))
	waitReady(t, engine)

	snapshot := engine.Snapshot()
	require.Len(t, snapshot.Transactions, 3)
	for i, tx := range snapshot.Transactions {
		require.Equal(t, uint64(i), tx.ID)
		require.Empty(t, tx.Status)
	}
}

func TestEngineEmptyWallet(t *testing.T) {
	reader := &stubReader{count: 0}
	engine := newTestEngine(reader)

	engine.Reconfigure(context.Background(), testConnection("0x1000000000000000000000000000000000000001", 31337))
	waitReady(t, engine)

	require.Empty(t, engine.Snapshot().Transactions)
}

func TestEngineSubmissionLifecycle(t *testing.T) {
	reader := &stubReader{count: 3}
	engine := newTestEngine(reader)
	ctx := context.Background()

	engine.Reconfigure(ctx, testConnection("0x1000000000000000000000000000000000000001", 31337))
	waitReady(t, engine)

	// Local submission: optimistic placeholder with the next id lands
	// at the head.
	placeholder, err := engine.OptimisticInsert()
	require.NoError(t, err)
	require.Equal(t, uint64(3), placeholder.ID)

	snapshot := engine.Snapshot()
	require.Len(t, snapshot.Transactions, 4)
	ids := make([]uint64, 0, 4)
	for _, tx := range snapshot.Transactions {
		ids = append(ids, tx.ID)
	}
	require.Equal(t, []uint64{3, 0, 1, 2}, ids)

	// External submission observed through an event: one placeholder
	// per revalidation, prepended with the current length as id.
	reader.set(4)
	engine.Revalidate(ctx)
	require.Eventually(t, func() bool {
		return engine.Len() == 5 && !engine.Snapshot().Loading
	}, time.Second, 5*time.Millisecond)

	snapshot = engine.Snapshot()
	require.Equal(t, uint64(4), snapshot.Transactions[0].ID)
}

func TestEngineChainChangeDiscardsList(t *testing.T) {
	reader := &stubReader{count: 3}
	engine := newTestEngine(reader)
	ctx := context.Background()

	engine.Reconfigure(ctx, testConnection("0x1000000000000000000000000000000000000001", 31337))
	waitReady(t, engine)
	require.Equal(t, 3, engine.Len())

	// Repointing at an unsupported chain discards everything and lands
	// in disconnected, not in an error state.
	engine.Reconfigure(ctx, testConnection("0x1000000000000000000000000000000000000001", 1))
	require.Eventually(t, func() bool {
		return engine.State() == StateDisconnected
	}, time.Second, 5*time.Millisecond)
	require.Zero(t, engine.Len())

	// Coming back to a supported chain rebuilds the list from scratch.
	reader.set(2)
	engine.Reconfigure(ctx, testConnection("0x1000000000000000000000000000000000000001", 31337))
	waitReady(t, engine)
	require.Equal(t, 2, engine.Len())
}

func TestEngineWalletChangeDiscardsList(t *testing.T) {
	reader := &stubReader{count: 3}
	engine := newTestEngine(reader)
	ctx := context.Background()

	engine.Reconfigure(ctx, testConnection("0x1000000000000000000000000000000000000001", 31337))
	waitReady(t, engine)

	reader.set(1)
	engine.Reconfigure(ctx, testConnection("0x2000000000000000000000000000000000000002", 31337))
	waitReady(t, engine)

	snapshot := engine.Snapshot()
	require.Len(t, snapshot.Transactions, 1)
	require.Equal(t, common.HexToAddress("0x2000000000000000000000000000000000000002"), snapshot.Transactions[0].WalletAddress)
}

func TestEngineDisconnect(t *testing.T) {
	reader := &stubReader{count: 3}
	engine := newTestEngine(reader)
	ctx := context.Background()

	engine.Reconfigure(ctx, testConnection("0x1000000000000000000000000000000000000001", 31337))
	waitReady(t, engine)

	conn := testConnection("0x1000000000000000000000000000000000000001", 31337)
	conn.IsConnected = false
	engine.Reconfigure(ctx, conn)

	require.Equal(t, StateDisconnected, engine.State())
	require.Zero(t, engine.Len())

	// Disconnected sessions ignore revalidation triggers entirely.
	engine.Revalidate(ctx)
	time.Sleep(20 * time.Millisecond)
	require.Zero(t, engine.Len())
}

func TestEngineReadFailureStopsLoading(t *testing.T) {
	reader := &stubReader{err: errors.New("rpc unavailable")}
	engine := newTestEngine(reader)
	ctx := context.Background()

	engine.Reconfigure(ctx, testConnection("0x1000000000000000000000000000000000000001", 31337))
	require.Eventually(t, func() bool {
		return !engine.Snapshot().Loading && engine.LastError() != nil
	}, time.Second, 5*time.Millisecond)

	var readErr *ReadError
	require.ErrorAs(t, engine.LastError(), &readErr)
	require.Zero(t, engine.Len())

	// The failure clears on the next successful revalidation.
	reader.mu.Lock()
	reader.err = nil
	reader.count = 2
	reader.mu.Unlock()
	engine.Revalidate(ctx)
	waitReady(t, engine)
	require.NoError(t, engine.LastError())
	require.Equal(t, 2, engine.Len())
}

func TestEngineStaleResponseDiscarded(t *testing.T) {
	reader := &stubReader{count: 3}
	engine := newTestEngine(reader)
	ctx := context.Background()

	engine.Reconfigure(ctx, testConnection("0x1000000000000000000000000000000000000001", 31337))
	waitReady(t, engine)

	// A response keyed by a superseded session must not touch the list.
	staleKey := types.SessionKey{
		WalletAddress: common.HexToAddress("0x9000000000000000000000000000000000000009"),
		ChainID:       31337,
	}
	engine.applyCount(staleKey, 99, nil)
	require.Equal(t, 3, engine.Len())
}

func TestEngineUpdateTransaction(t *testing.T) {
	reader := &stubReader{count: 3}
	engine := newTestEngine(reader)

	engine.Reconfigure(context.Background(), testConnection("0x1000000000000000000000000000000000000001", 31337))
	waitReady(t, engine)

	confirmed := types.Transaction{
		ID:            1,
		WalletAddress: common.HexToAddress("0x1000000000000000000000000000000000000001"),
		Confirmations: []common.Address{common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")},
		Status:        types.TxStatusPending,
	}
	require.True(t, engine.UpdateTransaction(confirmed))

	snapshot := engine.Snapshot()
	require.Equal(t, confirmed, snapshot.Transactions[1])

	// Replaying the same update is idempotent.
	require.True(t, engine.UpdateTransaction(confirmed))
	require.Equal(t, snapshot.Transactions, engine.Snapshot().Transactions)

	// An unknown id is a silent no-op.
	require.False(t, engine.UpdateTransaction(types.Transaction{ID: 42}))
	require.Equal(t, 3, engine.Len())
}

func TestEngineOptimisticInsertRequiresReady(t *testing.T) {
	reader := &stubReader{count: 3}
	engine := newTestEngine(reader)

	_, err := engine.OptimisticInsert()
	var precondition *PreconditionError
	require.ErrorAs(t, err, &precondition)
}

type ctxReader struct {
	count uint64
	delay time.Duration
}

func (r *ctxReader) TransactionCount(ctx context.Context) (uint64, error) {
	time.Sleep(r.delay)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.count, nil
}

func TestEngineSurvivesCallerContextCancel(t *testing.T) {
	reader := &ctxReader{count: 3, delay: 30 * time.Millisecond}
	fetcher := NewFetcher(func(chainID uint64) (CountReader, bool) {
		if chainID == 31337 {
			return reader, true
		}
		return nil, false
	})
	engine := NewEngine(fetcher)

	// A request-scoped context cancelled right after Reconfigure returns
	// must not kill the materialization read.
	ctx, cancel := context.WithCancel(context.Background())
	engine.Reconfigure(ctx, testConnection("0x1000000000000000000000000000000000000001", 31337))
	cancel()

	waitReady(t, engine)
	require.NoError(t, engine.LastError())
	require.Equal(t, 3, engine.Len())

	// Same for an event-triggered revalidation.
	reader.count = 4
	ctx, cancel = context.WithCancel(context.Background())
	engine.Revalidate(ctx)
	cancel()

	require.Eventually(t, func() bool {
		return engine.Len() == 4 && !engine.Snapshot().Loading
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, engine.LastError())
}

func TestEngineInitialLoadPopulatesFetcherCache(t *testing.T) {
	reader := &stubReader{count: 3}
	engine := newTestEngine(reader)
	ctx := context.Background()

	conn := testConnection("0x1000000000000000000000000000000000000001", 31337)
	engine.Reconfigure(ctx, conn)
	waitReady(t, engine)

	// The initial materialization goes through the cached-read path, so
	// a follow-up Count for the same session is served without another
	// contract read.
	count, err := engine.fetcher.Count(ctx, conn.SessionKey(), true)
	require.NoError(t, err)
	require.Equal(t, uint64(3), count)

	reader.mu.Lock()
	calls := reader.calls
	reader.mu.Unlock()
	require.Equal(t, 1, calls)
}

func TestEngineConsumeSubmissionEvent(t *testing.T) {
	reader := &stubReader{count: 2}
	engine := newTestEngine(reader)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := testConnection("0x1000000000000000000000000000000000000001", 31337)
	engine.Reconfigure(ctx, conn)
	waitReady(t, engine)

	bus := events.NewEventBus()
	defer bus.Close()
	receiver := bus.Subscribe(conn.SessionKey().String())
	go engine.Consume(ctx, receiver)

	reader.set(3)
	bus.BroadcastEvent(&events.EventEnvelope{
		EventType: events.EVENT_WALLET_SUBMISSION,
		SessionID: conn.SessionKey().String(),
		Data:      uint64(2),
	})

	require.Eventually(t, func() bool {
		return engine.Len() == 3
	}, time.Second, 5*time.Millisecond)

	// Envelopes for another session are ignored.
	bus2 := events.NewEventBus()
	defer bus2.Close()
	other := bus2.Subscribe("other")
	go engine.Consume(ctx, other)
	bus2.BroadcastEvent(&events.EventEnvelope{
		EventType: events.EVENT_WALLET_SUBMISSION,
		SessionID: "other",
		Data:      uint64(3),
	})
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 3, engine.Len())
}
