package wallet

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/openmsig/msig-client/pkg/types"
)

type slowReader struct {
	count uint64
	delay time.Duration
	calls atomic.Int64
	err   error
}

func (r *slowReader) TransactionCount(ctx context.Context) (uint64, error) {
	r.calls.Add(1)
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	if r.err != nil {
		return 0, r.err
	}
	return r.count, nil
}

func fetcherKey() types.SessionKey {
	return types.SessionKey{
		WalletAddress: common.HexToAddress("0x1000000000000000000000000000000000000001"),
		ChainID:       31337,
	}
}

func TestFetcherPreconditions(t *testing.T) {
	fetcher := NewFetcher(func(chainID uint64) (CountReader, bool) {
		return nil, false
	})
	ctx := context.Background()

	var precondition *PreconditionError

	_, err := fetcher.Count(ctx, fetcherKey(), false)
	require.ErrorAs(t, err, &precondition)
	require.Contains(t, precondition.Reason, "not connected")

	_, err = fetcher.Count(ctx, types.SessionKey{ChainID: 31337}, true)
	require.ErrorAs(t, err, &precondition)
	require.Contains(t, precondition.Reason, "address")

	_, err = fetcher.Count(ctx, fetcherKey(), true)
	require.ErrorAs(t, err, &precondition)
	require.Contains(t, precondition.Reason, "unsupported")
}

func TestFetcherCachesCount(t *testing.T) {
	reader := &slowReader{count: 7}
	fetcher := NewFetcher(func(chainID uint64) (CountReader, bool) {
		return reader, true
	})
	ctx := context.Background()

	count, err := fetcher.Count(ctx, fetcherKey(), true)
	require.NoError(t, err)
	require.Equal(t, uint64(7), count)

	// Second read is served from the cache.
	count, err = fetcher.Count(ctx, fetcherKey(), true)
	require.NoError(t, err)
	require.Equal(t, uint64(7), count)
	require.Equal(t, int64(1), reader.calls.Load())
}

func TestFetcherRevalidateReplacesCache(t *testing.T) {
	reader := &slowReader{count: 7}
	fetcher := NewFetcher(func(chainID uint64) (CountReader, bool) {
		return reader, true
	})
	ctx := context.Background()

	_, err := fetcher.Count(ctx, fetcherKey(), true)
	require.NoError(t, err)

	reader.count = 8
	count, err := fetcher.Revalidate(ctx, fetcherKey(), true)
	require.NoError(t, err)
	require.Equal(t, uint64(8), count)

	count, err = fetcher.Count(ctx, fetcherKey(), true)
	require.NoError(t, err)
	require.Equal(t, uint64(8), count)
	require.Equal(t, int64(2), reader.calls.Load())
}

func TestFetcherInvalidate(t *testing.T) {
	reader := &slowReader{count: 7}
	fetcher := NewFetcher(func(chainID uint64) (CountReader, bool) {
		return reader, true
	})
	ctx := context.Background()

	_, err := fetcher.Count(ctx, fetcherKey(), true)
	require.NoError(t, err)

	fetcher.Invalidate(fetcherKey())
	_, err = fetcher.Count(ctx, fetcherKey(), true)
	require.NoError(t, err)
	require.Equal(t, int64(2), reader.calls.Load())
}

func TestFetcherCoalescesConcurrentReads(t *testing.T) {
	reader := &slowReader{count: 5, delay: 50 * time.Millisecond}
	fetcher := NewFetcher(func(chainID uint64) (CountReader, bool) {
		return reader, true
	})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			count, err := fetcher.Revalidate(ctx, fetcherKey(), true)
			require.NoError(t, err)
			require.Equal(t, uint64(5), count)
		}()
	}
	wg.Wait()

	require.Less(t, reader.calls.Load(), int64(8))
}

func TestFetcherWrapsReadErrors(t *testing.T) {
	cause := errors.New("connection refused")
	reader := &slowReader{err: cause}
	fetcher := NewFetcher(func(chainID uint64) (CountReader, bool) {
		return reader, true
	})

	_, err := fetcher.Count(context.Background(), fetcherKey(), true)
	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	require.ErrorIs(t, err, cause)
	require.Equal(t, fetcherKey(), readErr.Key)
}
