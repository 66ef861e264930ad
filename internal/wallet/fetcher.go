package wallet

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/openmsig/msig-client/pkg/types"
)

// CountReader reads the authoritative transaction count from the
// multisig contract.
type CountReader interface {
	TransactionCount(ctx context.Context) (uint64, error)
}

// ReaderResolver maps a chain id to the reader for that network.
// A false return means the network is unsupported.
type ReaderResolver func(chainID uint64) (CountReader, bool)

// Fetcher owns the cached authoritative count per session key.
// Concurrent identical requests collapse into a single underlying read;
// Revalidate forces a fresh read and replaces the cached value.
type Fetcher struct {
	resolve ReaderResolver

	group  singleflight.Group
	mu     sync.Mutex
	counts map[types.SessionKey]uint64
}

func NewFetcher(resolve ReaderResolver) *Fetcher {
	return &Fetcher{
		resolve: resolve,
		counts:  make(map[types.SessionKey]uint64),
	}
}

// Count returns the cached count for the session, fetching it when no
// value is held yet.
func (f *Fetcher) Count(ctx context.Context, key types.SessionKey, connected bool) (uint64, error) {
	f.mu.Lock()
	count, ok := f.counts[key]
	f.mu.Unlock()
	if ok {
		return count, nil
	}
	return f.fetch(ctx, key, connected, "count")
}

// Revalidate forces a fresh read for the session, replacing whatever
// value was cached. Used on chain identity change and on
// event-triggered resync.
func (f *Fetcher) Revalidate(ctx context.Context, key types.SessionKey, connected bool) (uint64, error) {
	return f.fetch(ctx, key, connected, "revalidate")
}

// Invalidate drops the cached count for the session.
func (f *Fetcher) Invalidate(key types.SessionKey) {
	f.mu.Lock()
	delete(f.counts, key)
	f.mu.Unlock()
}

func (f *Fetcher) fetch(ctx context.Context, key types.SessionKey, connected bool, purpose string) (uint64, error) {
	if !connected {
		return 0, &PreconditionError{Reason: "wallet is not connected"}
	}
	if key.WalletAddress == (common.Address{}) {
		return 0, &PreconditionError{Reason: "wallet address is not set"}
	}
	reader, ok := f.resolve(key.ChainID)
	if !ok {
		return 0, &PreconditionError{Reason: "unsupported network"}
	}

	// Concurrent triggers for the same session and purpose share one
	// in-flight read.
	result, err, shared := f.group.Do(key.String()+"#"+purpose, func() (interface{}, error) {
		count, err := reader.TransactionCount(ctx)
		if err != nil {
			return nil, &ReadError{Key: key, Err: err}
		}
		f.mu.Lock()
		f.counts[key] = count
		f.mu.Unlock()
		return count, nil
	})
	if err != nil {
		log.Error().Err(err).Str("sessionKey", key.String()).
			Str("purpose", purpose).
			Msg("[Fetcher] [fetch] failed to read transaction count")
		return 0, err
	}
	if shared {
		log.Debug().Str("sessionKey", key.String()).
			Str("purpose", purpose).
			Msg("[Fetcher] [fetch] coalesced concurrent read")
	}
	return result.(uint64), nil
}
