package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"

	"github.com/openmsig/msig-client/config"
	"github.com/openmsig/msig-client/pkg/clients/evm"
	"github.com/openmsig/msig-client/pkg/events"
	"github.com/openmsig/msig-client/pkg/types"
)

// Service owns the full sync session: one chain client, one engine, one
// gateway and the event plumbing between them. Repointing the session
// at a different wallet or chain tears the old session down completely.
type Service struct {
	cfg       *config.Config
	signerKey *ecdsa.PrivateKey
	eventBus  *events.EventBus
	recorder  ActionRecorder

	engine  *Engine
	gateway *Gateway
	fetcher *Fetcher

	mu            sync.Mutex
	client        *evm.Client
	cancelConsume context.CancelFunc
}

func NewService(cfg *config.Config, recorder ActionRecorder) (*Service, error) {
	signerKey, err := cfg.Signer.PrivateKeyECDSA()
	if err != nil {
		return nil, fmt.Errorf("failed to load signer key: %w", err)
	}

	s := &Service{
		cfg:       cfg,
		signerKey: signerKey,
		eventBus:  events.NewEventBus(),
		recorder:  recorder,
	}
	// The resolver closes over the service so the fetcher always reads
	// through whichever client the current session holds.
	s.fetcher = NewFetcher(func(chainID uint64) (CountReader, bool) {
		s.mu.Lock()
		client := s.client
		s.mu.Unlock()
		if client == nil {
			return nil, false
		}
		if _, ok := cfg.NetworkByChainID(chainID); !ok {
			return nil, false
		}
		return client, true
	})
	s.engine = NewEngine(s.fetcher)
	s.gateway = NewGateway(s.engine, recorder)
	return s, nil
}

func (s *Service) Engine() *Engine   { return s.engine }
func (s *Service) Gateway() *Gateway { return s.gateway }

// Start opens the session configured at startup.
func (s *Service) Start(ctx context.Context) error {
	conn := types.ConnectionState{
		ChainID:       s.cfg.Wallet.ChainID,
		Account:       crypto.PubkeyToAddress(s.signerKey.PublicKey),
		WalletAddress: common.HexToAddress(s.cfg.Wallet.Address),
		IsConnected:   true,
	}
	return s.Reconfigure(ctx, conn)
}

// Reconfigure repoints the session. The previous client, subscription
// and consume loop are torn down before the new session is wired, so
// events from the old session cannot reach the new list.
func (s *Service) Reconfigure(ctx context.Context, conn types.ConnectionState) error {
	s.teardownSession()

	if !conn.IsConnected {
		s.engine.Reconfigure(ctx, conn)
		s.gateway.Unbind()
		log.Info().Msg("[WalletService] [Reconfigure] session disconnected")
		return nil
	}

	network, ok := s.cfg.NetworkByChainID(conn.ChainID)
	if !ok {
		// An unsupported chain is a disconnected session, not an error;
		// the engine reports it through its state.
		s.engine.Reconfigure(ctx, types.ConnectionState{
			ChainID:       conn.ChainID,
			Account:       conn.Account,
			WalletAddress: conn.WalletAddress,
			IsConnected:   false,
		})
		s.gateway.Unbind()
		log.Warn().Uint64("chainId", conn.ChainID).
			Msg("[WalletService] [Reconfigure] unsupported chain, session disconnected")
		return nil
	}

	client, err := evm.NewClient(ctx, network, conn.WalletAddress, s.signerKey, s.eventBus)
	if err != nil {
		return fmt.Errorf("failed to open session on chain %d: %w", conn.ChainID, err)
	}

	key := conn.SessionKey()
	if err := client.WatchSubmission(key.String()); err != nil {
		client.Close()
		return fmt.Errorf("failed to subscribe to Submission events: %w", err)
	}

	receiver := s.eventBus.Subscribe(key.String())
	consumeCtx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.client = client
	s.cancelConsume = cancel
	s.mu.Unlock()

	s.gateway.Bind(client)
	go s.engine.Consume(consumeCtx, receiver)
	s.engine.Reconfigure(ctx, conn)

	log.Info().Str("sessionKey", key.String()).
		Str("network", network.Name).
		Msg("[WalletService] [Reconfigure] session opened")
	return nil
}

// Connection reports the engine's current connection state.
func (s *Service) Connection() types.ConnectionState {
	return s.engine.Connection()
}

func (s *Service) teardownSession() {
	s.mu.Lock()
	client := s.client
	cancel := s.cancelConsume
	s.client = nil
	s.cancelConsume = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if client != nil {
		client.Close()
	}
}

// Stop tears the session down and closes the event bus.
func (s *Service) Stop() {
	s.gateway.Unbind()
	s.teardownSession()
	s.eventBus.Close()
	log.Info().Msg("[WalletService] [Stop] service stopped")
}
