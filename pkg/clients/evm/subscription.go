package evm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/rs/zerolog/log"

	contracts "github.com/openmsig/msig-client/pkg/clients/evm/contracts/generated"
	"github.com/openmsig/msig-client/pkg/events"
)

const submissionSinkBufSize = 16

// WatchSubmission opens the session's Submission subscription and
// forwards every event onto the event bus under the given session id.
// A previous subscription, if any, is torn down first so exactly one
// listener exists per session.
func (c *Client) WatchSubmission(sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unsubscribeLocked()

	sink := make(chan *contracts.MultiSigWalletSubmission, submissionSinkBufSize)
	sub, err := c.Wallet.WatchSubmission(&bind.WatchOpts{}, sink, nil)
	if err != nil {
		return fmt.Errorf("failed to watch Submission events: %w", err)
	}
	c.submissionSub = sub
	done := make(chan struct{})
	c.sinkDone = done

	go func() {
		defer close(done)
		for {
			select {
			case submission := <-sink:
				log.Debug().Uint64("transactionId", submission.TransactionId.Uint64()).
					Str("sessionId", sessionID).
					Msg("[EvmClient] [WatchSubmission] Submission event received")
				c.eventBus.BroadcastEvent(&events.EventEnvelope{
					EventType: events.EVENT_WALLET_SUBMISSION,
					SessionID: sessionID,
					Data:      submission.TransactionId.Uint64(),
				})
			case err := <-sub.Err():
				if err != nil {
					log.Error().Err(err).Str("sessionId", sessionID).
						Msg("[EvmClient] [WatchSubmission] subscription failed")
				}
				return
			}
		}
	}()
	log.Info().Str("sessionId", sessionID).Msg("[EvmClient] [WatchSubmission] subscribed to Submission events")
	return nil
}

// UnsubscribeSubmission tears down the live Submission subscription.
// Safe to call when none exists.
func (c *Client) UnsubscribeSubmission() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unsubscribeLocked()
}

func (c *Client) unsubscribeLocked() {
	if c.submissionSub == nil {
		return
	}
	c.submissionSub.Unsubscribe()
	<-c.sinkDone
	c.submissionSub = nil
	c.sinkDone = nil
}
