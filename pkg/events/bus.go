package events

import (
	"sync"

	"github.com/rs/zerolog/log"
)

const defaultReceiverBufSize = 16

type Channels []chan *EventEnvelope

// EventBus fans envelopes out to subscribers keyed by session id.
// One bus instance is owned by the wallet service and torn down with it.
type EventBus struct {
	mu       sync.RWMutex
	channels map[string]Channels
	closed   bool
}

func NewEventBus() *EventBus {
	return &EventBus{
		channels: make(map[string]Channels),
	}
}

// Subscribe registers a receiver for all envelopes published under the
// given session id. The returned channel is closed when the bus closes.
func (eb *EventBus) Subscribe(sessionID string) <-chan *EventEnvelope {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	receiver := make(chan *EventEnvelope, defaultReceiverBufSize)
	eb.channels[sessionID] = append(eb.channels[sessionID], receiver)
	return receiver
}

// BroadcastEvent delivers the envelope to every subscriber of its
// session id. Slow receivers whose buffer is full are skipped rather
// than blocking the publisher.
func (eb *EventBus) BroadcastEvent(event *EventEnvelope) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if eb.closed {
		return
	}
	for _, channel := range eb.channels[event.SessionID] {
		select {
		case channel <- event:
		default:
			log.Warn().Str("sessionId", event.SessionID).
				Str("eventType", event.EventType).
				Msg("[EventBus] [BroadcastEvent] receiver buffer full, dropping event")
		}
	}
}

// Close shuts down every subscriber channel. Broadcasts after Close are
// no-ops.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return
	}
	eb.closed = true
	for _, channels := range eb.channels {
		for _, channel := range channels {
			close(channel)
		}
	}
	eb.channels = make(map[string]Channels)
}
