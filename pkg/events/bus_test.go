package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventBusDeliversToSessionSubscribers(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	receiver := bus.Subscribe("session-a")
	other := bus.Subscribe("session-b")

	bus.BroadcastEvent(&EventEnvelope{
		EventType: EVENT_WALLET_SUBMISSION,
		SessionID: "session-a",
		Data:      uint64(7),
	})

	select {
	case envelope := <-receiver:
		require.Equal(t, EVENT_WALLET_SUBMISSION, envelope.EventType)
		require.Equal(t, uint64(7), envelope.Data)
	case <-time.After(time.Second):
		t.Fatal("expected envelope on session-a receiver")
	}

	select {
	case envelope := <-other:
		t.Fatalf("unexpected envelope on session-b receiver: %+v", envelope)
	default:
	}
}

func TestEventBusFanOut(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	first := bus.Subscribe("session-a")
	second := bus.Subscribe("session-a")

	bus.BroadcastEvent(&EventEnvelope{
		EventType: EVENT_WALLET_SUBMISSION,
		SessionID: "session-a",
	})

	require.Len(t, first, 1)
	require.Len(t, second, 1)
}

func TestEventBusDropsWhenReceiverFull(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	receiver := bus.Subscribe("session-a")
	for i := 0; i < defaultReceiverBufSize+5; i++ {
		bus.BroadcastEvent(&EventEnvelope{
			EventType: EVENT_WALLET_SUBMISSION,
			SessionID: "session-a",
		})
	}
	require.Len(t, receiver, defaultReceiverBufSize)
}

func TestEventBusClose(t *testing.T) {
	bus := NewEventBus()
	receiver := bus.Subscribe("session-a")
	bus.Close()

	_, ok := <-receiver
	require.False(t, ok)

	// Broadcast and a second Close after shutdown are no-ops.
	bus.BroadcastEvent(&EventEnvelope{SessionID: "session-a"})
	bus.Close()
}
