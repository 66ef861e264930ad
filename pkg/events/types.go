package events

const (
	EVENT_WALLET_SUBMISSION = "Wallet.Submission"
)

// EventEnvelope wraps a payload with its type and the sync session it
// belongs to. Receivers drop envelopes whose session no longer matches
// their current one.
type EventEnvelope struct {
	EventType string
	SessionID string
	Data      interface{}
}
