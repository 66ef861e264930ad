package wallet

import (
	"errors"
	"fmt"

	"github.com/openmsig/msig-client/pkg/types"
)

// ErrStaleResponse marks a network response whose originating session
// key no longer matches the current one. Discarded silently, never
// user-visible.
var ErrStaleResponse = errors.New("stale response for superseded session")

// PreconditionError means the session is not ready for chain reads:
// no connection, unsupported network or invalid wallet address.
// Surfaced as "not ready", never retried.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition not met: %s", e.Reason)
}

// ReadError wraps an RPC or contract read failure. Retried only on the
// next explicit revalidation trigger.
type ReadError struct {
	Key types.SessionKey
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read failed for session %s: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError wraps a rejected or reverted gateway action. It is the
// value returned across the gateway boundary so callers can render the
// message inline instead of crashing.
type WriteError struct {
	Action  string
	Message string
	Err     error
}

func (e *WriteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Action, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Action, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func writeErrorf(action string, err error, format string, args ...interface{}) *WriteError {
	return &WriteError{Action: action, Message: fmt.Sprintf(format, args...), Err: err}
}

// ValidationError reports a synchronously computed input rejection
// (invalid address, duplicate owner). It blocks submission entirely and
// never reaches the network layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
