package core

import (
	"errors"
	"fmt"
)

// Completion provider failures. The memory core never retries these; the
// transport layer decides on retry and backoff.
var (
	ErrRateLimited       = errors.New("provider rate limited")
	ErrMalformedResponse = errors.New("malformed provider response")
)

// Notifier failures.
var (
	ErrUnreachable    = errors.New("destination unreachable")
	ErrBadDestination = errors.New("malformed destination")
)

// StateCorruptionError reports a conversation context whose bookkeeping no
// longer matches its message sequence. The recommended recovery is to reset
// the context to an uncompressed state.
type StateCorruptionError struct {
	UserID int64
	Reason string
}

func (e *StateCorruptionError) Error() string {
	return fmt.Sprintf("conversation state corrupted for user %d: %s", e.UserID, e.Reason)
}
