package memory

import (
	"fmt"
	"time"

	"github.com/olegsv/membot/internal/core"
)

// ConversationMessage is one remembered turn entry. A message with
// IsCompressed set is the synthetic summary produced by a fold; there is at
// most one such message per context and it is never folded again.
type ConversationMessage struct {
	Role         string
	Content      string
	Timestamp    time.Time
	IsCompressed bool
	// Importance is set only for user messages, at append time.
	Importance *float64
	Topics     []string
}

// ConversationContext is the full remembered state for one user.
type ConversationContext struct {
	UserID       int64
	Messages     []ConversationMessage
	CreatedAt    time.Time
	LastActivity time.Time
	MessageCount int
	IsCompressed bool
	Summary      string
}

func newContext(userID int64, now time.Time) *ConversationContext {
	return &ConversationContext{
		UserID:       userID,
		CreatedAt:    now,
		LastActivity: now,
	}
}

// AppendPair appends a user message and the assistant reply to it, in that
// order. Only the user message carries the importance score and topics.
// Returns the message count after the append.
func (c *ConversationContext) AppendPair(now time.Time, userText, aiText string, importance float64, topics []string) int {
	imp := importance
	c.Messages = append(c.Messages,
		ConversationMessage{
			Role:       core.RoleUser,
			Content:    userText,
			Timestamp:  now,
			Importance: &imp,
			Topics:     dedupe(topics),
		},
		ConversationMessage{
			Role:      core.RoleAssistant,
			Content:   aiText,
			Timestamp: now,
		},
	)
	c.MessageCount = len(c.Messages)
	return c.MessageCount
}

// checkIntegrity verifies the bookkeeping invariants. A mismatch means the
// context was mutated outside the store and must be treated as corrupted.
func (c *ConversationContext) checkIntegrity() error {
	if c.MessageCount != len(c.Messages) {
		return &core.StateCorruptionError{
			UserID: c.UserID,
			Reason: fmt.Sprintf("message count %d does not match sequence length %d", c.MessageCount, len(c.Messages)),
		}
	}
	if c.IsCompressed && c.Summary == "" {
		return &core.StateCorruptionError{
			UserID: c.UserID,
			Reason: "compressed flag set without a summary",
		}
	}
	return nil
}

// reset drops the context back to an empty uncompressed state, keeping only
// identity and creation time. Used as corruption recovery.
func (c *ConversationContext) reset(now time.Time) {
	c.Messages = nil
	c.MessageCount = 0
	c.IsCompressed = false
	c.Summary = ""
	c.LastActivity = now
}

// clone returns a deep copy safe to read outside the store lock.
func (c *ConversationContext) clone() ConversationContext {
	out := *c
	out.Messages = make([]ConversationMessage, len(c.Messages))
	for i, m := range c.Messages {
		cp := m
		if m.Importance != nil {
			v := *m.Importance
			cp.Importance = &v
		}
		cp.Topics = append([]string(nil), m.Topics...)
		out.Messages[i] = cp
	}
	return out
}
