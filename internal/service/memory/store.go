package memory

import (
	"strings"
	"sync"
	"time"
)

// Store keeps one ConversationContext per user. Each context sits behind its
// own lock: mutations for the same user serialize, distinct users never block
// each other. The outer map lock is held only long enough to find or create
// the slot.
type Store struct {
	mu    sync.RWMutex
	slots map[int64]*slot
	now   func() time.Time
}

type slot struct {
	mu  sync.Mutex
	ctx *ConversationContext
}

func NewStore() *Store {
	return &Store{
		slots: make(map[int64]*slot),
		now:   time.Now,
	}
}

func (s *Store) slotFor(userID int64) *slot {
	s.mu.RLock()
	sl, ok := s.slots[userID]
	s.mu.RUnlock()
	if ok {
		return sl
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok = s.slots[userID]; ok {
		return sl
	}
	sl = &slot{ctx: newContext(userID, s.now())}
	s.slots[userID] = sl
	return sl
}

// GetOrCreate returns a snapshot of the user's context, creating an empty one
// on first contact. Reading counts as activity.
func (s *Store) GetOrCreate(userID int64) ConversationContext {
	sl := s.slotFor(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.ctx.LastActivity = s.now()
	return sl.ctx.clone()
}

// Update runs fn on the user's context inside its per-key critical section.
// The append-then-maybe-compress sequence goes through here as one unit.
// If fn leaves the context in a corrupted state the context is reset to an
// uncompressed empty state and the corruption error is returned.
func (s *Store) Update(userID int64, fn func(c *ConversationContext) error) error {
	sl := s.slotFor(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()

	if err := fn(sl.ctx); err != nil {
		return err
	}
	sl.ctx.LastActivity = s.now()

	if err := sl.ctx.checkIntegrity(); err != nil {
		sl.ctx.reset(s.now())
		return err
	}
	return nil
}

// AppendPair appends a (user, assistant) message pair under the user's lock.
// Returns the message count after the append.
func (s *Store) AppendPair(userID int64, userText, aiText string, importance float64, topics []string) (int, error) {
	var count int
	err := s.Update(userID, func(c *ConversationContext) error {
		count = c.AppendPair(s.now(), userText, aiText, importance, topics)
		return nil
	})
	return count, err
}

// Reset drops a user's context back to an empty uncompressed state.
func (s *Store) Reset(userID int64) {
	sl := s.slotFor(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.ctx.reset(s.now())
}

// Snapshot returns a copy of the context without counting as activity.
func (s *Store) Snapshot(userID int64) (ConversationContext, bool) {
	s.mu.RLock()
	sl, ok := s.slots[userID]
	s.mu.RUnlock()
	if !ok {
		return ConversationContext{}, false
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.ctx.clone(), true
}

// Len reports how many user contexts are held. There is no eviction: the
// store grows with the number of distinct users for the process lifetime.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

func dedupe(topics []string) []string {
	if len(topics) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
