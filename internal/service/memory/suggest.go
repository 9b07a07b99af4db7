package memory

import (
	"fmt"

	"github.com/olegsv/membot/internal/core"
)

const (
	defaultSuggestLimit = 5
	suggestMinScore     = importanceCutoff
)

// suggestionRoutes maps detected topics onto knowledge-base targets. Order
// matters only for lookup, not dedup: a message tagged with several routed
// topics yields one suggestion per topic.
var suggestionRoutes = map[string]string{
	"проект":  "PROJECTS.md",
	"project": "PROJECTS.md",
	"встреча": "MEETINGS.md",
	"meeting": "MEETINGS.md",
	"задача":  "TASKS.md",
	"task":    "TASKS.md",
	"клиент":  "CLIENTS.md",
	"client":  "CLIENTS.md",
	"идея":    "IDEAS.md",
	"idea":    "IDEAS.md",
}

// Engine derives knowledge-save suggestions from the importance scores and
// topics already stored on the context. Purely advisory: persisting anything
// requires explicit user approval downstream.
type Engine struct {
	Limit int
}

func NewEngine() *Engine {
	return &Engine{Limit: defaultSuggestLimit}
}

// Suggest scans the last high-importance user messages and emits one
// suggestion per routed topic each carries.
func (e *Engine) Suggest(c ConversationContext) []core.Suggestion {
	var candidates []ConversationMessage
	for _, m := range c.Messages {
		if m.Role != core.RoleUser || m.Importance == nil {
			continue
		}
		if *m.Importance > suggestMinScore {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) > e.Limit {
		candidates = candidates[len(candidates)-e.Limit:]
	}

	var suggestions []core.Suggestion
	for _, m := range candidates {
		for _, topic := range m.Topics {
			target, ok := suggestionRoutes[topic]
			if !ok {
				continue
			}
			suggestions = append(suggestions, core.Suggestion{
				Target:     target,
				UpdateType: "append",
				Payload:    m.Content,
				Reason:     fmt.Sprintf("message mentions topic %q", topic),
				Confidence: *m.Importance,
				CreatedAt:  m.Timestamp,
			})
		}
	}
	return suggestions
}
