package memory

import (
	"strings"

	"github.com/olegsv/membot/internal/core"
)

const defaultWindowSize = 15

// Assembler builds the bounded message window for one model call. The output
// length never exceeds Window+3 entries: system prompt, optional summary,
// at most Window raw history messages and the new user text.
type Assembler struct {
	Window int
}

func NewAssembler(window int) *Assembler {
	if window <= 0 {
		window = defaultWindowSize
	}
	return &Assembler{Window: window}
}

// BuildWindow assembles the ordered message sequence for the model. History
// entries keep their stored order; the synthetic summary message is never
// emitted as a raw entry, its content only appears via the summary header.
func (a *Assembler) BuildWindow(systemPrompt string, c ConversationContext, userText string) []core.Message {
	out := make([]core.Message, 0, a.Window+3)
	out = append(out, core.Message{Role: core.RoleSystem, Content: systemPrompt})

	if c.IsCompressed && c.Summary != "" {
		out = append(out, core.Message{
			Role:    core.RoleSystem,
			Content: "Previous context: " + c.Summary,
		})
	}

	raw := make([]ConversationMessage, 0, len(c.Messages))
	for _, m := range c.Messages {
		if m.IsCompressed || strings.TrimSpace(m.Content) == "" {
			continue
		}
		raw = append(raw, m)
	}
	if len(raw) > a.Window {
		raw = raw[len(raw)-a.Window:]
	}
	for _, m := range raw {
		out = append(out, core.Message{Role: m.Role, Content: m.Content})
	}

	out = append(out, core.Message{Role: core.RoleUser, Content: userText})
	return out
}
