package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/olegsv/membot/internal/core"
)

const (
	defaultCompressThreshold = 20
	defaultKeepMessages      = 10

	summaryTopicLimit = 5
	summaryQueryLimit = 3
	summaryQueryRunes = 50
)

// Policy decides when old turns get folded into a single summary message and
// performs the fold. After every fold the context holds at most Keep raw
// messages plus one synthetic summary, which bounds the prompt size for any
// conversation length.
type Policy struct {
	Threshold int
	Keep      int
}

func NewPolicy() *Policy {
	return &Policy{
		Threshold: defaultCompressThreshold,
		Keep:      defaultKeepMessages,
	}
}

func (p *Policy) ShouldCompress(c *ConversationContext) bool {
	return c.MessageCount >= p.Threshold
}

// Compress folds everything but the last Keep messages into one summary
// message. A prior summary message is replaced, never summarized again; if
// the droppable prefix holds no raw messages the call is a no-op.
func (p *Policy) Compress(c *ConversationContext) {
	if len(c.Messages) <= p.Keep {
		return
	}

	cut := len(c.Messages) - p.Keep
	prefix := c.Messages[:cut]
	kept := c.Messages[cut:]

	raw := make([]ConversationMessage, 0, len(prefix))
	for _, m := range prefix {
		if !m.IsCompressed {
			raw = append(raw, m)
		}
	}
	if len(raw) == 0 {
		return
	}

	summary := BuildSummary(raw)
	messages := make([]ConversationMessage, 0, p.Keep+1)
	messages = append(messages, ConversationMessage{
		Role:         core.RoleSystem,
		Content:      summary,
		Timestamp:    time.Now(),
		IsCompressed: true,
	})
	messages = append(messages, kept...)

	c.Messages = messages
	c.MessageCount = len(messages)
	c.IsCompressed = true
	c.Summary = summary
}

// BuildSummary renders a deterministic digest of a folded message batch:
// how many messages it covered, over what span, the first topics seen and a
// few truncated user queries. Identical input always renders identically.
func BuildSummary(batch []ConversationMessage) string {
	if len(batch) == 0 {
		return ""
	}

	span := batch[len(batch)-1].Timestamp.Sub(batch[0].Timestamp)

	var topics []string
	seen := make(map[string]struct{})
	for _, m := range batch {
		for _, t := range m.Topics {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			topics = append(topics, t)
			if len(topics) == summaryTopicLimit {
				break
			}
		}
		if len(topics) == summaryTopicLimit {
			break
		}
	}

	var queries []string
	for _, m := range batch {
		if m.Role != core.RoleUser {
			continue
		}
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		queries = append(queries, truncateRunes(content, summaryQueryRunes))
		if len(queries) == summaryQueryLimit {
			break
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Summary of %d earlier messages over %s.", len(batch), span.Round(time.Minute))
	if len(topics) > 0 {
		fmt.Fprintf(&sb, " Topics: %s.", strings.Join(topics, ", "))
	}
	if len(queries) > 0 {
		fmt.Fprintf(&sb, " Key user queries: %q.", queries)
	}
	return sb.String()
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
