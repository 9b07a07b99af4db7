package core

import "time"

const (
	BotName       = "MemBot"
	BotUserAgent  = "MemBot-Agent/0.1"
	RepositoryURL = "https://github.com/olegsv/membot"
	Version       = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat-completion entry in the order it is sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionParams are the generation knobs passed along with the message window.
type CompletionParams struct {
	MaxTokens   int
	Temperature float64
}

// Suggestion is a proposed knowledge-base write derived from a high-importance
// user message. It is advisory: nothing is persisted until the user approves it.
type Suggestion struct {
	Target     string    `json:"target"`
	UpdateType string    `json:"update_type"`
	Payload    string    `json:"payload"`
	Reason     string    `json:"reason"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

// Note is an approved suggestion as stored by the knowledge sink.
type Note struct {
	ID         int64     `json:"id"`
	Target     string    `json:"target"`
	UpdateType string    `json:"update_type"`
	Payload    string    `json:"payload"`
	Reason     string    `json:"reason"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}
