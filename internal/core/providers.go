package core

import "context"

// CompletionService generates a reply for an assembled message window.
// Implementations map transport failures onto the typed errors in errors.go.
type CompletionService interface {
	Complete(ctx context.Context, window []Message, params CompletionParams) (string, error)
}

// Notifier delivers text to a chat destination.
type Notifier interface {
	Notify(ctx context.Context, destination int64, text string) error
}

// KnowledgeSink persists user-approved suggestions. The memory core never
// calls it on its own; approval always comes through a command.
type KnowledgeSink interface {
	Save(ctx context.Context, s Suggestion) (Note, error)
	List(ctx context.Context, limit int) ([]Note, error)
}
