package command

import (
	"context"
	"fmt"

	"github.com/olegsv/membot/internal/core"
)

// Suggester derives save-suggestions for a user's conversation.
type Suggester interface {
	Suggestions(userID int64) []core.Suggestion
}

type SuggestionsCommand struct {
	suggester Suggester
	formatter *ResponseFormatter
}

func NewSuggestionsCommand(suggester Suggester) *SuggestionsCommand {
	return &SuggestionsCommand{
		suggester: suggester,
		formatter: NewResponseFormatter(),
	}
}

func (c *SuggestionsCommand) Name() string {
	return "suggestions"
}

func (c *SuggestionsCommand) Description() string {
	return "Show knowledge-save suggestions from recent messages"
}

func (c *SuggestionsCommand) Execute(ctx context.Context, userID int64, args []string) (string, error) {
	suggestions := c.suggester.Suggestions(userID)
	if len(suggestions) == 0 {
		return c.formatter.Tip("Пока нечего сохранять — важных сообщений не накопилось."), nil
	}

	items := make([]string, 0, len(suggestions))
	for i, s := range suggestions {
		items = append(items, fmt.Sprintf("%d. → `%s` (%.0f%%): %s", i+1, s.Target, s.Confidence*100, s.Payload))
	}

	return c.formatter.Combine(
		c.formatter.Info("Save suggestions"),
		c.formatter.List(items),
		c.formatter.Usage("/save [номер]"),
	), nil
}
