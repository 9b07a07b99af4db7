package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olegsv/membot/internal/core"
)

type SaveCommand struct {
	suggester Suggester
	sink      core.KnowledgeSink
	formatter *ResponseFormatter
}

func NewSaveCommand(suggester Suggester, sink core.KnowledgeSink) *SaveCommand {
	return &SaveCommand{
		suggester: suggester,
		sink:      sink,
		formatter: NewResponseFormatter(),
	}
}

func (c *SaveCommand) Name() string {
	return "save"
}

func (c *SaveCommand) Description() string {
	return "Approve a suggestion and persist it"
}

func (c *SaveCommand) Execute(ctx context.Context, userID int64, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Usage("/save [номер из /suggestions]"), nil
	}

	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 {
		return "", fmt.Errorf("invalid suggestion number: %s", args[0])
	}

	suggestions := c.suggester.Suggestions(userID)
	if idx > len(suggestions) {
		return "", fmt.Errorf("suggestion %d not found, only %d available", idx, len(suggestions))
	}

	note, err := c.sink.Save(ctx, suggestions[idx-1])
	if err != nil {
		return "", fmt.Errorf("failed to save note: %w", err)
	}

	return c.formatter.Combine(
		c.formatter.Success(fmt.Sprintf("Сохранено в `%s`", note.Target)),
		c.formatter.Label("Note", strconv.FormatInt(note.ID, 10)),
	), nil
}
