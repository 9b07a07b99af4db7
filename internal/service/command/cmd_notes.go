package command

import (
	"context"
	"fmt"

	"github.com/olegsv/membot/internal/core"
)

const notesListLimit = 10

type NotesCommand struct {
	sink      core.KnowledgeSink
	formatter *ResponseFormatter
}

func NewNotesCommand(sink core.KnowledgeSink) *NotesCommand {
	return &NotesCommand{
		sink:      sink,
		formatter: NewResponseFormatter(),
	}
}

func (c *NotesCommand) Name() string {
	return "notes"
}

func (c *NotesCommand) Description() string {
	return "Show recently saved notes"
}

func (c *NotesCommand) Execute(ctx context.Context, userID int64, args []string) (string, error) {
	notes, err := c.sink.List(ctx, notesListLimit)
	if err != nil {
		return "", fmt.Errorf("failed to list notes: %w", err)
	}
	if len(notes) == 0 {
		return c.formatter.Tip("Заметок пока нет. Используйте /suggestions и /save."), nil
	}

	items := make([]string, 0, len(notes))
	for _, n := range notes {
		items = append(items, fmt.Sprintf("`%s` %s — %s", n.Target, n.CreatedAt.Format("02.01.2006"), n.Payload))
	}

	return c.formatter.Combine(
		c.formatter.Info("Saved notes"),
		c.formatter.List(items),
	), nil
}
