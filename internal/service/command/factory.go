package command

import (
	"github.com/olegsv/membot/internal/core"
)

type Assistant interface {
	Suggester
	Forgetter
}

func NewCommands(
	assistant Assistant,
	sink core.KnowledgeSink,
) []core.Command {
	return []core.Command{
		NewSuggestionsCommand(assistant),
		NewSaveCommand(assistant, sink),
		NewNotesCommand(sink),
		NewForgetCommand(assistant),
	}
}
