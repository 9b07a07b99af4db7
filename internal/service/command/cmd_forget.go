package command

import (
	"context"
)

// Forgetter drops a user's remembered conversation.
type Forgetter interface {
	Forget(userID int64)
}

type ForgetCommand struct {
	forgetter Forgetter
	formatter *ResponseFormatter
}

func NewForgetCommand(forgetter Forgetter) *ForgetCommand {
	return &ForgetCommand{
		forgetter: forgetter,
		formatter: NewResponseFormatter(),
	}
}

func (c *ForgetCommand) Name() string {
	return "forget"
}

func (c *ForgetCommand) Description() string {
	return "Forget the current conversation"
}

func (c *ForgetCommand) Execute(ctx context.Context, userID int64, args []string) (string, error) {
	c.forgetter.Forget(userID)
	return c.formatter.Success("Контекст разговора очищен"), nil
}
