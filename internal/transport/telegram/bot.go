package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olegsv/membot/internal/config"
	"github.com/olegsv/membot/internal/core"
	"github.com/olegsv/membot/internal/service/assistant"
	"github.com/olegsv/membot/pkg/log"
	"github.com/olegsv/membot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot       *tele.Bot
	cfg       *config.TelegramConfig
	assistant *assistant.Assistant
	router    core.CmdRouter
	sender    *sender
	retrier   *retry.Retrier
	ownerID   int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	asst *assistant.Assistant,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	retryCfg := retry.NewDefaultConfig()
	retryCfg.ShouldRetry = func(err error) bool {
		// malformed responses will not get better on a retry
		return !errors.Is(err, core.ErrMalformedResponse)
	}

	bot := &Bot{
		bot:       b,
		cfg:       cfg,
		assistant: asst,
		router:    router,
		sender:    newSender(b),
		retrier:   retry.NewRetrier(retryCfg),
		ownerID:   cfg.OwnerID,
	}

	// Carry the signal context with logger into handlers
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

// Notify implements core.Notifier for out-of-band delivery.
func (b *Bot) Notify(ctx context.Context, destination int64, text string) error {
	if destination == 0 {
		return fmt.Errorf("%w: zero chat id", core.ErrBadDestination)
	}
	if err := b.sender.sendMarkdown(ctx, tele.ChatID(destination), text, false); err != nil {
		return fmt.Errorf("%w: %v", core.ErrUnreachable, err)
	}
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	userID := c.Sender().ID

	if out, handled := b.router.Execute(ctx, userID, c.Text()); handled {
		return b.sender.sendMarkdown(ctx, c.Chat(), out, false)
	}

	_ = c.Notify(tele.Typing)

	var reply string
	err := b.retrier.Do(ctx, func() error {
		var respondErr error
		reply, respondErr = b.assistant.Respond(ctx, userID, c.Text())
		return respondErr
	})
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("assistant turn failed")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	if strings.TrimSpace(reply) == "" {
		return nil
	}
	return b.sender.sendMarkdown(ctx, c.Chat(), reply, false)
}
