package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/olegsv/membot/internal/core"
	"github.com/olegsv/membot/internal/service/memory"
	"github.com/olegsv/membot/pkg/log"
	"github.com/olegsv/membot/pkg/tokens"
)

// Assistant runs one conversation turn: score the incoming text, assemble the
// bounded window, ask the completion provider, then record the pair and fold
// old history if the threshold is reached. The append and the fold happen in
// a single per-user critical section. Provider failures propagate untouched;
// retrying is the transport's call.
type Assistant struct {
	appCfg      core.AppConfig
	providerCfg core.ProviderConfig
	provider    core.CompletionService
	store       *memory.Store
	policy      *memory.Policy
	assembler   *memory.Assembler
	engine      *memory.Engine
}

func NewAssistant(
	appCfg core.AppConfig,
	providerCfg core.ProviderConfig,
	provider core.CompletionService,
	store *memory.Store,
) *Assistant {
	return &Assistant{
		appCfg:      appCfg,
		providerCfg: providerCfg,
		provider:    provider,
		store:       store,
		policy:      memory.NewPolicy(),
		assembler:   memory.NewAssembler(appCfg.GetWindowSize()),
		engine:      memory.NewEngine(),
	}
}

func (a *Assistant) Respond(ctx context.Context, userID int64, text string) (string, error) {
	logger := log.FromCtx(ctx)

	analysis := memory.Analyze(text)
	conv := a.store.GetOrCreate(userID)
	window := a.assembler.BuildWindow(a.appCfg.GetSystemPrompt(), conv, text)

	if e := logger.Debug(); e.Enabled() {
		total := 0
		for _, m := range window {
			total += tokens.Estimate(m.Content)
		}
		e.Int64("user_id", userID).
			Int("window", len(window)).
			Int("tokens_est", total).
			Float64("importance", analysis.Score).
			Msg("assembled prompt window")
	}

	reply, err := a.provider.Complete(ctx, window, core.CompletionParams{
		MaxTokens:   a.providerCfg.GetMaxTokens(),
		Temperature: a.providerCfg.GetTemperature(),
	})
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	err = a.store.Update(userID, func(c *memory.ConversationContext) error {
		c.AppendPair(time.Now(), text, reply, analysis.Score, analysis.Topics)
		if a.policy.ShouldCompress(c) {
			logger.Info().Int64("user_id", userID).Int("messages", c.MessageCount).Msg("folding old history")
			a.policy.Compress(c)
		}
		return nil
	})
	if err != nil {
		// the store already reset the context; the reply is still valid
		logger.Error().Err(err).Int64("user_id", userID).Msg("conversation state corrupted, context reset")
	}

	return reply, nil
}

// Suggestions returns knowledge-save suggestions accumulated for a user.
func (a *Assistant) Suggestions(userID int64) []core.Suggestion {
	conv, ok := a.store.Snapshot(userID)
	if !ok {
		return nil
	}
	return a.engine.Suggest(conv)
}

// Forget drops the user's remembered conversation.
func (a *Assistant) Forget(userID int64) {
	a.store.Reset(userID)
}

// ContextCount reports how many user contexts are held in memory. There is
// no eviction yet, so this grows with the number of distinct users.
func (a *Assistant) ContextCount() int {
	return a.store.Len()
}
