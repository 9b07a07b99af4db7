package assistant

import (
	"context"
	"fmt"
	"testing"

	"github.com/olegsv/membot/internal/core"
	"github.com/olegsv/membot/internal/service/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppConfig struct{}

func (stubAppConfig) GetRuntimePath() string   { return "" }
func (stubAppConfig) GetDatabasePath() string  { return "" }
func (stubAppConfig) GetSystemPrompt() string  { return "ассистент" }
func (stubAppConfig) GetWindowSize() int       { return 15 }
func (stubAppConfig) IsTelegramSelected() bool { return false }

type stubProviderConfig struct{}

func (stubProviderConfig) GetModel() string        { return "test-model" }
func (stubProviderConfig) GetAPIKey() string       { return "" }
func (stubProviderConfig) GetMaxTokens() int       { return 256 }
func (stubProviderConfig) GetTemperature() float64 { return 0.7 }

type stubCompletion struct {
	reply   string
	err     error
	windows [][]core.Message
}

func (s *stubCompletion) Complete(_ context.Context, window []core.Message, _ core.CompletionParams) (string, error) {
	s.windows = append(s.windows, window)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestAssistant(provider *stubCompletion) *Assistant {
	return NewAssistant(stubAppConfig{}, stubProviderConfig{}, provider, memory.NewStore())
}

func TestRespond_RecordsPair(t *testing.T) {
	provider := &stubCompletion{reply: "здравствуйте"}
	a := newTestAssistant(provider)

	reply, err := a.Respond(context.Background(), 7, "расскажи про проект")
	require.NoError(t, err)
	assert.Equal(t, "здравствуйте", reply)

	// first call sees only system prompt + the new user text
	require.Len(t, provider.windows, 1)
	require.Len(t, provider.windows[0], 2)
	assert.Equal(t, core.RoleSystem, provider.windows[0][0].Role)
	assert.Equal(t, "расскажи про проект", provider.windows[0][1].Content)

	// the pair is remembered for the next turn
	_, err = a.Respond(context.Background(), 7, "а подробнее?")
	require.NoError(t, err)
	require.Len(t, provider.windows[1], 4)
	assert.Equal(t, "расскажи про проект", provider.windows[1][1].Content)
	assert.Equal(t, "здравствуйте", provider.windows[1][2].Content)
}

func TestRespond_ProviderFailurePropagates(t *testing.T) {
	provider := &stubCompletion{err: core.ErrRateLimited}
	a := newTestAssistant(provider)

	_, err := a.Respond(context.Background(), 7, "привет")
	require.ErrorIs(t, err, core.ErrRateLimited)

	// a failed turn must not pollute memory
	assert.Empty(t, a.Suggestions(7))
}

func TestRespond_CompressesAtThreshold(t *testing.T) {
	provider := &stubCompletion{reply: "ок"}
	a := newTestAssistant(provider)

	for i := 0; i < 25; i++ {
		_, err := a.Respond(context.Background(), 7, fmt.Sprintf("сообщение %d", i))
		require.NoError(t, err)
	}

	// windows stay bounded no matter how long the conversation runs
	for _, w := range provider.windows {
		assert.LessOrEqual(t, len(w), 15+3)
	}

	last := provider.windows[len(provider.windows)-1]
	assert.Contains(t, last[1].Content, "Previous context:")
}

func TestSuggestions(t *testing.T) {
	provider := &stubCompletion{reply: "ок"}
	a := newTestAssistant(provider)

	_, err := a.Respond(context.Background(), 7, "Срочно: встреча с клиентом по проекту 05.09.2026")
	require.NoError(t, err)

	got := a.Suggestions(7)
	require.NotEmpty(t, got)
	targets := make(map[string]bool)
	for _, s := range got {
		targets[s.Target] = true
		assert.Greater(t, s.Confidence, 0.3)
	}
	assert.True(t, targets["MEETINGS.md"])
	assert.True(t, targets["PROJECTS.md"])
	assert.True(t, targets["CLIENTS.md"])
}

func TestForget(t *testing.T) {
	provider := &stubCompletion{reply: "ок"}
	a := newTestAssistant(provider)

	_, err := a.Respond(context.Background(), 7, "встреча по проекту с клиентом завтра срочно")
	require.NoError(t, err)
	require.NotEmpty(t, a.Suggestions(7))

	a.Forget(7)
	assert.Empty(t, a.Suggestions(7))
	assert.Equal(t, 1, a.ContextCount())
}
