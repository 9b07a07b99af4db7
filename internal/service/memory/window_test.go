package memory

import (
	"fmt"
	"testing"
	"time"

	"github.com/olegsv/membot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSystemPrompt = "Ты — личный ассистент."

func TestBuildWindow_EmptyContext(t *testing.T) {
	asm := NewAssembler(15)
	win := asm.BuildWindow(testSystemPrompt, ConversationContext{}, "привет")

	require.Len(t, win, 2)
	assert.Equal(t, core.Message{Role: core.RoleSystem, Content: testSystemPrompt}, win[0])
	assert.Equal(t, core.Message{Role: core.RoleUser, Content: "привет"}, win[1])
}

func TestBuildWindow_BoundedRegardlessOfHistory(t *testing.T) {
	asm := NewAssembler(15)

	c := ConversationContext{IsCompressed: true, Summary: "старый контекст"}
	for i := 0; i < 500; i++ {
		role := core.RoleUser
		if i%2 == 1 {
			role = core.RoleAssistant
		}
		c.Messages = append(c.Messages, ConversationMessage{Role: role, Content: fmt.Sprintf("msg %d", i)})
	}
	c.MessageCount = len(c.Messages)

	win := asm.BuildWindow(testSystemPrompt, c, "новый вопрос")
	assert.LessOrEqual(t, len(win), asm.Window+3)

	// the most recent W messages survive, in original order
	assert.Equal(t, "msg 485", win[2].Content)
	assert.Equal(t, "msg 499", win[len(win)-2].Content)
	assert.Equal(t, "новый вопрос", win[len(win)-1].Content)
}

func TestBuildWindow_SummaryHeader(t *testing.T) {
	asm := NewAssembler(15)
	c := ConversationContext{
		IsCompressed: true,
		Summary:      "обсуждали проект",
		Messages: []ConversationMessage{
			{Role: core.RoleSystem, Content: "обсуждали проект", IsCompressed: true},
			{Role: core.RoleUser, Content: "а дальше?"},
		},
	}
	c.MessageCount = len(c.Messages)

	win := asm.BuildWindow(testSystemPrompt, c, "ещё вопрос")
	require.Len(t, win, 4)
	assert.Equal(t, core.RoleSystem, win[1].Role)
	assert.Equal(t, "Previous context: обсуждали проект", win[1].Content)

	// the synthetic message itself never appears as a raw entry
	for _, m := range win[2 : len(win)-1] {
		assert.NotEqual(t, "обсуждали проект", m.Content)
	}
}

func TestBuildWindow_SkipsBlankMessages(t *testing.T) {
	asm := NewAssembler(15)
	c := ConversationContext{
		Messages: []ConversationMessage{
			{Role: core.RoleUser, Content: "видимое"},
			{Role: core.RoleAssistant, Content: "   "},
			{Role: core.RoleAssistant, Content: ""},
			{Role: core.RoleAssistant, Content: "ответ"},
		},
	}
	c.MessageCount = len(c.Messages)

	win := asm.BuildWindow(testSystemPrompt, c, "q")
	require.Len(t, win, 4)
	assert.Equal(t, "видимое", win[1].Content)
	assert.Equal(t, "ответ", win[2].Content)
}

func TestBuildWindow_PreservesOrder(t *testing.T) {
	asm := NewAssembler(5)
	base := time.Now()
	var c ConversationContext
	for i := 0; i < 8; i++ {
		c.Messages = append(c.Messages, ConversationMessage{
			Role:      core.RoleUser,
			Content:   fmt.Sprintf("%d", i),
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
	}
	c.MessageCount = len(c.Messages)

	win := asm.BuildWindow(testSystemPrompt, c, "q")
	got := make([]string, 0)
	for _, m := range win[1 : len(win)-1] {
		got = append(got, m.Content)
	}
	assert.Equal(t, []string{"3", "4", "5", "6", "7"}, got)
}

func TestNewAssembler_DefaultWindow(t *testing.T) {
	assert.Equal(t, defaultWindowSize, NewAssembler(0).Window)
}
