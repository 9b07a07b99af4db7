package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		a := Analyze(text)
		assert.Zero(t, a.Score)
		assert.Empty(t, a.Topics)
		assert.Empty(t, a.Facts)
		assert.False(t, a.Important)
	}
}

func TestAnalyze_ScoreStaysInRange(t *testing.T) {
	texts := []string{
		"привет",
		"проект задача решение дедлайн клиент контракт срочно план цель результат статус проблема идея встреча 15.08.2025 100 руб " + strings.Repeat("x", 120),
		"project deadline urgent client contract plan goal 21/12/2025 50% meeting task decision",
		"just a plain sentence without any signal",
	}
	for _, text := range texts {
		a := Analyze(text)
		assert.GreaterOrEqual(t, a.Score, 0.0, "text: %s", text)
		assert.LessOrEqual(t, a.Score, 1.0, "text: %s", text)
	}
}

func TestAnalyze_MeetingScenario(t *testing.T) {
	a := Analyze("Встреча назначена на 15.08.2025, обсудим статус проекта")

	// keywords встреча, статус, проект plus the date pattern
	assert.True(t, a.Important)
	assert.GreaterOrEqual(t, a.Score, 0.5)
	assert.Contains(t, a.Topics, "встреча")
	assert.Contains(t, a.Topics, "проект")
	assert.Contains(t, a.Topics, "статус")
	assert.Contains(t, a.Facts, "contains a date")
}

func TestAnalyze_Rules(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		score     float64
		topics    []string
		facts     []string
		important bool
	}{
		{
			name:   "single keyword",
			text:   "как дела с проектом?",
			score:  0.1,
			topics: []string{"проект"},
		},
		{
			name:  "date only",
			text:  "давай 01.02.2026",
			score: 0.2,
			facts: []string{"contains a date"},
		},
		{
			name:  "percentage",
			text:  "выросло на 15%",
			score: 0.15,
			facts: []string{"contains numeric data"},
		},
		{
			name:  "currency amount",
			text:  "бюджет 5000 руб",
			score: 0.15,
			facts: []string{"contains numeric data"},
		},
		{
			name:  "long text bonus",
			text:  strings.Repeat("ы", 101),
			score: 0.1,
		},
		{
			name:      "keyword repeated counts once",
			text:      "задача задача задача",
			score:     0.1,
			topics:    []string{"задача"},
			important: false,
		},
		{
			name:      "english keywords",
			text:      "urgent: new contract with the client",
			score:     0.1 * 3,
			topics:    []string{"client", "contract", "urgent"},
			important: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.text)
			assert.InDelta(t, tt.score, a.Score, 1e-9)
			for _, topic := range tt.topics {
				assert.Contains(t, a.Topics, topic)
			}
			for _, fact := range tt.facts {
				assert.Contains(t, a.Facts, fact)
			}
			assert.Equal(t, tt.important, a.Important)
		})
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "Срочно: встреча с клиентом 03.09.2026, бюджет 120000 руб"
	first := Analyze(text)
	second := Analyze(text)
	assert.Equal(t, first, second)
}
