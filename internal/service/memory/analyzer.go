package memory

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Analysis is the result of scoring one message text.
type Analysis struct {
	Score     float64
	Topics    []string
	Facts     []string
	Important bool
}

const (
	keywordWeight    = 0.1
	dateWeight       = 0.2
	numericWeight    = 0.15
	longTextWeight   = 0.1
	longTextRunes    = 100
	importanceCutoff = 0.3
)

// keywordRules is the declarative topic vocabulary. Each distinct keyword
// found as a substring of the lower-cased input contributes its weight once
// and records the keyword as a topic.
var keywordRules = []string{
	"проект", "задача", "решение", "дедлайн", "клиент", "контракт",
	"срочно", "план", "цель", "результат", "статус", "проблема",
	"идея", "встреча",
	"project", "task", "decision", "deadline", "client", "contract",
	"urgent", "plan", "goal", "result", "status", "problem",
	"idea", "meeting",
}

type patternRule struct {
	re     *regexp.Regexp
	weight float64
	fact   string
}

var patternRules = []patternRule{
	{
		// day.month.year with ., / or - separators
		re:     regexp.MustCompile(`\d{1,2}[./-]\d{1,2}[./-]\d{2,4}`),
		weight: dateWeight,
		fact:   "contains a date",
	},
	{
		// percentage, or a number followed by a currency/time unit
		re:     regexp.MustCompile(`(?i)\d+(?:[.,]\d+)?\s*(?:%|руб|₽|долл|евро|час|дня|дней|день|usd|eur|\$|€|hour|day|dollar)`),
		weight: numericWeight,
		fact:   "contains numeric data",
	},
}

// Analyze scores a message text for how worth remembering it is. Stateless
// and total: blank input yields a zero result, never an error.
func Analyze(text string) Analysis {
	var a Analysis
	if strings.TrimSpace(text) == "" {
		return a
	}

	lowered := strings.ToLower(text)

	for _, kw := range keywordRules {
		if strings.Contains(lowered, kw) {
			a.Score += keywordWeight
			a.Topics = append(a.Topics, kw)
		}
	}

	for _, rule := range patternRules {
		if rule.re.MatchString(text) {
			a.Score += rule.weight
			a.Facts = append(a.Facts, rule.fact)
		}
	}

	if utf8.RuneCountInString(text) > longTextRunes {
		a.Score += longTextWeight
	}

	if a.Score > 1.0 {
		a.Score = 1.0
	}
	a.Important = a.Score > importanceCutoff
	return a
}
