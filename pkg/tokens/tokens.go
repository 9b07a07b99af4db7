package tokens

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

func encoder() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		// cl100k_base covers the OpenAI-compatible models we talk to;
		// close enough for budgeting on the rest
		tk, _ = tiktoken.GetEncoding("cl100k_base")
	})
	return tk
}

// Estimate returns the approximate token count of a text. Falls back to a
// rune/4 heuristic if the encoding is unavailable (e.g. no cached BPE data).
func Estimate(text string) int {
	if enc := encoder(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return len([]rune(text))/4 + 1
}
