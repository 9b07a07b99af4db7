package telegram

import (
	"strings"
	"testing"
)

func TestSplitHTML(t *testing.T) {
	if got := splitHTML("short", 100); len(got) != 1 || got[0] != "short" {
		t.Errorf("short text must stay in one chunk, got %v", got)
	}

	long := strings.Repeat("строка текста\n", 100)
	chunks := splitHTML(long, 200)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 200 {
			t.Errorf("chunk %d exceeds limit: %d", i, len(chunk))
		}
	}
}

func TestSplitHTML_NoNewlines(t *testing.T) {
	long := strings.Repeat("x", 500)
	chunks := splitHTML(long, 200)
	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	if total != 500 {
		t.Errorf("content lost while splitting: got %d of 500 bytes", total)
	}
}
