package analyze

import (
	"strings"
	"testing"
)

func TestCleanTextCollapsesWhitespace(t *testing.T) {
	in := "Jan  Kowalski\t Developer\n\n\n\nWarszawa"
	got := CleanText(in, 0)
	want := "Jan Kowalski Developer\n\nWarszawa"
	if got != want {
		t.Fatalf("CleanText = %q, want %q", got, want)
	}
}

func TestCleanTextDropsLeadingBlankLines(t *testing.T) {
	got := CleanText("\n\n\nfirst line", 0)
	if got != "first line" {
		t.Fatalf("CleanText = %q, want %q", got, "first line")
	}
}

func TestCleanTextTruncatesAtLineBoundary(t *testing.T) {
	line := strings.Repeat("a", 10)
	in := strings.Join([]string{line, line, line, line, line}, "\n")

	got := CleanText(in, 25)
	want := line + "\n" + line
	if got != want {
		t.Fatalf("CleanText = %q, want %q", got, want)
	}
}

func TestCleanTextUnlimitedWhenMaxZero(t *testing.T) {
	in := strings.Repeat("word ", 1000)
	got := CleanText(in, 0)
	if len(got) < 4000 {
		t.Fatalf("expected no truncation, got %d chars", len(got))
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens(""); got != 0 {
		t.Errorf("empty text = %d tokens, want 0", got)
	}
	if got := EstimateTokens("word"); got != 1 {
		t.Errorf("single word = %d tokens, want 1", got)
	}
	got := EstimateTokens("one two three four five six seven eight nine ten")
	if got < 10 || got > 15 {
		t.Errorf("ten words = %d tokens, want roughly 13", got)
	}
}
