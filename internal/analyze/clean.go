package analyze

import (
	"strings"
	"unicode"
)

// CleanText prepares extracted CV text for prompting: control characters
// are stripped, horizontal whitespace runs collapse to one space, runs of
// blank lines collapse to one, and the result is truncated to maxRunes at
// a line boundary where possible.
func CleanText(text string, maxRunes int) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.FieldsFunc(line, func(r rune) bool {
			return unicode.IsSpace(r) || unicode.IsControl(r)
		}), " ")
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	cleaned := strings.Join(out, "\n")
	if maxRunes <= 0 {
		return cleaned
	}

	runes := []rune(cleaned)
	if len(runes) <= maxRunes {
		return cleaned
	}
	cut := string(runes[:maxRunes])
	// Prefer ending on a full line if one falls in the second half.
	if idx := strings.LastIndex(cut, "\n"); idx > maxRunes/2 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}

// EstimateTokens gives a rough token count for budgeting prompt sizes.
// Exact tokenization is not required here.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	words := len(strings.Fields(text))
	tokens := int(float64(words) * 1.33)
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}
