package section

import (
	"strings"
	"unicode/utf8"
)

const (
	multiHeaderMaxRunes = 40
	multiHeaderMinWords = 2
	multiHeaderMaxWords = 4
)

// splitMultiHeaders expands lines that glue two section headings together
// ("HOBBY EDUKACJA") into separate lines. Non-candidate lines pass through
// unchanged, so the returned slice may be longer than the input.
func splitMultiHeaders(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if left, right, ok := splitMultiHeader(line); ok {
			out = append(out, left, right)
			continue
		}
		out = append(out, line)
	}
	return out
}

// splitMultiHeader tries every word-boundary split point and accepts the
// first one where both halves classify to different section types.
func splitMultiHeader(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > multiHeaderMaxRunes {
		return "", "", false
	}
	words := strings.Fields(trimmed)
	if len(words) < multiHeaderMinWords || len(words) > multiHeaderMaxWords {
		return "", "", false
	}

	for i := 1; i < len(words); i++ {
		left := strings.Join(words[:i], " ")
		right := strings.Join(words[i:], " ")
		leftType, leftOK := Classify(left)
		rightType, rightOK := Classify(right)
		if leftOK && rightOK && leftType != rightType {
			return left, right, true
		}
	}
	return "", "", false
}
