package section

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Lines longer than this are never heading candidates by any method.
	maxHeadingRunes = 60

	heuristicMinScore = 3
	heuristicMaxWords = 4
	heuristicMinLen   = 3
	heuristicMaxLen   = 30
)

// looksLikeHeading scores a line 0-5 on visual heading cues: all-uppercase
// letters, brevity, no trailing period, moderate length, and adjacency to a
// blank line. It is a gate for fuzzy classification, never a classifier on
// its own.
func looksLikeHeading(line string, prevBlank, nextBlank bool) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	score := 0
	if isUpperAlpha(trimmed) {
		score++
	}
	if len(strings.Fields(trimmed)) < heuristicMaxWords {
		score++
	}
	if !strings.HasSuffix(trimmed, ".") {
		score++
	}
	if n := utf8.RuneCountInString(trimmed); n >= heuristicMinLen && n <= heuristicMaxLen {
		score++
	}
	if prevBlank || nextBlank {
		score++
	}
	return score >= heuristicMinScore
}

// isUpperAlpha reports whether the string contains at least one letter and
// no lowercase letters.
func isUpperAlpha(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
