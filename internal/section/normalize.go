package section

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// OCR-damaged headings come out letter-spaced ("D O Ś W I A D C Z E N I E").
// NormalizeOCR repairs them line by line; everything else passes through
// untouched.

const (
	spacedHeaderMinLen    = 6   // trimmed length must exceed 5
	spacedHeaderIsolation = 0.7 // share of non-space runes standing alone
	spacedHeaderMaxWords  = 4
	sentencePunctuation   = ".,;:!?()[]{}"
	resegmentMinWords     = 2
	resegmentMinWordRunes = 3
)

var doubleSpaceRe = regexp.MustCompile(` {2,}`)

// NormalizeOCR collapses letter-spaced header lines in the given text.
// Blank lines and lines that do not qualify as spaced headers are returned
// unchanged.
func NormalizeOCR(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = normalizeLine(line)
	}
	return strings.Join(lines, "\n")
}

func normalizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return line
	}
	if utf8.RuneCountInString(trimmed) < spacedHeaderMinLen {
		return line
	}
	if strings.ContainsAny(trimmed, sentencePunctuation) {
		return line
	}
	if isolationRatio(trimmed) < spacedHeaderIsolation {
		return line
	}
	collapsed := collapseSpaced(trimmed)
	if len(strings.Fields(collapsed)) > spacedHeaderMaxWords {
		return line
	}
	return collapsed
}

// isolationRatio reports the share of non-space runes that have a space or a
// string boundary on both sides.
func isolationRatio(s string) float64 {
	runes := []rune(s)
	total := 0
	isolated := 0
	for i, r := range runes {
		if r == ' ' {
			continue
		}
		total++
		leftOK := i == 0 || runes[i-1] == ' '
		rightOK := i == len(runes)-1 || runes[i+1] == ' '
		if leftOK && rightOK {
			isolated++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(isolated) / float64(total)
}

// collapseSpaced rejoins letter-spaced text. Runs of 2+ spaces are genuine
// word boundaries; single spaces within each chunk are deleted. A line with
// no double-space run collapses to one blob, which we then try to re-segment
// against the heading vocabulary.
func collapseSpaced(s string) string {
	chunks := doubleSpaceRe.Split(s, -1)
	if len(chunks) > 1 {
		words := make([]string, 0, len(chunks))
		for _, chunk := range chunks {
			word := strings.ReplaceAll(chunk, " ", "")
			if word != "" {
				words = append(words, word)
			}
		}
		return strings.Join(words, " ")
	}

	blob := strings.ReplaceAll(s, " ", "")
	if words, ok := resegmentBlob(blob); ok {
		return strings.Join(words, " ")
	}
	// No confident guess: leave the blob whole rather than mis-split it.
	return blob
}

// resegmentBlob decomposes a glued blob into known heading-vocabulary words
// by greedy longest-prefix matching, accent- and case-insensitively. It
// only succeeds when the whole blob decomposes into at least two words.
func resegmentBlob(blob string) ([]string, bool) {
	original := []rune(blob)
	folded := []rune(foldLower(blob))
	if len(folded) != len(original) {
		return nil, false
	}

	var words []string
	pos := 0
	for pos < len(folded) {
		n := longestVocabPrefix(folded[pos:])
		if n == 0 {
			return nil, false
		}
		words = append(words, string(original[pos:pos+n]))
		pos += n
	}
	if len(words) < resegmentMinWords {
		return nil, false
	}
	return words, true
}

func longestVocabPrefix(runes []rune) int {
	max := maxVocabWordLen
	if len(runes) < max {
		max = len(runes)
	}
	for n := max; n >= resegmentMinWordRunes; n-- {
		if headingVocab[string(runes[:n])] {
			return n
		}
	}
	return 0
}
