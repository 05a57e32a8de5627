package section

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	minHeadingRunes  = 3
	maxFuzzyDistance = 2
)

// matchMethod records which classifier stage produced a hit. The formatting
// heuristic gates fuzzy hits during document scanning.
type matchMethod int

const (
	matchNone matchMethod = iota
	matchExact
	matchContains
	matchFuzzy
)

// Classify maps a candidate heading to a section type. The boolean is false
// when no stage matches; callers must treat that as "not a heading", which is
// distinct from a successful match to TypeOther.
func Classify(heading string) (Type, bool) {
	typ, method := classifyFull(heading)
	return typ, method != matchNone
}

// classifyFull runs the three matching stages in order: exact equality,
// containment in either direction, then accent-insensitive Levenshtein
// distance. First stage to produce a hit wins.
func classifyFull(heading string) (Type, matchMethod) {
	cleaned := cleanHeading(heading)
	if utf8.RuneCountInString(cleaned) < minHeadingRunes {
		return "", matchNone
	}

	for _, t := range typeOrder {
		for _, kw := range sectionKeywords[t] {
			if cleaned == kw {
				return t, matchExact
			}
		}
	}

	for _, t := range typeOrder {
		for _, kw := range sectionKeywords[t] {
			if strings.Contains(cleaned, kw) || strings.Contains(kw, cleaned) {
				return t, matchContains
			}
		}
	}

	if t, ok := closestType(Fold(cleaned)); ok {
		return t, matchFuzzy
	}
	return "", matchNone
}

// closestType finds the keyword closest to the folded heading. Ties at the
// minimum distance resolve to the alphabetically smaller type because
// typeOrder is sorted and replacement requires a strictly smaller distance.
func closestType(folded string) (Type, bool) {
	bestDist := maxFuzzyDistance + 1
	var best Type
	for _, t := range typeOrder {
		for _, kw := range foldedKeywords[t] {
			if d := fuzzy.LevenshteinDistance(folded, kw); d < bestDist {
				bestDist = d
				best = t
			}
		}
	}
	if bestDist > maxFuzzyDistance {
		return "", false
	}
	return best, true
}

// cleanHeading lowercases a candidate and strips leading enumeration and
// bullet markers ("2. ", "- ", "# ", ...).
func cleanHeading(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = headingMarkerRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
