package section

import (
	"strings"
	"unicode/utf8"
)

// Content-based fallback detectors. They run only when the heading-based
// pass found fewer sections than Config.MinSections, in a fixed order, and
// each may contribute at most one block for a type not already present.

type span struct {
	start, end int
}

const (
	experienceMaxGap = 2
	contactMaxGap    = 3
	languagesMaxGap  = 3
	languagesMinHits = 2
	educationMaxGap  = 5
	educationPadding = 1
	phoneMinDigits   = 7
	phoneMaxDigits   = 15
)

type fallbackDetector struct {
	typ   Type
	title string
	scan  func(d *Detector, lines []string) []span
}

var fallbackDetectors = []fallbackDetector{
	{TypeExperience, "Experience (detected)", (*Detector).scanExperience},
	{TypeSkills, "Skills (detected)", (*Detector).scanSkills},
	{TypeContact, "Contact (detected)", (*Detector).scanContact},
	{TypeLanguages, "Languages (detected)", (*Detector).scanLanguages},
	{TypeEducation, "Education (detected)", (*Detector).scanEducation},
}

// applyFallbacks augments the heading-based sections with content-detected
// blocks and a trailing "other" section for substantial unclaimed text.
func (d *Detector) applyFallbacks(lines []string, sections []Section) []Section {
	claimed := make([]bool, len(lines))
	for _, s := range sections {
		markClaimed(claimed, s.Start, s.End)
	}
	present := make(map[Type]bool, len(sections))
	for _, s := range sections {
		present[s.Type] = true
	}

	for _, det := range fallbackDetectors {
		if present[det.typ] {
			continue
		}
		for _, blk := range det.scan(d, lines) {
			if overlapsClaimed(claimed, blk.start, blk.end) {
				continue
			}
			sections = append(sections, Section{
				Type:    det.typ,
				Title:   det.title,
				Content: joinLines(lines, blk.start, blk.end),
				Start:   blk.start,
				End:     blk.end,
			})
			markClaimed(claimed, blk.start, blk.end)
			present[det.typ] = true
			break
		}
	}

	// With no sections at all, the terminal whole-document fallback applies
	// instead of an unclaimed-text section.
	if len(sections) > 0 {
		if other, ok := d.collectUnclaimed(lines, claimed); ok {
			sections = append(sections, other)
		}
	}
	return sections
}

// collectUnclaimed aggregates every non-blank line not claimed by any
// section into a single trailing "other" section, provided the combined
// text is long enough to matter.
func (d *Detector) collectUnclaimed(lines []string, claimed []bool) (Section, bool) {
	var parts []string
	first, last := -1, -1
	for i, line := range lines {
		if claimed[i] || strings.TrimSpace(line) == "" {
			continue
		}
		parts = append(parts, line)
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return Section{}, false
	}
	content := strings.TrimSpace(strings.Join(parts, "\n"))
	if utf8.RuneCountInString(content) <= d.cfg.MinOtherChars {
		return Section{}, false
	}
	return Section{
		Type:    TypeOther,
		Title:   "Other",
		Content: content,
		Start:   first,
		End:     last,
	}, true
}

// scanExperience finds runs of lines carrying a year or year range, merging
// runs whose date-bearing lines are close together.
func (d *Detector) scanExperience(lines []string) []span {
	var hits []int
	for i, line := range lines {
		if yearRangeRe.MatchString(line) {
			hits = append(hits, i)
		}
	}
	return groupHits(hits, experienceMaxGap, 1)
}

// scanSkills finds runs of consecutive lines that are either short,
// low-token lines or mention a known technology.
func (d *Detector) scanSkills(lines []string) []span {
	var blocks []span
	run := -1
	flush := func(endExclusive int) {
		if run >= 0 && endExclusive-run >= d.cfg.SkillsMinRun {
			blocks = append(blocks, span{run, endExclusive - 1})
		}
		run = -1
	}
	for i, line := range lines {
		if d.skillsLine(line) {
			if run < 0 {
				run = i
			}
			continue
		}
		flush(i)
	}
	flush(len(lines))
	return blocks
}

func (d *Detector) skillsLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if utf8.RuneCountInString(trimmed) < d.cfg.SkillsShortLine &&
		len(strings.Fields(trimmed)) <= d.cfg.SkillsMaxTokens {
		return true
	}
	return len(techMatcher.Match([]byte(foldLower(trimmed)))) > 0
}

// scanContact finds lines with an email address, a plausible phone number,
// or a URL/social handle.
func (d *Detector) scanContact(lines []string) []span {
	var hits []int
	for i, line := range lines {
		if contactLine(line) {
			hits = append(hits, i)
		}
	}
	return groupHits(hits, contactMaxGap, 1)
}

func contactLine(line string) bool {
	if emailRe.MatchString(line) || urlRe.MatchString(line) {
		return true
	}
	for _, m := range phoneRe.FindAllString(line, -1) {
		if twoYearsRe.MatchString(strings.TrimSpace(m)) {
			continue
		}
		digits := countDigits(m)
		if digits >= phoneMinDigits && digits <= phoneMaxDigits {
			return true
		}
	}
	return false
}

// scanLanguages finds groups of lines naming languages or proficiency
// levels; a group needs at least two matching lines.
func (d *Detector) scanLanguages(lines []string) []span {
	var hits []int
	for i, line := range lines {
		if languageLine(line) {
			hits = append(hits, i)
		}
	}
	return groupHits(hits, languagesMaxGap, languagesMinHits)
}

func languageLine(line string) bool {
	folded := foldLower(line)
	if proficiencyRe.MatchString(folded) {
		return true
	}
	for _, name := range languageNames {
		if containsWord(folded, name) {
			return true
		}
	}
	return false
}

// scanEducation finds groups of lines mentioning institutions or degrees,
// padded by one line of context on each side.
func (d *Detector) scanEducation(lines []string) []span {
	var hits []int
	for i, line := range lines {
		folded := foldLower(line)
		for _, kw := range institutionKeywords {
			if strings.Contains(folded, kw) {
				hits = append(hits, i)
				break
			}
		}
	}
	blocks := groupHits(hits, educationMaxGap, 1)
	for i := range blocks {
		if blocks[i].start >= educationPadding {
			blocks[i].start -= educationPadding
		}
		if blocks[i].end+educationPadding < len(lines) {
			blocks[i].end += educationPadding
		}
	}
	return blocks
}

// groupHits merges hit line indices into spans where consecutive hits are at
// most maxGap lines apart, dropping groups with fewer than minHits hits.
func groupHits(hits []int, maxGap, minHits int) []span {
	if len(hits) == 0 {
		return nil
	}
	var blocks []span
	start := hits[0]
	prev := hits[0]
	count := 1
	for _, h := range hits[1:] {
		if h-prev <= maxGap {
			prev = h
			count++
			continue
		}
		if count >= minHits {
			blocks = append(blocks, span{start, prev})
		}
		start, prev, count = h, h, 1
	}
	if count >= minHits {
		blocks = append(blocks, span{start, prev})
	}
	return blocks
}

func markClaimed(claimed []bool, start, end int) {
	for i := start; i <= end && i < len(claimed); i++ {
		claimed[i] = true
	}
}

func overlapsClaimed(claimed []bool, start, end int) bool {
	for i := start; i <= end && i < len(claimed); i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

func joinLines(lines []string, start, end int) string {
	return strings.TrimSpace(strings.Join(lines[start:end+1], "\n"))
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func containsWord(s, word string) bool {
	idx := 0
	for {
		j := strings.Index(s[idx:], word)
		if j < 0 {
			return false
		}
		j += idx
		before := j == 0 || !isWordRune(rune(s[j-1]))
		afterIdx := j + len(word)
		after := afterIdx >= len(s) || !isWordRune(rune(s[afterIdx]))
		if before && after {
			return true
		}
		idx = j + len(word)
	}
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
