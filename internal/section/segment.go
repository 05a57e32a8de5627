package section

import (
	"strings"
	"unicode/utf8"
)

// preambleMinRunes is the trimmed length the text before the first heading
// must exceed to become a summary section.
const preambleMinRunes = 20

type headingMark struct {
	idx   int
	typ   Type
	title string
}

// findHeadings scans the line array for section headings. Dictionary hits
// (exact or containment) are accepted directly; fuzzy hits must also pass
// the formatting heuristic, so paragraph text that happens to sit within
// edit distance of a keyword is not promoted to a heading.
func findHeadings(lines []string) []headingMark {
	var marks []headingMark
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if utf8.RuneCountInString(trimmed) > maxHeadingRunes {
			continue
		}
		typ, method := classifyFull(trimmed)
		if method == matchNone {
			continue
		}
		if method == matchFuzzy {
			prevBlank := i == 0 || strings.TrimSpace(lines[i-1]) == ""
			nextBlank := i == len(lines)-1 || strings.TrimSpace(lines[i+1]) == ""
			if !looksLikeHeading(trimmed, prevBlank, nextBlank) {
				continue
			}
		}
		marks = append(marks, headingMark{idx: i, typ: typ, title: trimmed})
	}
	return marks
}

// segment cuts the document into contiguous spans at heading boundaries.
// Text before the first heading becomes a summary section when it carries
// more than preambleMinRunes of trimmed content.
func segment(lines []string, marks []headingMark) []Section {
	if len(marks) == 0 {
		return nil
	}

	var sections []Section
	if first := marks[0].idx; first > 0 {
		pre := strings.TrimSpace(strings.Join(lines[:first], "\n"))
		if utf8.RuneCountInString(pre) > preambleMinRunes {
			sections = append(sections, Section{
				Type:    TypeSummary,
				Title:   "Header",
				Content: pre,
				Start:   0,
				End:     first - 1,
			})
		}
	}

	for k, mark := range marks {
		end := len(lines) - 1
		if k+1 < len(marks) {
			end = marks[k+1].idx - 1
		}
		content := ""
		if mark.idx+1 <= end {
			content = strings.TrimSpace(strings.Join(lines[mark.idx+1:end+1], "\n"))
		}
		sections = append(sections, Section{
			Type:    mark.typ,
			Title:   mark.title,
			Content: content,
			Start:   mark.idx,
			End:     end,
		})
	}
	return sections
}
