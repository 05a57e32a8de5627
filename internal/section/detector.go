package section

import (
	"sort"
	"strings"
)

// Detect runs the full pipeline: OCR normalization, multi-header splitting,
// heading detection, segmentation, and (when too few sections were found)
// the content-based fallback pass. It is pure computation over the input
// text; malformed input degrades to a whole-document section or an empty
// result, never an error.
func (d *Detector) Detect(text string) []Section {
	if strings.TrimSpace(text) == "" {
		return []Section{}
	}

	normalized := NormalizeOCR(text)
	lines := splitMultiHeaders(strings.Split(normalized, "\n"))

	marks := findHeadings(lines)
	sections := segment(lines, marks)

	if len(sections) < d.cfg.MinSections {
		sections = d.applyFallbacks(lines, sections)
	}

	if len(sections) == 0 {
		// Terminal fallback: no heading and nothing recognizable, but the
		// document has text.
		return []Section{{
			Type:    TypeOther,
			Title:   "Full Document",
			Content: strings.TrimSpace(strings.Join(lines, "\n")),
			Start:   0,
			End:     len(lines) - 1,
			Order:   0,
		}}
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Start < sections[j].Start
	})
	for i := range sections {
		sections[i].Order = i
	}
	return sections
}
