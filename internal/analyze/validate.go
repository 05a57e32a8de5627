package analyze

import (
	"regexp"
	"strings"
)

var validProblemCategories = map[string]bool{
	"generic_description": true,
	"missing_specifics":   true,
	"missing_keywords":    true,
	"structural":          true,
	"formatting":          true,
	"grammar":             true,
	"length":              true,
	"other":               true,
}

var validSeverities = map[string]bool{
	"critical": true,
	"warning":  true,
	"info":     true,
}

var validSectionStatuses = map[string]bool{
	"present": true,
	"missing": true,
	"weak":    true,
}

var validRecommendationTypes = map[string]bool{
	"add":       true,
	"remove":    true,
	"rewrite":   true,
	"skill":     true,
	"structure": true,
	"career":    true,
}

var validPriorities = map[string]bool{
	"high":   true,
	"medium": true,
	"low":    true,
}

var injectionPattern = regexp.MustCompile(
	`(?i)(ignore\s+(previous|all|above)|system\s*prompt|you\s+are\s+now|` +
		`act\s+as\s+|pretend\s+|forget\s+(everything|all)|override|` +
		`new\s+instructions)`,
)

const (
	maxTitleLen   = 255
	maxSectionLen = 50
)

// ValidateProblem normalizes a model-produced problem in place and
// reports whether it is worth keeping. Unknown categories and severities
// are coerced to defaults rather than dropped.
func ValidateProblem(p *Problem) bool {
	if p == nil {
		return false
	}
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return false
	}
	if injectionPattern.MatchString(p.Title) || injectionPattern.MatchString(p.Description) {
		return false
	}
	if !validProblemCategories[p.Category] {
		p.Category = "other"
	}
	if !validSeverities[p.Severity] {
		p.Severity = "warning"
	}
	p.Title = truncateRunes(p.Title, maxTitleLen)
	p.Section = truncateRunes(strings.TrimSpace(p.Section), maxSectionLen)
	return true
}

// ValidateSectionAnalysis normalizes a per-section review and reports
// whether it carries any content.
func ValidateSectionAnalysis(sa *SectionAnalysis) bool {
	if sa == nil {
		return false
	}
	sa.Section = truncateRunes(strings.ToLower(strings.TrimSpace(sa.Section)), maxSectionLen)
	sa.Analysis = strings.TrimSpace(sa.Analysis)
	if sa.Section == "" || sa.Analysis == "" {
		return false
	}
	if injectionPattern.MatchString(sa.Analysis) {
		return false
	}
	if !validSectionStatuses[sa.Status] {
		sa.Status = "present"
	}
	return true
}

// ValidateRecommendation normalizes a recommendation in place.
func ValidateRecommendation(r *Recommendation) bool {
	if r == nil {
		return false
	}
	r.Title = truncateRunes(strings.TrimSpace(r.Title), maxTitleLen)
	if r.Title == "" {
		return false
	}
	if injectionPattern.MatchString(r.Title) || injectionPattern.MatchString(r.Description) {
		return false
	}
	if !validRecommendationTypes[r.Type] {
		r.Type = "rewrite"
	}
	if !validPriorities[r.Priority] {
		r.Priority = "medium"
	}
	r.Section = truncateRunes(strings.TrimSpace(r.Section), maxSectionLen)
	return true
}

// ValidateSkillGap normalizes a skill gap entry in place.
func ValidateSkillGap(sg *SkillGap) bool {
	if sg == nil {
		return false
	}
	sg.SkillName = truncateRunes(strings.TrimSpace(sg.SkillName), maxTitleLen)
	if sg.SkillName == "" {
		return false
	}
	if !validPriorities[sg.Importance] {
		sg.Importance = "medium"
	}
	sg.CurrentLevel = truncateRunes(sg.CurrentLevel, maxSectionLen)
	sg.RecommendedLevel = truncateRunes(sg.RecommendedLevel, maxSectionLen)
	return true
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
