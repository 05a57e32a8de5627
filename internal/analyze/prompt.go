package analyze

import (
	"fmt"
	"strings"

	"github.com/mkrol/cvsift/internal/section"
)

const SystemPrompt = "You are a CV analyst. Respond only in valid JSON."

const extractionPrompt = `Extract from CV:

%s

Return JSON:
{
    "extracted": {
        "name": "",
        "skills": [],
        "experience_years": null,
        "education": "",
        "sections_detected": [],
        "has_contact_info": false,
        "has_summary": false
    },
    "problems": [
        {
            "category": "generic_description|missing_specifics|missing_keywords|structural|formatting|grammar|length|other",
            "severity": "critical|warning|info",
            "title": "",
            "description": "",
            "section": "",
            "affected_text": ""
        }
    ]
}`

const sectionAnalysisPrompt = `Analyze this CV qualitatively. Do NOT assign numerical scores.
For each detected section, provide textual analysis: strengths, gaps, and specific improvement suggestions.
For important sections that are MISSING from the CV, note what should be added and why.

DETECTED SECTIONS: %s

PROBLEMS FOUND: %s

SECTION CONTENTS:
%s

Return JSON:
{
    "summary": "2-4 sentence qualitative summary of the CV - strengths, weaknesses, overall impression. No numbers or scores.",
    "section_analyses": [
        {
            "section": "section name (e.g. experience, education, skills, summary, projects, certificates, languages, interests)",
            "status": "present|missing|weak",
            "analysis": "2-4 sentences: what is good, what is lacking, what could be improved",
            "suggestions": ["specific actionable suggestion 1", "suggestion 2"]
        }
    ],
    "recommendations": [
        {
            "type": "add|remove|rewrite|skill|structure|career",
            "priority": "high|medium|low",
            "title": "",
            "description": "",
            "section": "",
            "suggested_text": ""
        }
    ],
    "skill_gaps": [
        {
            "skill_name": "",
            "current_level": "",
            "recommended_level": "",
            "importance": "high|medium|low",
            "learning_resources": ""
        }
    ]
}`

// BuildExtractionPrompt embeds the cleaned CV text into the first-stage
// extraction prompt.
func BuildExtractionPrompt(cvText string) string {
	return fmt.Sprintf(extractionPrompt, cvText)
}

// BuildSectionAnalysisPrompt builds the second-stage prompt from the
// detected sections and the problem titles found during extraction.
func BuildSectionAnalysisPrompt(sections []section.Section, problems []Problem) string {
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, string(s.Type))
	}
	sectionsList := "None detected"
	if len(names) > 0 {
		sectionsList = strings.Join(names, ", ")
	}

	titles := make([]string, 0, len(problems))
	for _, p := range problems {
		if p.Title != "" {
			titles = append(titles, p.Title)
		}
	}
	problemsSummary := "None"
	if len(titles) > 0 {
		problemsSummary = strings.Join(titles, ", ")
	}

	var sb strings.Builder
	for _, s := range sections {
		sb.WriteString("=== ")
		sb.WriteString(string(s.Type))
		sb.WriteString(" ===\n")
		sb.WriteString(CleanText(s.Content, sectionContentMaxRunes))
		sb.WriteString("\n\n")
	}
	contents := strings.TrimSpace(sb.String())
	if contents == "" {
		contents = "(no section content available)"
	}

	return fmt.Sprintf(sectionAnalysisPrompt, sectionsList, problemsSummary, contents)
}

const sectionContentMaxRunes = 1500
