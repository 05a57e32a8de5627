package analyze

// Extraction holds the structured data pulled out of a CV by the first
// prompt, or by the regex fallback when the prompt fails.
type Extraction struct {
	Name             string   `json:"name"`
	Email            string   `json:"email,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Skills           []string `json:"skills"`
	ExperienceYears  *float64 `json:"experience_years"`
	Education        string   `json:"education"`
	SectionsDetected []string `json:"sections_detected"`
	HasContactInfo   bool     `json:"has_contact_info"`
	HasSummary       bool     `json:"has_summary"`
}

// Problem is a single issue found in the CV.
type Problem struct {
	Category     string `json:"category"`
	Severity     string `json:"severity"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Section      string `json:"section"`
	AffectedText string `json:"affected_text"`
}

// SectionAnalysis is the qualitative review of one CV section.
type SectionAnalysis struct {
	Section     string   `json:"section"`
	Status      string   `json:"status"`
	Analysis    string   `json:"analysis"`
	Suggestions []string `json:"suggestions"`
}

// Recommendation is an actionable improvement suggestion.
type Recommendation struct {
	Type          string `json:"type"`
	Priority      string `json:"priority"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Section       string `json:"section"`
	SuggestedText string `json:"suggested_text"`
}

// SkillGap names a skill the candidate should develop.
type SkillGap struct {
	SkillName         string `json:"skill_name"`
	CurrentLevel      string `json:"current_level"`
	RecommendedLevel  string `json:"recommended_level"`
	Importance        string `json:"importance"`
	LearningResources string `json:"learning_resources"`
}

// Feedback is the combined output of the two-prompt analysis pipeline.
// Partial is set when one of the two prompts failed but the other
// produced usable results.
type Feedback struct {
	Summary         string            `json:"summary"`
	Extraction      Extraction        `json:"extraction"`
	Problems        []Problem         `json:"problems"`
	SectionAnalyses []SectionAnalysis `json:"section_analyses"`
	Recommendations []Recommendation  `json:"recommendations"`
	SkillGaps       []SkillGap        `json:"skill_gaps"`
	TokensUsed      int               `json:"tokens_used"`
	Partial         bool              `json:"partial"`
	ShortText       bool              `json:"short_text,omitempty"`
}
