package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mkrol/cvsift/internal/section"
)

// Analyzer runs the two-prompt feedback pipeline: extraction with problem
// detection first, then a qualitative per-section review. If exactly one
// of the prompts fails the result is marked Partial; if both fail the
// analysis errors out.
type Analyzer struct {
	client *Client
	logger *slog.Logger
}

func NewAnalyzer(client *Client, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{client: client, logger: logger}
}

// Enabled reports whether analysis can run at all.
func (a *Analyzer) Enabled() bool {
	return a != nil && a.client.Enabled()
}

const (
	promptTextMaxRunes = 4000
	shortTextRunes     = 200
)

type extractionResponse struct {
	Extracted Extraction `json:"extracted"`
	Problems  []Problem  `json:"problems"`
}

type sectionAnalysisResponse struct {
	Summary         string            `json:"summary"`
	SectionAnalyses []SectionAnalysis `json:"section_analyses"`
	Recommendations []Recommendation  `json:"recommendations"`
	SkillGaps       []SkillGap        `json:"skill_gaps"`
}

// Analyze produces qualitative feedback for a CV given its raw text and
// the detected sections.
func (a *Analyzer) Analyze(ctx context.Context, text string, sections []section.Section) (*Feedback, error) {
	if !a.Enabled() {
		return nil, fmt.Errorf("analysis disabled: no API key configured")
	}
	cleaned := CleanText(text, promptTextMaxRunes)
	if cleaned == "" {
		return nil, fmt.Errorf("no text to analyze")
	}

	fb := &Feedback{}
	if utf8.RuneCountInString(cleaned) < shortTextRunes {
		fb.ShortText = true
		a.logger.Warn("short cv text", "runes", utf8.RuneCountInString(cleaned))
	}

	extractionOK := a.runExtraction(ctx, cleaned, fb)
	if !extractionOK {
		fb.Partial = true
		fb.Extraction = regexFallback(text)
	}

	analysisOK := a.runSectionAnalysis(ctx, sections, fb)
	if !analysisOK {
		fb.Partial = true
	}

	if !extractionOK && !analysisOK {
		return nil, fmt.Errorf("both analysis prompts failed")
	}
	return fb, nil
}

func (a *Analyzer) runExtraction(ctx context.Context, cleaned string, fb *Feedback) bool {
	content, tokens, err := a.client.chatJSON(ctx, SystemPrompt, BuildExtractionPrompt(cleaned))
	if err != nil {
		a.logger.Error("extraction prompt failed", "error", err)
		return false
	}
	fb.TokensUsed += tokens

	var resp extractionResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		a.logger.Error("extraction response parse failed", "error", err)
		return false
	}

	fb.Extraction = resp.Extracted
	fb.Problems = fb.Problems[:0]
	for i := range resp.Problems {
		if ValidateProblem(&resp.Problems[i]) {
			fb.Problems = append(fb.Problems, resp.Problems[i])
		}
	}
	return true
}

func (a *Analyzer) runSectionAnalysis(ctx context.Context, sections []section.Section, fb *Feedback) bool {
	prompt := BuildSectionAnalysisPrompt(sections, fb.Problems)
	content, tokens, err := a.client.chatJSON(ctx, SystemPrompt, prompt)
	if err != nil {
		a.logger.Error("section analysis prompt failed", "error", err)
		return false
	}
	fb.TokensUsed += tokens

	var resp sectionAnalysisResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		a.logger.Error("section analysis response parse failed", "error", err)
		return false
	}

	fb.Summary = strings.TrimSpace(resp.Summary)
	for i := range resp.SectionAnalyses {
		if ValidateSectionAnalysis(&resp.SectionAnalyses[i]) {
			fb.SectionAnalyses = append(fb.SectionAnalyses, resp.SectionAnalyses[i])
		}
	}
	for i := range resp.Recommendations {
		if ValidateRecommendation(&resp.Recommendations[i]) {
			fb.Recommendations = append(fb.Recommendations, resp.Recommendations[i])
		}
	}
	for i := range resp.SkillGaps {
		if ValidateSkillGap(&resp.SkillGaps[i]) {
			fb.SkillGaps = append(fb.SkillGaps, resp.SkillGaps[i])
		}
	}
	return true
}

var (
	fallbackEmailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	fallbackPhoneRe = regexp.MustCompile(`\+?[\d\s\-()]{7,18}`)
	nonDigitRe      = regexp.MustCompile(`\D`)
	nameExcludeRe   = regexp.MustCompile(`[@\d]`)
)

// regexFallback recovers basic contact details from raw text when the
// extraction prompt fails.
func regexFallback(text string) Extraction {
	var ex Extraction

	if m := fallbackEmailRe.FindString(text); m != "" {
		ex.Email = m
		ex.HasContactInfo = true
	}
	if m := fallbackPhoneRe.FindString(text); m != "" {
		candidate := strings.TrimSpace(m)
		digits := nonDigitRe.ReplaceAllString(candidate, "")
		if len(digits) >= 7 && len(digits) <= 15 {
			ex.Phone = candidate
			ex.HasContactInfo = true
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && utf8.RuneCountInString(line) < 60 && !nameExcludeRe.MatchString(line) {
			ex.Name = line
			break
		}
	}
	return ex
}
