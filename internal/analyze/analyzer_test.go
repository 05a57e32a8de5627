package analyze

import (
	"strings"
	"testing"

	"github.com/mkrol/cvsift/internal/section"
)

func TestStripCodeBlock(t *testing.T) {
	in := "```json\n{\"summary\": \"ok\"}\n```"
	if got := stripCodeBlock(in); got != `{"summary": "ok"}` {
		t.Errorf("stripCodeBlock = %q", got)
	}
	plain := `{"summary": "ok"}`
	if got := stripCodeBlock(plain); got != plain {
		t.Errorf("plain JSON altered: %q", got)
	}
}

func TestRegexFallback(t *testing.T) {
	text := "Jan Kowalski\njan.kowalski@example.com\n+48 123 456 789\nSenior Developer"

	ex := regexFallback(text)
	if ex.Name != "Jan Kowalski" {
		t.Errorf("name = %q, want Jan Kowalski", ex.Name)
	}
	if ex.Email != "jan.kowalski@example.com" {
		t.Errorf("email = %q", ex.Email)
	}
	if !strings.Contains(ex.Phone, "123 456 789") {
		t.Errorf("phone = %q", ex.Phone)
	}
	if !ex.HasContactInfo {
		t.Error("HasContactInfo = false")
	}
}

func TestRegexFallbackEmptyText(t *testing.T) {
	ex := regexFallback("")
	if ex.Name != "" || ex.Email != "" || ex.HasContactInfo {
		t.Fatalf("fallback on empty text = %+v", ex)
	}
}

func TestBuildSectionAnalysisPrompt(t *testing.T) {
	sections := []section.Section{
		{Type: section.TypeExperience, Title: "Experience", Content: "Developer at Acme"},
		{Type: section.TypeSkills, Title: "Skills", Content: "Go, SQL"},
	}
	problems := []Problem{{Title: "Missing metrics"}}

	prompt := BuildSectionAnalysisPrompt(sections, problems)
	if !strings.Contains(prompt, "experience, skills") {
		t.Error("prompt missing section list")
	}
	if !strings.Contains(prompt, "Missing metrics") {
		t.Error("prompt missing problem summary")
	}
	if !strings.Contains(prompt, "Developer at Acme") {
		t.Error("prompt missing section content")
	}
}

func TestBuildSectionAnalysisPromptNoSections(t *testing.T) {
	prompt := BuildSectionAnalysisPrompt(nil, nil)
	if !strings.Contains(prompt, "None detected") {
		t.Error("prompt missing empty-section marker")
	}
	if !strings.Contains(prompt, "PROBLEMS FOUND: None") {
		t.Error("prompt missing empty-problem marker")
	}
}

func TestAnalyzerDisabledWithoutKey(t *testing.T) {
	a := NewAnalyzer(NewClient("", "", nil), nil)
	if a.Enabled() {
		t.Fatal("analyzer enabled without API key")
	}
}
