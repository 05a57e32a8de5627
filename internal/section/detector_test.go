package section

import (
	"strings"
	"testing"
)

const sampleCV = `Jan Kowalski
jan.kowalski@example.com

DOŚWIADCZENIE
2019 - 2022 Firma X
Programista

EDUKACJA
Uniwersytet Warszawski

UMIEJĘTNOŚCI
Python
SQL`

func TestDetect_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n\t\n  \n"} {
		if got := Detect(in); len(got) != 0 {
			t.Errorf("Detect(%q): expected empty result, got %d sections", in, len(got))
		}
	}
}

func TestDetect_FullDocumentFallback(t *testing.T) {
	text := "Lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor"
	got := Detect(text)
	if len(got) != 1 {
		t.Fatalf("expected exactly one section, got %d", len(got))
	}
	s := got[0]
	if s.Type != TypeOther || s.Title != "Full Document" {
		t.Errorf("got type=%s title=%q", s.Type, s.Title)
	}
	if s.Start != 0 || s.End != 0 || s.Order != 0 {
		t.Errorf("got start=%d end=%d order=%d", s.Start, s.End, s.Order)
	}
	if s.Content != text {
		t.Errorf("content mismatch: %q", s.Content)
	}
}

func TestDetect_HeadingBasedSegmentation(t *testing.T) {
	got := Detect(sampleCV)
	if len(got) != 4 {
		t.Fatalf("expected 4 sections, got %d: %+v", len(got), got)
	}

	wantTypes := []Type{TypeSummary, TypeExperience, TypeEducation, TypeSkills}
	for i, want := range wantTypes {
		if got[i].Type != want {
			t.Errorf("section %d: type %s, want %s", i, got[i].Type, want)
		}
	}
	if got[0].Title != "Header" {
		t.Errorf("preamble title = %q", got[0].Title)
	}
	if got[1].Title != "DOŚWIADCZENIE" {
		t.Errorf("experience title = %q", got[1].Title)
	}
	if !strings.Contains(got[1].Content, "Firma X") {
		t.Errorf("experience content = %q", got[1].Content)
	}
	if !strings.Contains(got[3].Content, "Python") {
		t.Errorf("skills content = %q", got[3].Content)
	}
}

func TestDetect_OrderContiguousAndStartsNonDecreasing(t *testing.T) {
	got := Detect(sampleCV)
	prevStart := -1
	for i, s := range got {
		if s.Order != i {
			t.Errorf("section %d has order %d", i, s.Order)
		}
		if s.Start < prevStart {
			t.Errorf("section %d: start %d decreases below %d", i, s.Start, prevStart)
		}
		if s.Start > s.End {
			t.Errorf("section %d: start %d > end %d", i, s.Start, s.End)
		}
		prevStart = s.Start
	}
}

func TestDetect_SpansDoNotOverlap(t *testing.T) {
	got := Detect(sampleCV)
	for i := 1; i < len(got); i++ {
		if got[i].Start <= got[i-1].End {
			t.Errorf("sections %d and %d overlap: [%d,%d] then [%d,%d]",
				i-1, i, got[i-1].Start, got[i-1].End, got[i].Start, got[i].End)
		}
	}
}

func TestDetect_NoLineClaimedTwice(t *testing.T) {
	got := Detect(sampleCV)
	seen := map[string]int{}
	for _, s := range got {
		for _, line := range strings.Split(s.Content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			seen[line]++
		}
	}
	for line, n := range seen {
		if n > 1 {
			t.Errorf("line %q appears in %d sections", line, n)
		}
	}
}

func TestDetect_SpacedHeadingNormalizedAndClassified(t *testing.T) {
	text := "D O Ś W I A D C Z E N I E\n2019 - 2021 Firma Y\nProgramista aplikacji\n\nEDUKACJA\nPolitechnika Gdańska\n\nUMIEJĘTNOŚCI\nPython"
	got := Detect(text)

	var exp *Section
	for i := range got {
		if got[i].Type == TypeExperience {
			exp = &got[i]
			break
		}
	}
	if exp == nil {
		t.Fatalf("no experience section in %+v", got)
	}
	if exp.Title != "DOŚWIADCZENIE" {
		t.Errorf("title = %q, want collapsed heading", exp.Title)
	}
	if exp.Start != 0 {
		t.Errorf("start = %d, want 0", exp.Start)
	}
}

func TestDetect_MultiHeaderLineSplitsIntoTwoSections(t *testing.T) {
	text := "DOŚWIADCZENIE\n2019 - 2021 Firma Z\nStarszy programista systemów\n\nHOBBY EDUKACJA\nSzachy i bieganie"
	got := Detect(text)

	types := map[Type]bool{}
	for _, s := range got {
		types[s.Type] = true
	}
	if !types[TypeInterests] || !types[TypeEducation] {
		t.Fatalf("expected interests and education sections, got %+v", got)
	}
}

func TestDetect_LongLineNeverAHeading(t *testing.T) {
	long := "EXPERIENCE " + strings.Repeat("X", 55)
	text := long + "\nEDUKACJA\nUniwersytet Jagielloński\nWydział Fizyki"
	got := Detect(text)
	for _, s := range got {
		if s.Title == long {
			t.Fatalf("line over 60 chars was classified as a heading: %+v", s)
		}
	}
}

func TestDetect_FuzzyHeadingRequiresHeadingShape(t *testing.T) {
	// "Umiejetnosci" alone between blanks passes the formatting gate and
	// classifies via the fuzzy stage.
	text := "Intro line with plenty of words\n\nUmiejetnosci\nPython\nDocker\nKubernetes"
	got := Detect(text)
	found := false
	for _, s := range got {
		if s.Type == TypeSkills && s.Title == "Umiejetnosci" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a fuzzy-matched skills heading, got %+v", got)
	}
}
