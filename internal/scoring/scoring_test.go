package scoring

import (
	"strings"
	"testing"

	"github.com/mkrol/cvsift/internal/section"
)

func TestScore_AllBucketsAlwaysPresent(t *testing.T) {
	card := Score(nil)
	if len(card.Buckets) != 5 {
		t.Fatalf("expected 5 buckets, got %d", len(card.Buckets))
	}
	for _, b := range card.Buckets {
		if b.Score != 0 {
			t.Errorf("bucket %s: expected score 0 for missing section, got %d", b.Bucket, b.Score)
		}
	}
	if card.Overall != 0 {
		t.Errorf("expected overall 0, got %d", card.Overall)
	}
}

func TestScore_ShortSectionGetsScaledAutomaticScore(t *testing.T) {
	card := Score([]section.Section{
		{Type: section.TypeSkills, Content: strings.Repeat("a", 150)},
	})
	skills := findBucket(t, card, section.TypeSkills)
	// 150 of 300 chars: 10 + 20*0.5 = 20.
	if skills.Score != 20 {
		t.Errorf("expected score 20, got %d", skills.Score)
	}
}

func TestScore_SubstantiveSectionScoresHigher(t *testing.T) {
	long := strings.Repeat("Built and shipped backend services in Go.\n", 20)
	card := Score([]section.Section{
		{Type: section.TypeExperience, Content: long},
	})
	exp := findBucket(t, card, section.TypeExperience)
	if exp.Score < 40 {
		t.Errorf("expected substantive score >= 40, got %d", exp.Score)
	}
	if exp.Score > 100 {
		t.Errorf("score must be capped at 100, got %d", exp.Score)
	}
}

func TestScore_SameTypeSectionsMerge(t *testing.T) {
	half := strings.Repeat("b", 100)
	card := Score([]section.Section{
		{Type: section.TypeEducation, Content: half},
		{Type: section.TypeEducation, Content: half},
	})
	edu := findBucket(t, card, section.TypeEducation)
	// 201 chars merged (including joining newline), still short tier.
	if edu.Chars <= 100 {
		t.Errorf("expected merged content, got %d chars", edu.Chars)
	}
}

func TestScore_UnweightedTypesIgnored(t *testing.T) {
	card := Score([]section.Section{
		{Type: section.TypeContact, Content: strings.Repeat("c", 500)},
	})
	if card.Overall != 0 {
		t.Errorf("contact content must not move the overall score, got %d", card.Overall)
	}
}

func TestCleanContent_CollapsesWhitespaceAndTruncates(t *testing.T) {
	got := cleanContent("a   b\t c\n\n  d  ", 100)
	if got != "a b c\nd" {
		t.Errorf("got %q", got)
	}

	long := strings.Repeat("x", 5000)
	if n := len(cleanContent(long, 2000)); n != 2000 {
		t.Errorf("expected hard cut at 2000, got %d", n)
	}
}

func findBucket(t *testing.T, card Scorecard, typ section.Type) BucketScore {
	t.Helper()
	for _, b := range card.Buckets {
		if b.Bucket == typ {
			return b
		}
	}
	t.Fatalf("bucket %s missing from scorecard", typ)
	return BucketScore{}
}
