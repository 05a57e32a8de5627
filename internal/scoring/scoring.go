// Package scoring maps detected CV sections into the recruiter-side
// weighted scoring buckets and produces a deterministic baseline scorecard.
// AI-driven refinement of these scores is a separate, optional step.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mkrol/cvsift/internal/section"
)

// Bucket weights mirror how recruiters weigh CV sections: experience and
// skills dominate, interests barely register.
var bucketWeights = map[section.Type]float64{
	section.TypeExperience: 2.0,
	section.TypeSkills:     2.0,
	section.TypeLanguages:  1.5,
	section.TypeEducation:  1.2,
	section.TypeInterests:  0.3,
}

// bucketOrder fixes the output order of the scorecard.
var bucketOrder = []section.Type{
	section.TypeExperience,
	section.TypeSkills,
	section.TypeLanguages,
	section.TypeEducation,
	section.TypeInterests,
}

const (
	// maxBucketChars caps the content considered per bucket.
	maxBucketChars = 2000
	// minSubstantiveChars is the content length under which a bucket gets
	// only a small automatic score.
	minSubstantiveChars = 300
)

// BucketScore is the score of one recruiter bucket.
type BucketScore struct {
	Bucket   section.Type `json:"bucket"`
	Score    int          `json:"score"`
	Weight   float64      `json:"weight"`
	Chars    int          `json:"chars"`
	Analysis string       `json:"analysis"`
}

// Scorecard is the weighted baseline assessment of a CV.
type Scorecard struct {
	Buckets []BucketScore `json:"buckets"`
	Overall int           `json:"overall"`
}

// Score builds a scorecard from detected sections. Multiple sections of the
// same type merge into one bucket. The result depends only on the input.
func Score(sections []section.Section) Scorecard {
	merged := make(map[section.Type]string, len(bucketWeights))
	for _, s := range sections {
		if _, ok := bucketWeights[s.Type]; !ok {
			continue
		}
		if prev, ok := merged[s.Type]; ok {
			merged[s.Type] = prev + "\n" + s.Content
		} else {
			merged[s.Type] = s.Content
		}
	}

	var card Scorecard
	weightSum := 0.0
	weightedSum := 0.0
	for _, bucket := range bucketOrder {
		content := cleanContent(merged[bucket], maxBucketChars)
		bs := scoreBucket(bucket, content)
		card.Buckets = append(card.Buckets, bs)
		weightSum += bs.Weight
		weightedSum += float64(bs.Score) * bs.Weight
	}
	if weightSum > 0 {
		card.Overall = int(math.Round(weightedSum / weightSum))
	}
	return card
}

func scoreBucket(bucket section.Type, content string) BucketScore {
	weight := bucketWeights[bucket]
	chars := utf8.RuneCountInString(content)

	if chars == 0 {
		return BucketScore{
			Bucket:   bucket,
			Score:    0,
			Weight:   weight,
			Analysis: "Section not found in the CV.",
		}
	}

	if chars < minSubstantiveChars {
		ratio := float64(chars) / float64(minSubstantiveChars)
		return BucketScore{
			Bucket: bucket,
			Score:  int(math.Round(10 + 20*ratio)),
			Weight: weight,
			Chars:  chars,
			Analysis: fmt.Sprintf(
				"Section carries too little information (%d characters) for a full assessment.", chars),
		}
	}

	// Substantive content: score by volume up to the cap, plus a little
	// for structure (distinct lines).
	score := 40
	score += chars * 40 / maxBucketChars
	lines := strings.Count(content, "\n") + 1
	if lines > 10 {
		lines = 10
	}
	score += lines * 2
	if score > 100 {
		score = 100
	}
	return BucketScore{
		Bucket:   bucket,
		Score:    score,
		Weight:   weight,
		Chars:    chars,
		Analysis: fmt.Sprintf("Section content assessed on %d characters across %d lines.", chars, lines),
	}
}

// cleanContent collapses runs of whitespace within lines and truncates to
// maxChars runes on a line boundary where possible.
func cleanContent(content string, maxChars int) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	lines := strings.Split(content, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	content = strings.Join(out, "\n")
	if utf8.RuneCountInString(content) <= maxChars {
		return content
	}
	runes := []rune(content)
	cut := string(runes[:maxChars])
	if i := strings.LastIndexByte(cut, '\n'); i > maxChars/2 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}
