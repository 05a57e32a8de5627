package section

import "testing"

func TestSplitMultiHeader_TwoGluedHeadings(t *testing.T) {
	left, right, ok := splitMultiHeader("HOBBY EDUKACJA")
	if !ok {
		t.Fatal("expected HOBBY EDUKACJA to split")
	}
	if left != "HOBBY" || right != "EDUKACJA" {
		t.Fatalf("got %q / %q", left, right)
	}

	leftType, _ := Classify(left)
	rightType, _ := Classify(right)
	if leftType != TypeInterests || rightType != TypeEducation {
		t.Errorf("halves classified as %s / %s", leftType, rightType)
	}
}

func TestSplitMultiHeader_SameTypeHalvesStayTogether(t *testing.T) {
	// Both halves resolve to skills; no split.
	if _, _, ok := splitMultiHeader("Technical Skills"); ok {
		t.Error("expected Technical Skills to stay on one line")
	}
}

func TestSplitMultiHeader_SingleWordNotACandidate(t *testing.T) {
	if _, _, ok := splitMultiHeader("EDUKACJA"); ok {
		t.Error("single-word line must not split")
	}
}

func TestSplitMultiHeader_LongLineNotACandidate(t *testing.T) {
	if _, _, ok := splitMultiHeader("Languages Education And Some More Words Here"); ok {
		t.Error("line over 40 characters must not split")
	}
}

func TestSplitMultiHeaders_ExpandsLineArray(t *testing.T) {
	lines := splitMultiHeaders([]string{"Jan Kowalski", "HOBBY EDUKACJA", "content"})
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %v", len(lines), lines)
	}
	if lines[1] != "HOBBY" || lines[2] != "EDUKACJA" {
		t.Errorf("unexpected expansion: %v", lines)
	}
}
