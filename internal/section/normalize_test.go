package section

import "testing"

func TestNormalizeOCR_SpacedHeaderCollapses(t *testing.T) {
	got := NormalizeOCR("D O Ś W I A D C Z E N I E")
	if got != "DOŚWIADCZENIE" {
		t.Fatalf("expected DOŚWIADCZENIE, got %q", got)
	}
}

func TestNormalizeOCR_DoubleSpaceIsWordBoundary(t *testing.T) {
	got := NormalizeOCR("P R A C A  Z A W O D O W A")
	if got != "PRACA ZAWODOWA" {
		t.Fatalf("expected PRACA ZAWODOWA, got %q", got)
	}
}

func TestNormalizeOCR_BlobResegmentsIntoKnownWords(t *testing.T) {
	got := NormalizeOCR("H O B B Y E D U K A C J A")
	if got != "HOBBY EDUKACJA" {
		t.Fatalf("expected HOBBY EDUKACJA, got %q", got)
	}
}

func TestNormalizeOCR_UnknownBlobStaysWhole(t *testing.T) {
	// No confident guess: glued unknown text is not split.
	got := NormalizeOCR("X J Q Z K W")
	if got != "XJQZKW" {
		t.Fatalf("expected XJQZKW, got %q", got)
	}
}

func TestNormalizeOCR_ProseLinesPassThrough(t *testing.T) {
	in := "Doświadczenie zawodowe w firmie produkcyjnej"
	if got := NormalizeOCR(in); got != in {
		t.Errorf("prose line changed: %q", got)
	}
}

func TestNormalizeOCR_PunctuatedLinesPassThrough(t *testing.T) {
	in := "A B C, D E F G"
	if got := NormalizeOCR(in); got != in {
		t.Errorf("punctuated line changed: %q", got)
	}
}

func TestNormalizeOCR_ShortLinesPassThrough(t *testing.T) {
	in := "A B C"
	if got := NormalizeOCR(in); got != in {
		t.Errorf("short line changed: %q", got)
	}
}

func TestNormalizeOCR_BlankLinesPreserved(t *testing.T) {
	in := "SKILLS\n\nPython"
	if got := NormalizeOCR(in); got != in {
		t.Errorf("blank lines not preserved: %q", got)
	}
}

func TestIsolationRatio(t *testing.T) {
	if r := isolationRatio("A B C D"); r != 1.0 {
		t.Errorf("fully spaced line: expected 1.0, got %f", r)
	}
	if r := isolationRatio("ABCD"); r != 0 {
		t.Errorf("glued line: expected 0, got %f", r)
	}
}
