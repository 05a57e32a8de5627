package section

import "testing"

func TestClassify_ExactMatch(t *testing.T) {
	cases := []struct {
		heading string
		want    Type
	}{
		{"Skills", TypeSkills},
		{"EDUKACJA", TypeEducation},
		{"Doświadczenie", TypeExperience},
		{"Hobby", TypeInterests},
		{"Languages", TypeLanguages},
		{"Kontakt", TypeContact},
	}
	for _, tc := range cases {
		got, ok := Classify(tc.heading)
		if !ok {
			t.Errorf("Classify(%q): no match", tc.heading)
			continue
		}
		if got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.heading, got, tc.want)
		}
	}
}

func TestClassify_StripsEnumerationMarkers(t *testing.T) {
	got, ok := Classify("3. Languages")
	if !ok || got != TypeLanguages {
		t.Fatalf("Classify(\"3. Languages\") = %s, %v", got, ok)
	}
	got, ok = Classify("- Umiejętności")
	if !ok || got != TypeSkills {
		t.Fatalf("Classify(\"- Umiejętności\") = %s, %v", got, ok)
	}
}

func TestClassify_Containment(t *testing.T) {
	// Cleaned heading contains a keyword.
	got, ok := Classify("My Work Experience So Far")
	if !ok || got != TypeExperience {
		t.Fatalf("containment forward: got %s, %v", got, ok)
	}
	// Keyword contains the cleaned heading.
	got, ok = Classify("Certyfikat")
	if !ok || got != TypeCertificates {
		t.Fatalf("containment reverse: got %s, %v", got, ok)
	}
}

func TestClassify_FuzzyAccentInsensitive(t *testing.T) {
	// Missing diacritics, still within edit distance 2 after folding.
	got, ok := Classify("Doswiadczenie")
	if !ok {
		t.Fatal("expected a fuzzy match for Doswiadczenie")
	}
	if got != TypeExperience {
		t.Fatalf("Classify(Doswiadczenie) = %s, want experience", got)
	}
}

func TestClassify_FuzzyTypo(t *testing.T) {
	got, ok := Classify("Skilsl")
	if !ok || got != TypeSkills {
		t.Fatalf("Classify(Skilsl) = %s, %v, want skills", got, ok)
	}
}

func TestClassify_NoMatch(t *testing.T) {
	for _, heading := range []string{
		"Completely unrelated paragraph line",
		"Zupełnie niezwiązany tekst akapitu",
	} {
		if got, ok := Classify(heading); ok {
			t.Errorf("Classify(%q) unexpectedly matched %s", heading, got)
		}
	}
}

func TestClassify_TooShortAfterCleaning(t *testing.T) {
	for _, heading := range []string{"", "ab", "1. x", "###"} {
		if got, ok := Classify(heading); ok {
			t.Errorf("Classify(%q) unexpectedly matched %s", heading, got)
		}
	}
}

func TestClassifyFull_ReportsMethod(t *testing.T) {
	if _, m := classifyFull("Skills"); m != matchExact {
		t.Errorf("Skills: expected exact, got %d", m)
	}
	if _, m := classifyFull("My Work Experience So Far"); m != matchContains {
		t.Errorf("containment heading: expected contains, got %d", m)
	}
	if _, m := classifyFull("Doswiadczenie"); m != matchFuzzy {
		t.Errorf("Doswiadczenie: expected fuzzy, got %d", m)
	}
	if _, m := classifyFull("Completely unrelated paragraph line"); m != matchNone {
		t.Errorf("unrelated line: expected none, got %d", m)
	}
}

func TestFold(t *testing.T) {
	if got := Fold("doświadczenie"); got != "doswiadczenie" {
		t.Errorf("Fold(doświadczenie) = %q", got)
	}
	if got := Fold("umiejętności"); got != "umiejetnosci" {
		t.Errorf("Fold(umiejętności) = %q", got)
	}
	if got := Fold("Łódź"); got != "Lodz" {
		t.Errorf("Fold(Łódź) = %q", got)
	}
	if got := Fold("plain ascii"); got != "plain ascii" {
		t.Errorf("Fold(plain ascii) = %q", got)
	}
}
