package section

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"
)

// sectionKeywords maps each section type to its Polish/English heading
// synonyms. All entries are lowercase; diacritics are kept here and folded
// where matching needs to be accent-insensitive.
var sectionKeywords = map[Type][]string{
	TypeSummary: {
		"summary", "profile", "about me", "objective",
		"personal statement", "professional summary", "overview",
		"career objective", "bio",
		"podsumowanie", "profil", "o mnie", "cel zawodowy",
		"profil zawodowy", "o sobie",
	},
	TypeExperience: {
		"experience", "employment", "work history", "professional experience",
		"work experience", "career history", "employment history",
		"professional background",
		"doświadczenie", "doświadczenie zawodowe", "historia zatrudnienia",
		"przebieg pracy", "praca zawodowa", "kariera",
	},
	TypeEducation: {
		"education", "academic", "qualifications", "degrees",
		"academic background", "training", "academic history",
		"edukacja", "wykształcenie", "szkolenia", "kursy",
		"wykształcenie i kursy", "przebieg nauki",
	},
	TypeSkills: {
		"skills", "competencies", "technical skills", "technologies",
		"core competencies", "key skills", "expertise", "tech stack",
		"hard skills", "soft skills",
		"umiejętności", "kompetencje", "technologie",
		"umiejętności techniczne", "stos technologiczny",
	},
	TypeProjects: {
		"projects", "portfolio", "personal projects", "key projects",
		"selected projects", "side projects",
		"projekty", "wybrane projekty", "projekty własne",
	},
	TypeCertificates: {
		"certificates", "certifications", "licenses", "accreditations",
		"courses and certificates", "awards",
		"certyfikaty", "licencje", "uprawnienia", "nagrody",
		"kursy i certyfikaty",
	},
	TypeLanguages: {
		"languages", "language skills", "foreign languages",
		"języki", "języki obce", "znajomość języków",
	},
	TypeContact: {
		"contact", "contact details", "contact information",
		"personal details", "personal information", "personal data",
		"kontakt", "dane kontaktowe", "dane osobowe", "informacje kontaktowe",
	},
	TypeInterests: {
		"interests", "hobbies", "activities", "personal interests",
		"zainteresowania", "hobby", "pasje", "aktywności",
	},
}

// typeOrder fixes a deterministic iteration order for dictionary matching.
// Equidistant fuzzy matches resolve to the alphabetically smaller type.
var typeOrder = []Type{
	TypeCertificates,
	TypeContact,
	TypeEducation,
	TypeExperience,
	TypeInterests,
	TypeLanguages,
	TypeProjects,
	TypeSkills,
	TypeSummary,
}

// foldedKeywords mirrors sectionKeywords with diacritics stripped, for the
// fuzzy stage of the classifier.
var foldedKeywords = func() map[Type][]string {
	m := make(map[Type][]string, len(sectionKeywords))
	for t, kws := range sectionKeywords {
		folded := make([]string, len(kws))
		for i, kw := range kws {
			folded[i] = Fold(kw)
		}
		m[t] = folded
	}
	return m
}()

// headingVocab holds the individual folded words of the heading dictionary,
// used to re-segment glued OCR blobs by greedy longest-prefix matching.
var headingVocab = func() map[string]bool {
	vocab := make(map[string]bool)
	for _, kws := range sectionKeywords {
		for _, kw := range kws {
			for _, word := range strings.Fields(Fold(kw)) {
				if utf8.RuneCountInString(word) >= 3 {
					vocab[word] = true
				}
			}
		}
	}
	return vocab
}()

// maxVocabWordLen is the longest vocabulary word in runes, bounding the
// greedy prefix search.
var maxVocabWordLen = func() int {
	max := 0
	for word := range headingVocab {
		if n := utf8.RuneCountInString(word); n > max {
			max = n
		}
	}
	return max
}()

// techKeywords is the curated technology vocabulary for the skills fallback
// detector. Matched case-insensitively as substrings via Aho-Corasick, so
// entries stay >= 3 characters to limit accidental hits.
var techKeywords = []string{
	"python", "java", "javascript", "typescript", "golang", "kotlin",
	"scala", "swift", "ruby", "php", "c++", "c#", ".net", "rust",
	"html", "css", "sql", "nosql", "mysql", "postgresql", "postgres",
	"mongodb", "redis", "sqlite", "oracle", "elasticsearch",
	"react", "angular", "vue", "node", "django", "flask", "spring",
	"rails", "laravel", "symfony", "express",
	"docker", "kubernetes", "terraform", "ansible", "jenkins",
	"aws", "azure", "gcp", "linux", "bash", "git", "gitlab", "jira",
	"kafka", "rabbitmq", "graphql", "rest api", "grpc",
	"pandas", "numpy", "tensorflow", "pytorch", "spark",
	"excel", "power bi", "tableau", "selenium", "figma",
}

// techMatcher scans lines for technology keywords in a single pass.
var techMatcher = ahocorasick.NewStringMatcher(techKeywords)

// languageNames lists folded language names recognized by the languages
// fallback detector.
var languageNames = []string{
	"english", "angielski",
	"polish", "polski",
	"german", "niemiecki",
	"french", "francuski",
	"spanish", "hiszpanski",
	"italian", "wloski",
	"russian", "rosyjski",
	"ukrainian", "ukrainski",
	"czech", "czeski",
	"dutch", "niderlandzki",
	"portuguese", "portugalski",
	"chinese", "chinski",
	"japanese", "japonski",
	"arabic", "arabski",
	"norwegian", "norweski",
	"swedish", "szwedzki",
}

// institutionKeywords lists folded institution and degree markers for the
// education fallback detector.
var institutionKeywords = []string{
	"university", "uniwersytet", "politechnika", "college", "academy",
	"akademia", "school", "szkola", "liceum", "technikum",
	"bachelor", "master of", "licencjat", "magister", "inzynier",
	"phd", "doktor", "degree", "faculty", "wydzial", "studia",
	"institute", "instytut",
}

var (
	// enumeration/bullet markers stripped from heading candidates.
	headingMarkerRe = regexp.MustCompile(`^[\d.\-*#>|:]+\s*`)

	// year or year range, e.g. "2019", "2019-2022", "2020 - present".
	yearRangeRe = regexp.MustCompile(`(?i)\b(19|20)\d{2}(\s*(?:[-–—/]|to|do)\s*(?:(?:19|20)\d{2}|present|current|now|obecnie|nadal|dzis|teraz))?\b`)

	// two bare years joined by a separator; used to keep date ranges from
	// satisfying the phone-number digit count.
	twoYearsRe = regexp.MustCompile(`^(19|20)\d{2}\D+(19|20)\d{2}$`)

	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?[0-9][0-9 ()\-.]{5,}[0-9]`)
	urlRe   = regexp.MustCompile(`(?i)(https?://|www\.|linkedin\.com/|github\.com/|\B@[a-z0-9_.]+)`)

	// CEFR levels and proficiency words (folded, both languages).
	proficiencyRe = regexp.MustCompile(`(?i)\b([abc][12]|fluent|native|advanced|intermediate|basic|beginner|proficient|conversational|biegly|biegle|ojczysty|zaawansowany|sredniozaawansowany|podstawowy|komunikatywny)\b`)
)
