package section

// Type is the canonical category of a detected CV section.
type Type string

const (
	TypeSummary      Type = "summary"
	TypeExperience   Type = "experience"
	TypeEducation    Type = "education"
	TypeSkills       Type = "skills"
	TypeProjects     Type = "projects"
	TypeCertificates Type = "certificates"
	TypeLanguages    Type = "languages"
	TypeContact      Type = "contact"
	TypeInterests    Type = "interests"
	TypeOther        Type = "other"
)

// Section is one labeled span of the document. Start and End are 0-based,
// inclusive line indices into the normalized line array.
type Section struct {
	Type    Type   `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Order   int    `json:"order"`
}

// Config holds the tunable fallback-detection thresholds. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	// MinSections is the section count below which the content-based
	// fallback detectors run.
	MinSections int
	// SkillsMinRun is the minimum run of consecutive qualifying lines for
	// the skills fallback detector.
	SkillsMinRun int
	// SkillsShortLine is the character length under which a line counts as
	// "short" for the skills detector.
	SkillsShortLine int
	// SkillsMaxTokens is the token count at or under which a short line
	// still qualifies for the skills detector.
	SkillsMaxTokens int
	// MinOtherChars is the minimum combined trimmed length of unclaimed
	// lines required to emit a trailing "other" section.
	MinOtherChars int
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		MinSections:     3,
		SkillsMinRun:    3,
		SkillsShortLine: 30,
		SkillsMaxTokens: 3,
		MinOtherChars:   30,
	}
}

// Detector runs the section-detection pipeline. It holds no per-call state
// and is safe for concurrent use.
type Detector struct {
	cfg Config
}

// NewDetector creates a Detector with the given thresholds. Zero or negative
// threshold fields fall back to their defaults.
func NewDetector(cfg Config) *Detector {
	def := DefaultConfig()
	if cfg.MinSections <= 0 {
		cfg.MinSections = def.MinSections
	}
	if cfg.SkillsMinRun <= 0 {
		cfg.SkillsMinRun = def.SkillsMinRun
	}
	if cfg.SkillsShortLine <= 0 {
		cfg.SkillsShortLine = def.SkillsShortLine
	}
	if cfg.SkillsMaxTokens <= 0 {
		cfg.SkillsMaxTokens = def.SkillsMaxTokens
	}
	if cfg.MinOtherChars <= 0 {
		cfg.MinOtherChars = def.MinOtherChars
	}
	return &Detector{cfg: cfg}
}

// Detect partitions raw extracted document text into labeled sections using
// the default thresholds.
func Detect(text string) []Section {
	return NewDetector(DefaultConfig()).Detect(text)
}
