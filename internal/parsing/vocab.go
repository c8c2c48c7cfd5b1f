package parsing

// SectionRule maps a substring of a lowercased heading to its canonical
// section name. Rules apply in order; the first match wins.
type SectionRule struct {
	Contains  string
	Canonical string
}

// Limits collects the line-length thresholds and caps used by the
// sub-parsers. Lengths are in runes.
type Limits struct {
	// ShortHeadLine: an unmarked line shorter than this reads as the next
	// project head rather than a bullet.
	ShortHeadLine int
	// LongBodyLine: an unmarked line longer than this ends an experience
	// bullet run.
	LongBodyLine int
	// LongProjectLine: an unmarked line longer than this ends a project
	// bullet run.
	LongProjectLine int
	// ProjectBulletScan caps how many bullets are collected per project.
	ProjectBulletScan int
	// NameScanLines is how many leading lines are considered for the name.
	NameScanLines int
	// NameMaxLen truncates the extracted name.
	NameMaxLen int
	// MaxOtherLinks caps the generic link bucket.
	MaxOtherLinks int
}

// Vocabulary bundles the lookup tables the parsers consult. A Vocabulary is
// immutable after construction and safe to share across goroutines.
type Vocabulary struct {
	// Months maps month words and abbreviations to canonical forms.
	Months map[string]string
	// SectionRules canonicalize chunked section names.
	SectionRules []SectionRule
	// HeadingWords are the section-heading keywords, matched anchored and
	// case-insensitively against a whole line.
	HeadingWords []string
	// Institutions are the words that open an education record line.
	Institutions []string
	// Degrees are degree keywords and their common abbreviations.
	Degrees []string
	// Fields are the study-field keywords that may follow a degree keyword.
	Fields []string
	// Roles are the job-title keywords that mark a role line.
	Roles []string
	// Languages, WebServices and DevTools are the skill-bucket membership
	// lists; tokens matching none of them fall through to Libraries.
	Languages   []string
	WebServices []string
	DevTools    []string
	// BulletGlyphs are the characters that delimit list items packed into
	// a single text line.
	BulletGlyphs string

	Limits Limits
}

// DefaultVocabulary returns the stock tables used by NewParser when no
// vocabulary is supplied.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Months: map[string]string{
			"january": "Jan.", "jan": "Jan.",
			"february": "Feb.", "feb": "Feb.",
			"march": "Mar.", "mar": "Mar.",
			"april": "Apr.", "apr": "Apr.",
			"may":  "May",
			"june": "Jun.", "jun": "Jun.",
			"july": "Jul.", "jul": "Jul.",
			"august": "Aug.", "aug": "Aug.",
			"september": "Sep.", "sept": "Sep.", "sep": "Sep.",
			"october": "Oct.", "oct": "Oct.",
			"november": "Nov.", "nov": "Nov.",
			"december": "Dec.", "dec": "Dec.",
		},
		SectionRules: []SectionRule{
			{Contains: "education", Canonical: "Education"},
			{Contains: "experience", Canonical: "Experience"},
			{Contains: "project", Canonical: "Projects"},
			{Contains: "skill", Canonical: "Technical Skills"},
		},
		HeadingWords: []string{
			"education",
			"work experience",
			"experience",
			"projects",
			"project",
			"technical skills",
			"skills",
		},
		Institutions: []string{"university", "college", "institute", "school"},
		Degrees: []string{
			"bachelor's", "bachelors", "bachelor",
			"master's", "masters", "master",
			"b.sc.", "b.sc", "bsc", "b.s.", "b.s", "bs",
			"m.sc.", "m.sc", "msc", "m.s.", "m.s", "ms",
			"b.a.", "b.a", "ba", "m.a.", "m.a", "ma",
			"ph.d.", "ph.d", "phd",
			"associate",
		},
		Fields: []string{
			"science", "arts", "engineering", "computer", "cs",
			"information", "business", "technology", "mathematics",
		},
		Roles: []string{"intern", "engineer", "developer", "manager", "lead", "scientist"},
		Languages: []string{
			"python", "java", "c", "c++", "c#", "go", "golang", "rust",
			"javascript", "typescript", "sql", "html", "css", "kotlin",
			"swift", "ruby", "php", "r", "scala", "matlab", "bash", "perl",
		},
		WebServices: []string{
			"react", "angular", "vue", "node.js", "node", "express",
			"flask", "django", "fastapi", "spring", "rails", "next.js",
			"rest", "graphql", "aws", "gcp", "azure", "firebase", "heroku",
		},
		DevTools: []string{
			"git", "github", "gitlab", "docker", "kubernetes", "jenkins",
			"terraform", "linux", "vim", "vscode", "vs code", "intellij",
			"eclipse", "postman", "jira",
		},
		BulletGlyphs: "•●▪·",
		Limits: Limits{
			ShortHeadLine:     64,
			LongBodyLine:      160,
			LongProjectLine:   250,
			ProjectBulletScan: 8,
			NameScanLines:     6,
			NameMaxLen:        120,
			MaxOtherLinks:     2,
		},
	}
}
