// CLAUDE:SUMMARY Fixed vocabulary tables (section headers, role keywords, compounds, mojibake) used by repair and classification.
package resume

// PlaceholderHeading is the generic heading the Extractor prepends when the
// first line cannot serve as a title. The classifier discards it so the
// Assembler can substitute the configured default title.
const PlaceholderHeading = "# Resume"

// ErrorHeading opens every error document returned by Resume.
const ErrorHeading = "# Resume Processing Error"

// SectionHeaders lists the recognised section header keywords. Longer
// variants come first so regex alternations prefer them.
var SectionHeaders = []string{
	"PROFESSIONAL SUMMARY",
	"PROFESSIONAL EXPERIENCE",
	"WORK EXPERIENCE",
	"TECHNICAL SKILLS",
	"AWARDS & ACHIEVEMENTS",
	"AWARDS AND ACHIEVEMENTS",
	"SUMMARY",
	"EXPERIENCE",
	"EDUCATION",
	"SKILLS",
	"CERTIFICATIONS",
	"CERTIFICATES",
	"AWARDS",
	"ACHIEVEMENTS",
	"PROJECTS",
}

// JobRoleKeywords marks a "Title | Company" line as a job title.
var JobRoleKeywords = []string{"Engineer", "Developer", "Manager", "Analyst"}

// LeadInWords are tokens after which a section header keyword starts a new
// block even though no punctuation separates them.
var LeadInWords = []string{"Present", "Remote", "CGPA", "GPA", "AI", "ML"}

// CompoundTerms must never stay split around their hyphen.
var CompoundTerms = []string{
	"real-world",
	"hands-on",
	"full-stack",
	"end-to-end",
	"cross-functional",
	"open-source",
	"data-driven",
	"high-performance",
	"front-end",
	"back-end",
}

// ContactMarkers flag a line as part of the contact block.
var ContactMarkers = []string{"LinkedIn:", "GitHub:", "Portfolio:"}

// BulletGlyphs are the leading characters that make a line a bullet.
var BulletGlyphs = []string{"•", "-", "*"}

// mojibakeFix is an ordered table: multi-byte sequences first so shorter
// prefixes like "Â" never eat part of a longer match.
var mojibakeFix = [][2]string{
	{"â€¢", "•"},
	{"â€“", "–"},
	{"â€”", "—"},
	{"â€™", "’"},
	{"â€˜", "‘"},
	{"â€œ", "“"},
	{"â€\u009d", "”"},
	{"â€", "”"},
	{"Ã©", "é"},
	{"Â·", "·"},
	{"Â\u00a0", " "},
	{"\u00a0", " "},
}
