// CLAUDE:SUMMARY Defines Format, Role, Line and ClassifiedLine types for the resume pipeline.
package resume

// Format identifies a resume file type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatTXT  Format = "txt"
	FormatMD   Format = "md"
)

// Role is the structural role of one line of extracted text.
type Role string

const (
	RoleTitle         Role = "title"
	RoleSectionHeader Role = "section-header"
	RoleContact       Role = "contact"
	RoleBullet        Role = "bullet"
	RoleJobTitle      Role = "job-title"
	RoleBody          Role = "body"
	RoleBlank         Role = "blank"
)

// Line is one physical line and its position in the full line sequence.
type Line struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// ClassifiedLine is a Line tagged with exactly one Role.
type ClassifiedLine struct {
	Line
	Role Role `json:"role"`
}
