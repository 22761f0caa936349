// CLAUDE:SUMMARY Ordered first-match-wins rule table assigning a structural Role to each line.
package resume

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	phoneRe = regexp.MustCompile(`(?:\+\d{1,3}[ -]?)?(?:\d[ .-]?){9,12}\d`)
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+\.[A-Za-z0-9.-]+`)
)

// Rule is one classification predicate. Rules are evaluated in order and the
// first match decides the line's role.
type Rule struct {
	Name  string
	Role  Role
	Match func(line string, index int, lines []string) bool
}

// Classifier assigns roles to lines using an ordered rule table.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds the rule table. Location is the literal string that
// marks a contact line; an empty value disables that check.
func NewClassifier(location string) *Classifier {
	return &Classifier{rules: []Rule{
		{Name: "blank", Role: RoleBlank, Match: isBlankOrPlaceholder},
		{Name: "name", Role: RoleTitle, Match: isNameLine},
		{Name: "section-header", Role: RoleSectionHeader, Match: isSectionHeader},
		{Name: "contact", Role: RoleContact, Match: contactMatcher(location)},
		{Name: "bullet", Role: RoleBullet, Match: func(line string, _ int, _ []string) bool {
			return isBullet(line)
		}},
		{Name: "job-title", Role: RoleJobTitle, Match: isJobTitle},
	}}
}

// Rules returns the rule table in evaluation order.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Classify returns the role of lines[index]. line is passed separately so a
// caller may classify text that is not (yet) part of lines.
func (c *Classifier) Classify(line string, index int, lines []string) Role {
	for _, r := range c.rules {
		if r.Match(line, index, lines) {
			return r.Role
		}
	}
	return RoleBody
}

// ClassifyLines splits text into lines and classifies each one.
func (c *Classifier) ClassifyLines(text string) []ClassifiedLine {
	lines := strings.Split(text, "\n")
	out := make([]ClassifiedLine, len(lines))
	for i, l := range lines {
		out[i] = ClassifiedLine{
			Line: Line{Index: i, Text: l},
			Role: c.Classify(l, i, lines),
		}
	}
	return out
}

func isBlankOrPlaceholder(line string, _ int, _ []string) bool {
	t := strings.TrimSpace(line)
	return t == "" || t == PlaceholderHeading
}

func isNameLine(line string, index int, _ []string) bool {
	if index > 2 {
		return false
	}
	text := headingText(line)
	if n := len(strings.Fields(text)); n < 2 || n > 3 {
		return false
	}
	return isUpperText(text)
}

func isSectionHeader(line string, _ int, _ []string) bool {
	up := strings.ToUpper(headingText(line))
	for _, h := range SectionHeaders {
		if up == h || strings.HasPrefix(up, h+" ") {
			return true
		}
	}
	return false
}

func contactMatcher(location string) func(string, int, []string) bool {
	return func(line string, _ int, _ []string) bool {
		if phoneRe.MatchString(line) || emailRe.MatchString(line) {
			return true
		}
		for _, m := range ContactMarkers {
			if strings.Contains(line, m) {
				return true
			}
		}
		return location != "" && strings.Contains(line, location)
	}
}

func isJobTitle(line string, index int, lines []string) bool {
	if strings.Contains(line, "|") {
		for _, kw := range JobRoleKeywords {
			if strings.Contains(line, kw) {
				return true
			}
		}
	}
	return index+1 < len(lines) && isBullet(lines[index+1])
}

func isBullet(line string) bool {
	t := strings.TrimSpace(line)
	if strings.HasPrefix(t, "**") {
		return false
	}
	for _, g := range BulletGlyphs {
		if strings.HasPrefix(t, g) {
			return true
		}
	}
	return false
}

// headingText strips leading ATX markers so "# JOHN SMITH" classifies like
// "JOHN SMITH".
func headingText(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
}

// isUpperText reports whether s has at least one cased letter and no
// lower-case letters.
func isUpperText(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

var defaultClassifier = NewClassifier(DefaultConfig().Location)

// Classify classifies lines[index] with the default rule table.
func Classify(line string, index int, lines []string) Role {
	return defaultClassifier.Classify(line, index, lines)
}
