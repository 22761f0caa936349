package resume

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var headingLineRe = regexp.MustCompile(`^#{1,3} `)

// RenderLine renders one classified line into zero or more markdown lines.
func RenderLine(cl ClassifiedLine) []string {
	t := strings.TrimSpace(cl.Text)
	switch cl.Role {
	case RoleTitle:
		return []string{"# " + headingText(t), ""}
	case RoleSectionHeader:
		return []string{"", "## " + headingText(t), ""}
	case RoleContact:
		return []string{"**" + headingText(t) + "**", ""}
	case RoleBullet:
		return []string{"- " + stripBulletGlyphs(t)}
	case RoleJobTitle:
		return []string{"", "### " + headingText(t), ""}
	case RoleBlank:
		if t == PlaceholderHeading {
			return []string{""}
		}
	}
	return []string{cl.Text}
}

// stripBulletGlyphs removes leading bullet glyphs and the spaces after
// them. A "**" bold opener is content, not a glyph.
func stripBulletGlyphs(t string) string {
	for !strings.HasPrefix(t, "**") && isBullet(t) {
		_, size := utf8.DecodeRuneInString(t)
		t = strings.TrimSpace(t[size:])
	}
	return t
}

// Assemble renders classified lines into a markdown document. The result
// always starts with a level-1 heading; defaultTitle is used when none of
// the lines produced one first.
func Assemble(lines []ClassifiedLine, defaultTitle string) string {
	out := make([]string, 0, len(lines)*2)
	for _, cl := range lines {
		out = append(out, RenderLine(cl)...)
	}
	md := CollapseBlankLines(strings.Join(out, "\n"))
	md = CollapseBlankLines(padHeadings(md))
	md = strings.TrimSpace(md)
	if !strings.HasPrefix(md, "# ") {
		md = strings.TrimSpace("# " + defaultTitle + "\n\n" + md)
	}
	return md
}

// padHeadings puts exactly one blank line around every level 1-3 heading.
func padHeadings(md string) string {
	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines)+8)
	for i, l := range lines {
		if !headingLineRe.MatchString(l) {
			out = append(out, l)
			continue
		}
		if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, l)
		if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}
