package resume

import (
	"strings"
	"testing"
)

const scenarioMarkdown = "# JOHN SMITH\n\n**+91 1234567890**\n\n## EXPERIENCE\n\n### Software Engineer | Acme Corp\n\n- Built things"

func TestAssemble_Scenario(t *testing.T) {
	lines := NewClassifier(DefaultConfig().Location).ClassifyLines(scenario)
	if got := Assemble(lines, "JOHN SMITH"); got != scenarioMarkdown {
		t.Fatalf("Assemble:\n got %q\nwant %q", got, scenarioMarkdown)
	}
}

func TestRenderLine(t *testing.T) {
	tests := []struct {
		role Role
		text string
		want []string
	}{
		{RoleTitle, "# JOHN SMITH", []string{"# JOHN SMITH", ""}},
		{RoleSectionHeader, "SKILLS", []string{"", "## SKILLS", ""}},
		{RoleSectionHeader, "## Skills", []string{"", "## Skills", ""}},
		{RoleContact, " john@example.com ", []string{"**john@example.com**", ""}},
		{RoleContact, "# +91 1234567890", []string{"**+91 1234567890**", ""}},
		{RoleBullet, "•  Built things", []string{"- Built things"}},
		{RoleBullet, "- - nested glyphs", []string{"- nested glyphs"}},
		{RoleBullet, "* starred", []string{"- starred"}},
		{RoleBullet, "* **Lead** at Acme", []string{"- **Lead** at Acme"}},
		{RoleJobTitle, "Engineer | Acme", []string{"", "### Engineer | Acme", ""}},
		{RoleBlank, PlaceholderHeading, []string{""}},
		{RoleBlank, "", []string{""}},
		{RoleBody, "  indented body", []string{"  indented body"}},
	}
	for _, tt := range tests {
		got := RenderLine(ClassifiedLine{Line: Line{Text: tt.text}, Role: tt.role})
		if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
			t.Errorf("RenderLine(%s, %q) = %q, want %q", tt.role, tt.text, got, tt.want)
		}
	}
}

func TestAssemble_SectionHeaderPadding(t *testing.T) {
	md := Assemble(NewClassifier("").ClassifyLines("# JANE DOE\nShort intro line.\nSKILLS\nGo and Rust."), "JANE DOE")
	if !strings.Contains(md, "Short intro line.\n\n## SKILLS\n\nGo and Rust.") {
		t.Fatalf("section header not padded:\n%s", md)
	}
}

func TestAssemble_BulletsHaveNoGlyph(t *testing.T) {
	md := Assemble(NewClassifier("").ClassifyLines("# JANE DOE\nWork\n• one\n* two\n- three"), "JANE DOE")
	for _, l := range strings.Split(md, "\n") {
		if strings.Contains(l, "•") {
			t.Errorf("glyph left in %q", l)
		}
	}
	for _, want := range []string{"- one", "- two", "- three"} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
}

func TestAssemble_AlwaysStartsWithTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"body only", "just some text about me"},
		{"placeholder", PlaceholderHeading + "\n\nsome text"},
		{"section first", "EXPERIENCE\nstuff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := Assemble(NewClassifier("").ClassifyLines(tt.in), "JANE DOE")
			if !strings.HasPrefix(md, "# ") {
				t.Fatalf("does not start with a level-1 heading: %q", md)
			}
			n := 0
			for _, l := range strings.Split(md, "\n") {
				if strings.HasPrefix(l, "# ") {
					n++
				}
			}
			if n != 1 {
				t.Fatalf("got %d level-1 headings in %q", n, md)
			}
			if strings.Contains(md, PlaceholderHeading+"\n") {
				t.Fatalf("placeholder kept: %q", md)
			}
		})
	}
}

func TestAssemble_DefaultTitle(t *testing.T) {
	got := Assemble(NewClassifier("").ClassifyLines(PlaceholderHeading+"\n\nsome text"), "JANE DOE")
	if want := "# JANE DOE\n\nsome text"; got != want {
		t.Fatalf("Assemble = %q, want %q", got, want)
	}
}

func TestAssemble_NoBlankRuns(t *testing.T) {
	md := Assemble(NewClassifier("").ClassifyLines("# JANE DOE\n\n\n\nSKILLS\n\n\n\nGo"), "JANE DOE")
	if strings.Contains(md, "\n\n\n") {
		t.Fatalf("blank-line run in %q", md)
	}
}
