package resume

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one heading of an assembled document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

var markdownParser = goldmark.New().Parser()

// Outline parses markdown and returns its headings in document order.
func Outline(markdown string) []Heading {
	src := []byte(markdown)
	doc := markdownParser.Parse(text.NewReader(src))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		headings = append(headings, Heading{Level: h.Level, Text: rawLines(h, src)})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

func rawLines(n ast.Node, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return strings.TrimSpace(sb.String())
}
