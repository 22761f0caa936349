// CLAUDE:SUMMARY Converts HTML resumes to markdown: goquery cleanup, readability content extraction, bluemonday sanitising, html-to-markdown.
package resume

import (
	"bytes"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/hazyhaar/resumecp/horosafe"
)

var hiddenStylePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)display\s*:\s*none`),
	regexp.MustCompile(`(?i)visibility\s*:\s*hidden`),
	regexp.MustCompile(`(?i)font-size\s*:\s*0(?:[^.0-9]|$)`),
	regexp.MustCompile(`(?i)opacity\s*:\s*0(?:[^.0-9]|$)`),
}

func hasHiddenStyle(style string) bool {
	for _, pat := range hiddenStylePatterns {
		if pat.MatchString(style) {
			return true
		}
	}
	return false
}

func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
			),
			table.NewTablePlugin(),
		),
	)
}

// extractHTML converts an HTML resume to markdown. Scripts and hidden
// elements are removed first. The readability pass drops navigation and
// boilerplate; when it yields nothing the cleaned HTML is converted as-is.
func (p *Pipeline) extractHTML(path string) (string, error) {
	data, err := horosafe.ReadFile(path, p.cfg.MaxFileSize)
	if err != nil {
		return "", err
	}
	cleaned := stripHidden(data)

	if md := p.readableMarkdown(cleaned, fileURL(path)); md != "" {
		return md, nil
	}
	p.logger.Debug("html: readability yielded nothing, converting cleaned html", "path", path)

	md, err := p.md.ConvertString(cleaned)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}

// stripHidden removes script-like elements and inline-hidden nodes. On a
// parse failure the input is returned unchanged.
func stripHidden(data []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return string(data)
	}
	doc.Find("script, style, noscript, template").Remove()
	doc.Find("[style]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		style, _ := s.Attr("style")
		return hasHiddenStyle(style)
	}).Remove()

	cleaned, err := doc.Html()
	if err != nil {
		return string(data)
	}
	return cleaned
}

func (p *Pipeline) readableMarkdown(html string, pageURL *url.URL) string {
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), pageURL)
	if err != nil || strings.TrimSpace(article.Content) == "" {
		return ""
	}

	md, err := p.md.ConvertString(p.sanitizer.Sanitize(article.Content))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(md)
}

func fileURL(path string) *url.URL {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
}
