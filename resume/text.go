package resume

import (
	"strings"
	"unicode/utf8"

	"github.com/hazyhaar/resumecp/horosafe"
)

// maxTitleRunes bounds the first line promoted to a heading by ensureHeading.
const maxTitleRunes = 50

// extractText reads a plain text or markdown file verbatim.
func extractText(path string, maxBytes int64) (string, error) {
	data, err := horosafe.ReadFile(path, maxBytes)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// ensureHeading makes sure text starts with a markdown heading. A short,
// non-bullet first line becomes the heading; otherwise the placeholder
// heading is prepended.
func ensureHeading(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "#") {
		return text
	}
	first, rest, _ := strings.Cut(text, "\n")
	first = strings.TrimSpace(first)
	if first != "" && utf8.RuneCountInString(first) < maxTitleRunes && !isBullet(first) {
		return strings.TrimSpace("# " + first + "\n\n" + strings.TrimLeft(rest, "\n"))
	}
	return PlaceholderHeading + "\n\n" + text
}
