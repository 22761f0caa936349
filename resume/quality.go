// CLAUDE:SUMMARY Text quality metrics deciding whether a PDF full-document pass is usable or needs the per-page fallback.
package resume

import (
	"strings"
	"unicode"
)

// ExtractionQuality captures metrics about extracted text.
type ExtractionQuality struct {
	NonSpaceChars  int     `json:"non_space_chars"`
	PrintableRatio float64 `json:"printable_ratio"`
	WordlikeRatio  float64 `json:"wordlike_ratio"`
}

// MeasureText computes quality metrics for text.
func MeasureText(text string) ExtractionQuality {
	return ExtractionQuality{
		NonSpaceChars:  countNonSpace(text),
		PrintableRatio: computePrintableRatio(text),
		WordlikeRatio:  computeWordlikeRatio(text),
	}
}

// Usable reports whether the text is worth keeping over a fallback pass.
// Character-per-token output has a low word-like ratio and is rejected.
func (q ExtractionQuality) Usable(minChars int) bool {
	return q.NonSpaceChars >= minChars && q.PrintableRatio >= 0.85 && q.WordlikeRatio >= 0.5
}

func countNonSpace(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// computePrintableRatio returns the ratio of printable characters in text.
// Excludes PUA U+E000-U+F8FF, control chars < U+0020 (except \n\r\t), U+FFFD.
func computePrintableRatio(text string) float64 {
	if len(text) == 0 {
		return 1.0
	}
	total := 0
	printable := 0
	for _, r := range text {
		total++
		if isGarbageRune(r) {
			continue
		}
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	return float64(printable) / float64(total)
}

func isGarbageRune(r rune) bool {
	if r >= 0xE000 && r <= 0xF8FF {
		return true
	}
	if r == 0xFFFD {
		return true
	}
	return r < 0x0020 && r != '\n' && r != '\r' && r != '\t'
}

// computeWordlikeRatio returns the ratio of word-like tokens (length 2-15) to total tokens.
func computeWordlikeRatio(text string) float64 {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	wordlike := 0
	for _, f := range fields {
		n := len([]rune(f))
		if n >= 2 && n <= 15 {
			wordlike++
		}
	}
	return float64(wordlike) / float64(len(fields))
}
