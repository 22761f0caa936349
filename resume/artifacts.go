package resume

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// spelledPrefix is how many leading single-character tokens mark a line as
// character-by-character extraction output.
const spelledPrefix = 6

var (
	lineSpaceRe   = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)
	emailSpanRe   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}`)
	caseChangeRe  = regexp.MustCompile(`[a-z][A-Z]`)
	lowerUpperRe  = regexp.MustCompile(`([a-z])([A-Z])`)
	acronymWordRe = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	digitLetterRe = regexp.MustCompile(`([0-9])([A-Za-z])`)
	letterDigitRe = regexp.MustCompile(`([A-Za-z])([0-9])`)
)

// CleanArtifacts repairs PDF extraction artifacts: runs of horizontal
// whitespace become one space, and lines spelled out one character per token
// are joined and re-split on word boundaries. knownWords are split out
// verbatim before the case and digit heuristics run.
func CleanArtifacts(text string, knownWords []string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(lineSpaceRe.ReplaceAllString(line, " "))
		lines[i] = rejoinSpelled(line, knownWords)
	}
	return strings.Join(lines, "\n")
}

func rejoinSpelled(line string, knownWords []string) string {
	tokens := strings.Fields(line)
	if len(tokens) < spelledPrefix {
		return line
	}
	for _, t := range tokens[:spelledPrefix] {
		if utf8.RuneCountInString(t) != 1 {
			return line
		}
	}
	n := spelledPrefix
	for n < len(tokens) && utf8.RuneCountInString(tokens[n]) == 1 {
		n++
	}
	out := splitWords(strings.Join(tokens[:n], ""), knownWords)
	if n < len(tokens) {
		out += " " + strings.Join(tokens[n:], " ")
	}
	return out
}

// splitWords re-inserts spaces into a run of concatenated characters.
// E-mail-like spans are left untouched so their dots and @ survive.
func splitWords(joined string, knownWords []string) string {
	var sb strings.Builder
	last := 0
	for _, loc := range emailSpanRe.FindAllStringIndex(joined, -1) {
		start := loc[0] + localPartStart(joined[loc[0]:loc[1]], knownWords)
		sb.WriteString(splitSegment(joined[last:start], knownWords))
		sb.WriteByte(' ')
		sb.WriteString(joined[start:loc[1]])
		sb.WriteByte(' ')
		last = loc[1]
	}
	sb.WriteString(splitSegment(joined[last:], knownWords))
	return strings.Join(strings.Fields(sb.String()), " ")
}

// localPartStart returns the offset where the address really begins inside
// an e-mail match. Leading known words and everything up to the last
// lower-to-upper case change belong to the text before the address.
func localPartStart(email string, knownWords []string) int {
	local, _, _ := strings.Cut(email, "@")
	start := 0
	for stripped := true; stripped; {
		stripped = false
		for _, w := range knownWords {
			rest := local[start:]
			if utf8.RuneCountInString(w) >= 2 && len(rest) > len(w) && strings.HasPrefix(rest, w) {
				start += len(w)
				stripped = true
				break
			}
		}
	}
	if locs := caseChangeRe.FindAllStringIndex(local[start:], -1); len(locs) > 0 {
		start += locs[len(locs)-1][0] + 1
	}
	return start
}

func splitSegment(s string, knownWords []string) string {
	for _, w := range knownWords {
		if utf8.RuneCountInString(w) < 2 {
			continue
		}
		s = strings.ReplaceAll(s, w, " "+w+" ")
	}
	s = lowerUpperRe.ReplaceAllString(s, "$1 $2")
	s = acronymWordRe.ReplaceAllString(s, "$1 $2")
	s = digitLetterRe.ReplaceAllString(s, "$1 $2")
	s = letterDigitRe.ReplaceAllString(s, "$1 $2")
	return s
}

// knownWordsFor returns the owner name tokens in their configured and
// upper-case spellings.
func knownWordsFor(ownerName string) []string {
	seen := make(map[string]bool)
	var words []string
	for _, w := range strings.Fields(ownerName) {
		for _, v := range []string{w, strings.ToUpper(w)} {
			if !seen[v] {
				seen[v] = true
				words = append(words, v)
			}
		}
	}
	return words
}
