// CLAUDE:SUMMARY Order-sensitive text repair passes: mojibake, broken hyphen/URL spacing, section and bullet line breaks.
package resume

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var mojibakeReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, len(mojibakeFix)*2)
	for _, p := range mojibakeFix {
		pairs = append(pairs, p[0], p[1])
	}
	return strings.NewReplacer(pairs...)
}()

var (
	profileURLRe  = regexp.MustCompile(`((?:linkedin\.com/in|github\.com)/)([A-Za-z0-9]+)[ \t]*-[ \t]*([A-Za-z0-9]+)[ \t]*-[ \t]*([A-Za-z0-9]+)`)
	urlHyphenRe   = regexp.MustCompile(`((?:https?://|www\.)[^\s]*[A-Za-z0-9])[ \t]+-[ \t]*([A-Za-z0-9])`)
	emailHyphenRe = regexp.MustCompile(`([A-Za-z0-9._+]+)[ \t]*-[ \t]+([A-Za-z0-9._+]*@[A-Za-z0-9-]+\.[A-Za-z])`)
	wordHyphenRe  = regexp.MustCompile(`(\w)[ \t]+-[ \t]+(\w)`)
	atSpacingRe   = regexp.MustCompile(`([A-Za-z0-9._+-])[ \t]*@[ \t]*([A-Za-z0-9-]+\.[A-Za-z])`)
	hspaceRunRe   = regexp.MustCompile(`[ \t]+`)
	compoundRes   = compileCompounds(CompoundTerms)

	bulletBreakRe = regexp.MustCompile(`([.!?\w)\]])[ \t]*•`)
	dashBreakRe   = regexp.MustCompile(`([.!?\w)\]])[ \t]+-[ \t]+`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)

	headerAlt     = alternation(SectionHeaders)
	punctHeaderRe = regexp.MustCompile(`([.!?;:,)\]])\s*\b(` + headerAlt + `)\b`)
	wordHeaderRe  = regexp.MustCompile(`([a-z])\s+(` + headerAlt + `)\b`)
	yearHeaderRe  = regexp.MustCompile(`\b((?:19|20)\d{2})\s+(` + headerAlt + `)\b`)
	leadInRe      = regexp.MustCompile(`\b(` + alternation(LeadInWords) + `)\s+(` + headerAlt + `)\b`)
)

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

func compileCompounds(terms []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		parts := strings.Split(term, "-")
		for i, p := range parts {
			parts[i] = regexp.QuoteMeta(p)
		}
		res = append(res, regexp.MustCompile(`(?i)\b`+strings.Join(parts, `[ \t]*-[ \t]*`)+`\b`))
	}
	return res
}

// Repairer runs the text repair passes. The only configurable input is the
// portfolio token that terminates the contact block.
type Repairer struct {
	portfolioRe *regexp.Regexp
}

// NewRepairer compiles a Repairer for the given portfolio URL fragment.
func NewRepairer(portfolioToken string) *Repairer {
	r := &Repairer{}
	if portfolioToken != "" {
		r.portfolioRe = regexp.MustCompile(`(` + regexp.QuoteMeta(portfolioToken) + `/?)[ \t]*([A-Z])`)
	}
	return r
}

// Repair applies encoding, spacing and line-break repair in that order.
func (r *Repairer) Repair(text string) string {
	text = FixEncoding(text)
	text = FixSpacing(text)
	return r.InsertBreaks(text)
}

// FixEncoding replaces known mis-decoded sequences and NFC-normalises the result.
func FixEncoding(text string) string {
	return norm.NFC.String(mojibakeReplacer.Replace(text))
}

// FixSpacing re-joins words, URLs and e-mails that extraction split around
// hyphens or the @ sign.
func FixSpacing(text string) string {
	text = profileURLRe.ReplaceAllString(text, "$1$2-$3-$4")
	for _, re := range compoundRes {
		text = re.ReplaceAllStringFunc(text, func(m string) string {
			return hspaceRunRe.ReplaceAllString(m, "")
		})
	}
	text = urlHyphenRe.ReplaceAllString(text, "$1-$2")
	text = emailHyphenRe.ReplaceAllString(text, "$1-$2")
	// Matches cannot overlap, so "a - b - c" needs a second pass.
	for i := 0; i < 3; i++ {
		next := wordHyphenRe.ReplaceAllString(text, "$1-$2")
		if next == text {
			break
		}
		text = next
	}
	return atSpacingRe.ReplaceAllString(text, "$1@$2")
}

// InsertBreaks restores the line structure around section headers, bullets
// and the end of the contact block, then collapses blank-line runs.
func (r *Repairer) InsertBreaks(text string) string {
	text = punctHeaderRe.ReplaceAllString(text, "$1\n\n$2")
	text = yearHeaderRe.ReplaceAllString(text, "$1\n\n$2")
	text = leadInRe.ReplaceAllString(text, "$1\n\n$2")
	text = wordHeaderRe.ReplaceAllString(text, "$1\n\n$2")

	text = bulletBreakRe.ReplaceAllString(text, "$1\n•")
	text = dashBreakRe.ReplaceAllString(text, "$1\n- ")

	if r.portfolioRe != nil {
		text = r.portfolioRe.ReplaceAllString(text, "$1\n\n$2")
	}
	return CollapseBlankLines(text)
}

// CollapseBlankLines reduces every run of three or more newlines to exactly two.
func CollapseBlankLines(text string) string {
	return blankRunRe.ReplaceAllString(text, "\n\n")
}

var defaultRepairer = NewRepairer(DefaultConfig().PortfolioToken)

// Repair runs the repair passes with the default portfolio token.
func Repair(text string) string {
	return defaultRepairer.Repair(text)
}
