package restrictions

import (
	"regexp"
	"strings"
)

type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

func rw(pattern, replacement string) rewrite {
	return rewrite{pattern: regexp.MustCompile(pattern), replacement: replacement}
}

// rewrites run in order after lowercasing. Each entry fixes a defect seen in
// chart text; the grammars downstream assume the canonical spellings.
var rewrites = []rewrite{
	// compound typos that must be fixed before punctuation is stripped
	rw(`\by-year-olds\b`, "year olds"),
	rw(`\bfillies/mares\b`, "fillies and mares"),
	rw(`\bthre\b`, "three"),
	rw(`\bthreeyear\b`, "three year"),
	rw(`\bttwo\b`, "two"),
	rw(`\bmaresthree\b`, "mares three"),

	// punctuation becomes whitespace
	rw(`[.,:;\[\]\-"'%+\\/*!]`, " "),

	// keep & and parentheses separated from their neighbours
	rw(`&`, " & "),
	rw(`\(\s*`, " ("),
	rw(`\s*\)`, ") "),

	// angle-bracketed annotations
	rw(`(?s)<.+>\s?`, ""),

	// common misspellings
	rw(`\b(fof|f0r|fo|foe|fofor|foor|ffor)\b`, "for"),
	rw(`\bcolt\b`, "colts"),
	rw(`\bgelding\b`, "geldings"),
	rw(`\b(filly|filiies|filles|filllies|filies|fillie|fililies|filliies|fllies|filli\s+es|fillie\s+s)\b`, "fillies"),
	rw(`\b(mare|maress|mareds|marees|amres)\b`, "mares"),
	rw(`\b(yaer|yera|yr|yar|yer|yers)\b`, "years"),
	rw(`\b(and|adn|ands|und|amd|ans|a\s+nd|an\s+d)\b`, "&"),
	rw(`\b(oldsa|olda|ols|0lds|onld)\b`, "olds"),
	rw(`\b(up|upaward|uwpard|uward|upwrd|upqward|upwa|upwar)\b`, "upwards"),

	// number words
	rw(`\bone\b`, "1"),
	rw(`\btwo\b`, "2"),
	rw(`\bthree\b`, "3"),
	rw(`\bfour\b`, "4"),
	rw(`\bfive\b`, "5"),
	rw(`\bsix\b`, "6"),
	rw(`\bseven\b`, "7"),
	rw(`\beight\b`, "8"),
	rw(`\bnine\b`, "9"),
	rw(`\bten\b`, "10"),
	rw(`\beleven\b`, "11"),
	rw(`\btwelve\b`, "12"),

	rw(`\s+`, " "),
}

// Normalize lowercases race conditions text and rewrites it into the
// canonical vocabulary the restriction grammars expect: known typos fixed,
// punctuation dropped, "and" spelled "&", number words as digits and
// whitespace collapsed.
//
// Dropping an angle-bracketed annotation can join what was around it into a
// new typo or glue "&" and "(" to a neighbour, so the table is reapplied until
// the text stops changing. Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.ToLower(text)
	for i := 0; i < maxPasses; i++ {
		next := applyRewrites(text)
		if next == text {
			break
		}
		text = next
	}
	return text
}

// maxPasses bounds the fixpoint loop; each annotation removed costs at most
// one extra pass.
const maxPasses = 8

func applyRewrites(text string) string {
	for _, r := range rewrites {
		text = r.pattern.ReplaceAllLiteralString(text, r.replacement)
	}
	return text
}
