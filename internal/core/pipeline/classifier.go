package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/baditaflorin/go_case_convert/internal/core/domain"
)

// acronymPattern matches tokens kept intact as acronyms: two or more
// consecutive uppercase letters optionally chained with dot-separated
// uppercase groups (OECD, NATO.GOV), or dotted single-letter initials of at
// least two letters with an optional trailing bare letter (U.S.A., U.S.).
var acronymPattern = regexp.MustCompile(
	`^(?:[A-Z]{2,}(?:\.[A-Z]{2,})*|(?:[A-Z]\.){2,}|(?:[A-Z]\.)+[A-Z])$`,
)

// classify expands a raw token into its word units. An acronym token yields
// one unit with dots removed and case preserved. Any other token is split
// into alternating ASCII digit runs and text runs: digit runs are spelled out
// through the number speller, text runs are split on dots, stripped of
// non-letters and lowercased. Empty pieces are discarded.
func (c *Converter) classify(token string) []domain.WordUnit {
	if acronymPattern.MatchString(token) {
		return []domain.WordUnit{{
			Kind: domain.Acronym,
			Text: strings.ReplaceAll(token, ".", ""),
		}}
	}

	var units []domain.WordUnit
	for _, seg := range splitDigitRuns(token) {
		if seg.digits {
			for _, word := range c.speller.SpellDigits(seg.text) {
				units = append(units, domain.WordUnit{Kind: domain.Word, Text: word})
			}
			continue
		}
		for _, piece := range strings.Split(seg.text, ".") {
			word := letterOnly(piece)
			if word == "" {
				continue
			}
			units = append(units, domain.WordUnit{Kind: domain.Word, Text: strings.ToLower(word)})
		}
	}
	return units
}

// segment is a maximal run of either ASCII digits or non-digit characters.
type segment struct {
	text   string
	digits bool
}

// splitDigitRuns splits a token into alternating digit and non-digit runs,
// preserving left-to-right order.
func splitDigitRuns(token string) []segment {
	var segs []segment
	start := 0
	inDigits := false
	for i, r := range token {
		isDigit := r >= '0' && r <= '9'
		if i == 0 {
			inDigits = isDigit
			continue
		}
		if isDigit != inDigits {
			segs = append(segs, segment{text: token[start:i], digits: inDigits})
			start = i
			inDigits = isDigit
		}
	}
	if start < len(token) {
		segs = append(segs, segment{text: token[start:], digits: inDigits})
	}
	return segs
}

// letterOnly strips every rune that is not a Unicode letter.
func letterOnly(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
