package tokenizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_case_convert/internal/ports"
)

// DefaultTokenizer implements the default Unicode-aware tokenization
// strategy.
type DefaultTokenizer struct{}

// NewDefaultTokenizer creates a new default tokenizer.
func NewDefaultTokenizer() ports.Tokenizer {
	return &DefaultTokenizer{}
}

// isSeparator reports whether r splits tokens: whitespace, underscores and
// hyphen-class punctuation. Other symbols stay inside their token so the
// classifier can strip them without splitting the surrounding word.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '_' || unicode.Is(unicode.Pd, r)
}

// Tokenize replaces every run of separator characters with a single space,
// then splits on whitespace. Dots survive so dotted acronyms stay
// recognizable downstream; embedded symbols (fr$om) survive for the
// classifier to strip.
func (t *DefaultTokenizer) Tokenize(text string) []string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if isSeparator(r) {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(r)
		}
	}
	return strings.Fields(sb.String())
}
