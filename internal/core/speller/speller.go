package speller

import (
	"strconv"
	"strings"

	"github.com/baditaflorin/go_case_convert/internal/ports"
)

// MaxSpellable is the exclusive upper bound of the supported range. Values at
// or above it are returned as their digit string.
const MaxSpellable = 1_000_000_000_000

// Process-wide immutable name tables.
var (
	ones = [20]string{
		"", "one", "two", "three", "four", "five", "six", "seven", "eight",
		"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
		"sixteen", "seventeen", "eighteen", "nineteen",
	}
	tens = [10]string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
		"eighty", "ninety",
	}
	scales = [4]string{"", "thousand", "million", "billion"}
)

// English spells non-negative integers as lowercase English words.
type English struct{}

// NewEnglish creates a new English number speller.
func NewEnglish() ports.NumberSpeller {
	return &English{}
}

// Spell returns the lowercase English words for n, joined by single spaces.
// Negative values and values >= MaxSpellable fall back to the digit string.
func (s *English) Spell(n int64) string {
	if n < 0 || n >= MaxSpellable {
		return strconv.FormatInt(n, 10)
	}
	if n == 0 {
		return "zero"
	}

	// Decompose into 3-digit chunks, least significant first.
	var chunks [4]int64
	count := 0
	for rest := n; rest > 0; rest /= 1000 {
		chunks[count] = rest % 1000
		count++
	}

	// Emit most significant first, skipping zero chunks entirely.
	words := make([]string, 0, 8)
	for i := count - 1; i >= 0; i-- {
		if chunks[i] == 0 {
			continue
		}
		words = append(words, spellChunk(int(chunks[i]))...)
		if scales[i] != "" {
			words = append(words, scales[i])
		}
	}
	return strings.Join(words, " ")
}

// SpellDigits expands a run of ASCII digits into spelled words. Runs that
// overflow int64 or exceed the spellable range come back as a single element
// holding the literal run.
func (s *English) SpellDigits(run string) []string {
	n, err := strconv.ParseInt(run, 10, 64)
	if err != nil {
		return []string{run}
	}
	return strings.Fields(s.Spell(n))
}

// spellChunk spells a value in [1, 999].
func spellChunk(n int) []string {
	var words []string
	if n >= 100 {
		words = append(words, ones[n/100], "hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		words = append(words, tens[n/10])
		if n%10 != 0 {
			words = append(words, ones[n%10])
		}
	case n > 0:
		words = append(words, ones[n])
	}
	return words
}
