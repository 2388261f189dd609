package tokenizer

import (
	"reflect"
	"testing"
)

func TestDefaultTokenizer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Plain words",
			input:    "I like to play videogame",
			expected: []string{"I", "like", "to", "play", "videogame"},
		},
		{
			name:     "Symbols stay inside tokens",
			input:    "The 23 street is far fr$om &here",
			expected: []string{"The", "23", "street", "is", "far", "fr$om", "&here"},
		},
		{
			name:     "Dots survive",
			input:    "visit NATO.GOV or the U.S.A. today",
			expected: []string{"visit", "NATO.GOV", "or", "the", "U.S.A.", "today"},
		},
		{
			name:     "Underscores and hyphens split",
			input:    "user_id some-slug",
			expected: []string{"user", "id", "some", "slug"},
		},
		{
			name:     "Underscore runs collapse",
			input:    "Another___Test",
			expected: []string{"Another", "Test"},
		},
		{
			name:     "Unicode letters survive",
			input:    "café über alles",
			expected: []string{"café", "über", "alles"},
		},
		{
			name:     "Em-dash splits",
			input:    "some—slug",
			expected: []string{"some", "slug"},
		},
		{
			name:     "Only symbols",
			input:    "$%& @!",
			expected: []string{"$%&", "@!"},
		},
		{
			name:     "Only separators",
			input:    "___ --",
			expected: nil,
		},
	}

	tok := NewDefaultTokenizer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tok.Tokenize(tc.input)
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

// The optimized tokenizer must produce identical output to the default one.
func TestOptimizedTokenizerEquivalence(t *testing.T) {
	inputs := []string{
		"",
		"I like to play videogame",
		"The 23 street is far fr$om &here",
		"visit NATO.GOV or the U.S.A. today",
		"user_id SCREEN_NAME some-slug",
		"café über alles — with em‑dashes",
		"$%& @!",
		"___ --",
		"emoji \U0001F600 inside",
	}

	def := NewDefaultTokenizer()
	opt := NewOptimizedTokenizer()
	for _, input := range inputs {
		want := def.Tokenize(input)
		got := opt.Tokenize(input)
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("tokenizers diverge for %q: optimized %v, default %v", input, got, want)
		}
	}
}

func TestTokenizerFactory(t *testing.T) {
	factory := NewTokenizerFactory()

	if _, ok := factory.CreateTokenizer(DefaultTokenizerType).(*DefaultTokenizer); !ok {
		t.Error("expected DefaultTokenizer for DefaultTokenizerType")
	}
	if _, ok := factory.CreateTokenizer(OptimizedTokenizerType).(*OptimizedTokenizer); !ok {
		t.Error("expected OptimizedTokenizer for OptimizedTokenizerType")
	}
}
