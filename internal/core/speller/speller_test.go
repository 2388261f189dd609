package speller

import (
	"reflect"
	"testing"
)

func TestSpell(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{name: "Zero", input: 0, expected: "zero"},
		{name: "Single digit", input: 7, expected: "seven"},
		{name: "Teen", input: 14, expected: "fourteen"},
		{name: "Two digits", input: 23, expected: "twenty three"},
		{name: "Round tens", input: 40, expected: "forty"},
		{name: "One hundred", input: 100, expected: "one hundred"},
		{name: "Hundred with remainder", input: 105, expected: "one hundred five"},
		{name: "Hundred with tens and ones", input: 999, expected: "nine hundred ninety nine"},
		{name: "One thousand", input: 1000, expected: "one thousand"},
		{
			name:     "Thousand with zero hundreds chunk",
			input:    1000001,
			expected: "one million one",
		},
		{
			name:     "Full billions",
			input:    999_999_999_999,
			expected: "nine hundred ninety nine billion nine hundred ninety nine million nine hundred ninety nine thousand nine hundred ninety nine",
		},
		{
			name:     "One trillion falls back to digits",
			input:    1_000_000_000_000,
			expected: "1000000000000",
		},
		{name: "Negative falls back to digits", input: -5, expected: "-5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewEnglish().Spell(tc.input)
			if got != tc.expected {
				t.Errorf("Spell(%d) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSpellDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "Simple run", input: "23", expected: []string{"twenty", "three"}},
		{name: "Zero", input: "0", expected: []string{"zero"}},
		{name: "Leading zeros parse as the value", input: "023", expected: []string{"twenty", "three"}},
		{
			name:     "Out of range run stays literal",
			input:    "1000000000000",
			expected: []string{"1000000000000"},
		},
		{
			name:     "Overflowing run stays literal",
			input:    "99999999999999999999",
			expected: []string{"99999999999999999999"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewEnglish().SpellDigits(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("SpellDigits(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}
