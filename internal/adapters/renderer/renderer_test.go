package renderer

import (
	"testing"

	"github.com/baditaflorin/go_case_convert/internal/core/domain"
)

func word(text string) domain.WordUnit {
	return domain.WordUnit{Kind: domain.Word, Text: text}
}

func acronym(text string) domain.WordUnit {
	return domain.WordUnit{Kind: domain.Acronym, Text: text}
}

func TestCamelRenderer(t *testing.T) {
	tests := []struct {
		name     string
		units    []domain.WordUnit
		expected string
	}{
		{
			name:     "Single word",
			units:    []domain.WordUnit{word("hello")},
			expected: "hello",
		},
		{
			name:     "Words are title-cased after the first",
			units:    []domain.WordUnit{word("i"), word("like"), word("to")},
			expected: "iLikeTo",
		},
		{
			name:     "Leading acronym keeps its case",
			units:    []domain.WordUnit{acronym("OECD"), word("report")},
			expected: "OECDReport",
		},
		{
			name:     "Interior acronym keeps its case",
			units:    []domain.WordUnit{word("the"), acronym("USA"), word("report")},
			expected: "theUSAReport",
		},
		{
			name:     "Unicode word",
			units:    []domain.WordUnit{word("café"), word("über")},
			expected: "caféÜber",
		},
	}

	r := NewCamelRenderer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Render(tc.units)
			if got != tc.expected {
				t.Errorf("Render(%v) = %q, want %q", tc.units, got, tc.expected)
			}
		})
	}
}

func TestDotRenderer(t *testing.T) {
	units := []domain.WordUnit{word("user"), word("id")}
	if got := NewDotRenderer().Render(units); got != "user.id" {
		t.Errorf("Render = %q, want %q", got, "user.id")
	}

	// Acronym units keep their original case by default.
	units = []domain.WordUnit{acronym("SCREEN"), acronym("NAME")}
	if got := NewDotRenderer().Render(units); got != "SCREEN.NAME" {
		t.Errorf("Render = %q, want %q", got, "SCREEN.NAME")
	}

	// LowercaseAcronyms unifies acronym handling with word units.
	r := &DotRenderer{LowercaseAcronyms: true}
	if got := r.Render(units); got != "screen.name" {
		t.Errorf("Render with LowercaseAcronyms = %q, want %q", got, "screen.name")
	}
}
