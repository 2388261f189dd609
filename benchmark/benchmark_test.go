package benchmark

import (
	"strings"
	"testing"

	"github.com/baditaflorin/go_case_convert/internal/core/kebab"
	"github.com/baditaflorin/go_case_convert/internal/core/speller"
	"github.com/baditaflorin/go_case_convert/pkg/camel"
	"github.com/baditaflorin/go_case_convert/pkg/dot"
)

// generateText creates a text of the specified size by repeating a sample text
func generateText(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "The 23 street is far fr$om &here. OECD is an international organization of 38 member countries, visit NATO.GOV or the U.S.A. for more."
	var sb strings.Builder
	sb.Grow(size)

	for sb.Len() < size {
		sb.WriteString(sample)
		sb.WriteString(" ")
	}

	if sb.Len() > size {
		return sb.String()[:size]
	}
	return sb.String()
}

func benchmarkCamel(b *testing.B, size int, opts ...camel.Option) {
	conv, err := camel.New(opts...)
	if err != nil {
		b.Fatalf("camel.New: %v", err)
	}
	text := generateText(size)

	b.ResetTimer()
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		_, _ = conv.Convert(text)
	}
}

func BenchmarkCamelSmall(b *testing.B)  { benchmarkCamel(b, 100) }
func BenchmarkCamelMedium(b *testing.B) { benchmarkCamel(b, 10_000) }

func BenchmarkCamelOptimizedSmall(b *testing.B) {
	benchmarkCamel(b, 100, camel.WithOptimizedTokenizer())
}

func BenchmarkCamelOptimizedMedium(b *testing.B) {
	benchmarkCamel(b, 10_000, camel.WithOptimizedTokenizer())
}

func BenchmarkDotMedium(b *testing.B) {
	conv, err := dot.New()
	if err != nil {
		b.Fatalf("dot.New: %v", err)
	}
	text := generateText(10_000)

	b.ResetTimer()
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		_, _ = conv.Convert(text)
	}
}

func BenchmarkKebabMedium(b *testing.B) {
	text := generateText(10_000)

	b.ResetTimer()
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		_ = kebab.Normalize(text)
	}
}

func BenchmarkSpell(b *testing.B) {
	sp := speller.NewEnglish()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sp.Spell(int64(i) % 999_999_999_999)
	}
}
