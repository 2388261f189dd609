package tokenizer

import (
	"strings"

	"github.com/baditaflorin/go_case_convert/internal/pool"
	"github.com/baditaflorin/go_case_convert/internal/ports"
)

// OptimizedTokenizer implements tokenization with a precomputed ASCII
// decision table and pooled buffers.
type OptimizedTokenizer struct {
	// Decision table for ASCII characters (0-127).
	// 0 = keep as is, 1 = replace with space
	asciiTable [128]byte

	bytePool *pool.BufferPool
}

// NewOptimizedTokenizer creates a new optimized tokenizer.
func NewOptimizedTokenizer() ports.Tokenizer {
	t := &OptimizedTokenizer{
		bytePool: pool.NewBufferPool(8192), // 8K bytes initial capacity
	}

	for i := 0; i < 128; i++ {
		if isSeparator(rune(i)) {
			t.asciiTable[i] = 1
		} else {
			t.asciiTable[i] = 0
		}
	}

	return t
}

// Tokenize applies the same separator rules as the default tokenizer, with a
// byte-level fast path for ASCII-only input.
func (t *OptimizedTokenizer) Tokenize(text string) []string {
	if len(text) == 0 {
		return nil
	}

	asciiOnly := true
	for i := 0; i < len(text); i++ {
		if text[i] >= 128 {
			asciiOnly = false
			break
		}
	}

	if !asciiOnly {
		// Fall back to the rune loop for non-ASCII input.
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

	buffer := t.bytePool.Get()
	defer t.bytePool.Put(buffer)

	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0]

	for i := 0; i < len(text); i++ {
		b := text[i]
		if t.asciiTable[b] == 0 {
			*buffer = append(*buffer, b)
		} else {
			*buffer = append(*buffer, ' ')
		}
	}

	return strings.Fields(string(*buffer))
}

// TokenizerType defines the type of tokenizer to create.
type TokenizerType int

const (
	// DefaultTokenizerType uses the straightforward rune loop.
	DefaultTokenizerType TokenizerType = iota
	// OptimizedTokenizerType uses a precomputed table and buffer pooling,
	// optimized for ASCII input.
	OptimizedTokenizerType
)

// TokenizerFactory creates the appropriate tokenizer based on performance
// requirements.
type TokenizerFactory struct{}

// NewTokenizerFactory creates a new tokenizer factory.
func NewTokenizerFactory() *TokenizerFactory {
	return &TokenizerFactory{}
}

// CreateTokenizer creates a tokenizer of the specified type.
func (f *TokenizerFactory) CreateTokenizer(tokenizerType TokenizerType) ports.Tokenizer {
	switch tokenizerType {
	case OptimizedTokenizerType:
		return NewOptimizedTokenizer()
	default:
		return NewDefaultTokenizer()
	}
}
