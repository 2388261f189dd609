package ports

// Tokenizer defines the interface for splitting cleaned text into raw tokens.
type Tokenizer interface {
	// Tokenize replaces every run of separator characters (whitespace,
	// underscores, hyphen-class punctuation) with a single space and splits
	// on whitespace. Other symbols stay inside their token for the
	// classifier to strip. Original order and case of the surviving tokens
	// are preserved.
	Tokenize(text string) []string
}
