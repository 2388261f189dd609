package domain

// ErrorKind enumerates the conversion failure modes so callers can branch on
// kind instead of matching message text.
type ErrorKind int

const (
	// NullInput means the input value was nil.
	NullInput ErrorKind = iota
	// WrongType means the input value was not a string.
	WrongType
	// EmptyInput means the trimmed input was empty.
	EmptyInput
	// NoTokens means the tokenizer produced no tokens after cleaning.
	NoTokens
	// NoWordUnits means classification produced no word units.
	NoWordUnits
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case NullInput:
		return "null_input"
	case WrongType:
		return "wrong_type"
	case EmptyInput:
		return "empty_input"
	case NoTokens:
		return "no_tokens"
	case NoWordUnits:
		return "no_word_units"
	default:
		return "unknown"
	}
}

// ConversionError is a conversion failure carrying its kind.
type ConversionError struct {
	Kind ErrorKind
}

// NewError creates a ConversionError of the given kind.
func NewError(kind ErrorKind) *ConversionError {
	return &ConversionError{Kind: kind}
}

// Error returns the human-readable message for the error kind. The messages
// are part of the legacy string contract exposed by the root package.
func (e *ConversionError) Error() string {
	switch e.Kind {
	case NullInput:
		return "Invalid input: value is null or undefined; expected a non-empty string."
	case WrongType:
		return "Invalid input: expected a string."
	case EmptyInput:
		return "Invalid input: empty or whitespace-only string."
	case NoTokens:
		return "Invalid input: no usable words found after cleaning."
	case NoWordUnits:
		return "Invalid input: no word tokens produced after processing."
	default:
		return "Invalid input."
	}
}
