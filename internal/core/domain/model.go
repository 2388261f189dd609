package domain

// UnitKind distinguishes the two kinds of word units produced by
// classification.
type UnitKind int

const (
	// Word is a plain lowercase word (digits already expanded, punctuation
	// stripped).
	Word UnitKind = iota
	// Acronym is an intact uppercase sequence with interior dots removed,
	// case preserved.
	Acronym
)

// String returns the name of the unit kind.
func (k UnitKind) String() string {
	switch k {
	case Word:
		return "word"
	case Acronym:
		return "acronym"
	default:
		return "unknown"
	}
}

// WordUnit is the atomic output of token classification, consumed by a case
// renderer. Text is never empty.
type WordUnit struct {
	Kind UnitKind
	Text string
}

// Result holds the outcome of a case conversion.
type Result struct {
	// Name of the conversion style, e.g. "camel_case".
	Name string
	// Output is the rendered string. Empty when Err is set.
	Output string
	// Units is the classified word unit sequence the output was rendered
	// from.
	Units []WordUnit
	// Err is non-nil when the input could not be converted.
	Err *ConversionError
	// Details holds additional diagnostic information.
	Details map[string]interface{}
}
