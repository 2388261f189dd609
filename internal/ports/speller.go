package ports

// NumberSpeller defines the interface for expanding numbers into words.
type NumberSpeller interface {
	// Spell returns the spelled-out form of n, or its digit string when n is
	// outside the supported range.
	Spell(n int64) string

	// SpellDigits expands a run of ASCII digits into individual spelled
	// words. Runs that cannot be parsed or spelled are returned as a single
	// element holding the literal run.
	SpellDigits(run string) []string
}
