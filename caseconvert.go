// caseconvert.go
// Package caseconvert converts free-form human text into programmatic naming
// conventions: camelCase, dot.case and kebab-case. Punctuation and symbols
// become separators, digit runs are spelled out as English words and
// uppercase acronyms (OECD, U.S.A.) survive intact through the camel and dot
// styles.
//
// The package-level functions keep the legacy string contract: invalid input
// is reported as a descriptive message string in place of the converted
// value. Callers that prefer structured errors should use the pkg/camel,
// pkg/dot and pkg/kebab converters directly, whose Convert methods return a
// *domain.ConversionError carrying the failure kind.
package caseconvert

import (
	"sync"

	"github.com/baditaflorin/go_case_convert/pkg/camel"
	"github.com/baditaflorin/go_case_convert/pkg/dot"
	"github.com/baditaflorin/go_case_convert/pkg/kebab"
)

// kebabInvalidInput is the only failure message the kebab-case style
// reports; its contract is narrower than the pipeline styles.
const kebabInvalidInput = "Input must be a valid string."

var (
	defaultsOnce sync.Once
	camelConv    *camel.Converter
	dotConv      *dot.Converter
	kebabConv    *kebab.Converter
)

// initDefaults builds the shared default converters. Construction only fails
// when the default logger cannot be created.
func initDefaults() {
	var err error
	if camelConv, err = camel.New(); err != nil {
		panic(err)
	}
	if dotConv, err = dot.New(); err != nil {
		panic(err)
	}
	if kebabConv, err = kebab.New(); err != nil {
		panic(err)
	}
}

// ToCamelCase converts the input to camelCase.
//
//	ToCamelCase("The 23 street is far fr$om &here")
//	// "theTwentyThreeStreetIsFarFromHere"
//
// Invalid input yields a descriptive message string instead of a converted
// value.
func ToCamelCase(input any) string {
	defaultsOnce.Do(initDefaults)
	out, err := camelConv.Convert(input)
	if err != nil {
		return err.Error()
	}
	return out
}

// ToDotCase converts the input to dot.case.
//
//	ToDotCase("user_id") // "user.id"
//
// Invalid input yields a descriptive message string instead of a converted
// value.
func ToDotCase(input any) string {
	defaultsOnce.Do(initDefaults)
	out, err := dotConv.Convert(input)
	if err != nil {
		return err.Error()
	}
	return out
}

// ToKebabCase converts the input to kebab-case.
//
//	ToKebabCase("Hello World") // "hello-world"
//
// An empty string converts to an empty string. Nil or non-string input
// yields "Input must be a valid string.".
func ToKebabCase(input any) string {
	defaultsOnce.Do(initDefaults)
	out, err := kebabConv.Convert(input)
	if err != nil {
		return kebabInvalidInput
	}
	return out
}
