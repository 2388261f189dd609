// Package kebab implements the kebab-case conversion. It is a deliberately
// separate, lighter-weight path than the tokenizer pipeline: numbers are not
// spelled out and acronyms are lowercased like every other token.
package kebab

import (
	"errors"
	"strings"

	"github.com/baditaflorin/go_case_convert/internal/core/domain"
	"github.com/baditaflorin/go_case_convert/internal/ports"
)

// Converter lowercases input and joins the surviving words with hyphens.
type Converter struct {
	logger ports.Logger
}

// NewConverter creates a new kebab-case converter.
func NewConverter(logger ports.Logger) (*Converter, error) {
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	return &Converter{logger: logger}, nil
}

// Convert transforms the input value into kebab-case. Unlike the pipeline
// styles, an empty string converts to an empty string rather than an error;
// only nil and non-string inputs fail.
func (c *Converter) Convert(input any) domain.Result {
	if input == nil {
		c.logger.Error("Input is nil")
		return domain.Result{Name: "kebab_case", Err: domain.NewError(domain.NullInput)}
	}

	text, ok := input.(string)
	if !ok {
		c.logger.Error("Input is not a string", "input", input)
		return domain.Result{Name: "kebab_case", Err: domain.NewError(domain.WrongType)}
	}

	output := Normalize(text)
	c.logger.Debug("Rendered output",
		"style", "kebab_case",
		"output", output,
	)
	return domain.Result{Name: "kebab_case", Output: output}
}

// Normalize lowercases the trimmed input, replaces every character that is
// not a lowercase ASCII letter, an ASCII digit or whitespace with a space,
// and joins the resulting fields with hyphens. It is idempotent.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), "-")
}
