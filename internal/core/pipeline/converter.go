package pipeline

import (
	"errors"
	"strings"

	"github.com/baditaflorin/go_case_convert/internal/core/domain"
	"github.com/baditaflorin/go_case_convert/internal/ports"
)

// Config holds configuration for a case converter.
type Config struct {
	// Name identifies the conversion style in results and logs.
	Name string
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

// Converter runs the tokenize, classify, render pipeline shared by the camel
// and dot case styles.
type Converter struct {
	config    Config
	logger    ports.Logger
	tokenizer ports.Tokenizer
	speller   ports.NumberSpeller
	renderer  ports.Renderer
}

// NewConverter creates a new pipeline converter.
func NewConverter(config Config, logger ports.Logger, tokenizer ports.Tokenizer, speller ports.NumberSpeller, renderer ports.Renderer) (*Converter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	if tokenizer == nil {
		return nil, errors.New("tokenizer must not be nil")
	}
	if speller == nil {
		return nil, errors.New("speller must not be nil")
	}
	if renderer == nil {
		return nil, errors.New("renderer must not be nil")
	}

	return &Converter{
		config:    config,
		logger:    logger,
		tokenizer: tokenizer,
		speller:   speller,
		renderer:  renderer,
	}, nil
}

// Convert transforms the input value into the configured case style. Input
// validation failures are reported through Result.Err, in the order: nil
// input, non-string input, empty trimmed input, no tokens, no word units.
func (c *Converter) Convert(input any) domain.Result {
	details := make(map[string]interface{})

	if input == nil {
		c.logger.Error("Input is nil")
		return c.fail(domain.NullInput, details)
	}

	text, ok := input.(string)
	if !ok {
		c.logger.Error("Input is not a string", "input", input)
		return c.fail(domain.WrongType, details)
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		c.logger.Error("Input is empty or whitespace-only")
		return c.fail(domain.EmptyInput, details)
	}

	tokens := c.tokenizer.Tokenize(trimmed)
	c.logger.Debug("Tokenized input",
		"input", trimmed,
		"token_count", len(tokens),
	)
	if len(tokens) == 0 {
		c.logger.Error("No tokens survived cleaning", "input", trimmed)
		details["error"] = "no usable words found"
		return c.fail(domain.NoTokens, details)
	}

	units := make([]domain.WordUnit, 0, len(tokens))
	for _, token := range tokens {
		units = append(units, c.classify(token)...)
	}
	c.logger.Debug("Classified tokens",
		"token_count", len(tokens),
		"unit_count", len(units),
	)
	if len(units) == 0 {
		c.logger.Error("No word units produced", "input", trimmed)
		details["error"] = "no word tokens produced"
		return c.fail(domain.NoWordUnits, details)
	}

	output := c.renderer.Render(units)
	c.logger.Debug("Rendered output",
		"style", c.config.Name,
		"output", output,
	)

	details["token_count"] = len(tokens)
	details["unit_count"] = len(units)

	return domain.Result{
		Name:    c.config.Name,
		Output:  output,
		Units:   units,
		Details: details,
	}
}

// fail builds a Result carrying a conversion error of the given kind.
func (c *Converter) fail(kind domain.ErrorKind, details map[string]interface{}) domain.Result {
	return domain.Result{
		Name:    c.config.Name,
		Err:     domain.NewError(kind),
		Details: details,
	}
}
