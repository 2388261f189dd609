package kebab

import (
	"github.com/baditaflorin/go_case_convert/internal/adapters/logger"
	corekebab "github.com/baditaflorin/go_case_convert/internal/core/kebab"
	"github.com/baditaflorin/go_case_convert/internal/ports"
	"github.com/baditaflorin/l"
)

// Converter transforms free-form text into kebab-case. This style runs a
// lighter path than the camel and dot pipelines: no number spelling and no
// acronym preservation.
type Converter struct {
	core   *corekebab.Converter
	logger ports.Logger
}

// Option defines a functional option for configuring the converter.
type Option func(*config)

type config struct {
	Logger ports.Logger
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// New creates a new kebab-case converter.
func New(opts ...Option) (*Converter, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	core, err := corekebab.NewConverter(cfg.Logger)
	if err != nil {
		return nil, err
	}

	return &Converter{
		core:   core,
		logger: cfg.Logger,
	}, nil
}

// Convert transforms the input value into kebab-case. An empty string
// converts to an empty string. Nil and non-string inputs return a
// *domain.ConversionError.
func (c *Converter) Convert(input any) (string, error) {
	result := c.core.Convert(input)
	if result.Err != nil {
		return "", result.Err
	}
	return result.Output, nil
}
