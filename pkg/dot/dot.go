package dot

import (
	"context"

	"github.com/baditaflorin/go_case_convert/internal/adapters/logger"
	"github.com/baditaflorin/go_case_convert/internal/adapters/renderer"
	"github.com/baditaflorin/go_case_convert/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_case_convert/internal/core/pipeline"
	"github.com/baditaflorin/go_case_convert/internal/core/speller"
	"github.com/baditaflorin/go_case_convert/internal/ports"
	"github.com/baditaflorin/go_case_convert/internal/warmup"
	"github.com/baditaflorin/l"
)

// Converter transforms free-form text into dot.case. It shares the
// tokenizer, classifier and number speller with the camelCase pipeline and
// diverges only in rendering.
type Converter struct {
	core      *pipeline.Converter
	logger    ports.Logger
	tokenizer ports.Tokenizer
	warmed    bool
}

// Option defines a functional option for configuring the converter.
type Option func(*config)

type config struct {
	Logger            ports.Logger
	Tokenizer         ports.Tokenizer
	Speller           ports.NumberSpeller
	LowercaseAcronyms bool
	WarmUp            bool
	WarmUpConfig      warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithTokenizer sets a custom tokenizer.
func WithTokenizer(tok ports.Tokenizer) Option {
	return func(cfg *config) {
		cfg.Tokenizer = tok
	}
}

// WithOptimizedTokenizer sets the ASCII-table tokenizer with buffer pooling.
func WithOptimizedTokenizer() Option {
	return func(cfg *config) {
		factory := tokenizer.NewTokenizerFactory()
		cfg.Tokenizer = factory.CreateTokenizer(tokenizer.OptimizedTokenizerType)
	}
}

// WithSpeller sets a custom number speller.
func WithSpeller(sp ports.NumberSpeller) Option {
	return func(cfg *config) {
		cfg.Speller = sp
	}
}

// WithLowercaseAcronyms forces acronym units to lowercase, unifying them
// with word units instead of preserving their original case.
func WithLowercaseAcronyms() Option {
	return func(cfg *config) {
		cfg.LowercaseAcronyms = true
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// New creates a new dot.case converter.
func New(opts ...Option) (*Converter, error) {
	cfg := &config{
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
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
	if cfg.Tokenizer == nil {
		cfg.Tokenizer = tokenizer.NewDefaultTokenizer()
	}
	if cfg.Speller == nil {
		cfg.Speller = speller.NewEnglish()
	}

	core, err := pipeline.NewConverter(
		pipeline.Config{Name: "dot_case"},
		cfg.Logger,
		cfg.Tokenizer,
		cfg.Speller,
		&renderer.DotRenderer{LowercaseAcronyms: cfg.LowercaseAcronyms},
	)
	if err != nil {
		return nil, err
	}

	c := &Converter{
		core:      core,
		logger:    cfg.Logger,
		tokenizer: cfg.Tokenizer,
	}

	if cfg.WarmUp {
		c.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return c, nil
}

// Convert transforms the input value into dot.case. The returned error is
// always a *domain.ConversionError carrying the failure kind.
func (c *Converter) Convert(input any) (string, error) {
	result := c.core.Convert(input)
	if result.Err != nil {
		return "", result.Err
	}
	return result.Output, nil
}

// WarmUp performs system warm-up to optimize performance.
func (c *Converter) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if c.warmed {
		c.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(c.logger, config)
	warmupMgr.RegisterConverter(c.core)
	warmupMgr.RegisterTokenizer(c.tokenizer)

	warmupMgr.WarmUp(ctx)
	c.warmed = true
}
