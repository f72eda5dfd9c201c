// Package processor implements the core.TextNormalizer interface over the
// normalizer library.
package processor

import (
	"context"

	"github.com/book-expert/logger"
	"github.com/book-expert/text-normalizer/internal/core"
	"github.com/book-expert/text-normalizer/normalizer"
)

// Processor implements core.TextNormalizer with the transduction pipeline
// from the normalizer package.
type Processor struct {
	config     core.NormalizeConfig
	normalizer *normalizer.Normalizer
	log        *logger.Logger
}

// New creates a new Processor with the given default job configuration.
func New(cfg core.NormalizeConfig, log *logger.Logger) (*Processor, error) {
	return &Processor{
		config:     cfg,
		normalizer: normalizer.New(),
		log:        log,
	}, nil
}

// GetConfig returns the default normalization configuration.
func (p *Processor) GetConfig() core.NormalizeConfig {
	return p.config
}

// Process normalizes text into its spoken form. An unrecognized language
// falls back to the locale-independent stages only, matching the library's
// graceful degradation contract, so Process never fails on content.
func (p *Processor) Process(
	_ context.Context,
	text []byte,
	cfg core.NormalizeConfig,
) ([]byte, error) {
	lang, ok := normalizer.ParseLanguage(cfg.Language)
	if !ok {
		p.log.Warn(
			"Unrecognized language %q: applying locale-independent stages only",
			cfg.Language,
		)
	}

	opts := normalizer.Options{
		NormalizeSpacing:            cfg.NormalizeSpacing,
		FixDotLetters:               cfg.FixDotLetters,
		SoundWords:                  cfg.SoundWords,
		ApplyPronunciationOverrides: cfg.ApplyPronunciationOverrides,
	}

	normalized := p.normalizer.Normalize(string(text), lang, opts)

	return []byte(normalized), nil
}
