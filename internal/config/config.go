// Package config provides the configuration structure for the
// text-normalizer service.
package config

import (
	"fmt"

	"github.com/book-expert/configurator"
	"github.com/book-expert/logger"
)

// NATSConfig holds the configuration for NATS.
type NATSConfig struct {
	URL                   string `toml:"url"`
	TextStreamName        string `toml:"text_stream_name"`
	TextConsumerName      string `toml:"text_consumer_name"`
	TextExtractedSubject  string `toml:"text_extracted_subject"`
	TextNormalizedSubject string `toml:"text_normalized_subject"`
	TextObjectStoreBucket string `toml:"text_object_store_bucket"`
}

// NormalizerConfig holds the default normalization options applied when a job
// does not override them.
type NormalizerConfig struct {
	DefaultLanguage             string `toml:"default_language"`
	NormalizeSpacing            bool   `toml:"normalize_spacing"`
	FixDotLetters               bool   `toml:"fix_dot_letters"`
	SoundWords                  string `toml:"sound_words"`
	ApplyPronunciationOverrides bool   `toml:"apply_pronunciation_overrides"`
}

// PathsConfig holds the configuration for file paths.
type PathsConfig struct {
	BaseLogsDir string `toml:"base_logs_dir"`
}

// Config is the root configuration structure.
type Config struct {
	NATS       NATSConfig       `toml:"nats"`
	Normalizer NormalizerConfig `toml:"normalizer"`
	Paths      PathsConfig      `toml:"paths"`
}

// Load loads the configuration for the text-normalizer service.
func Load(log *logger.Logger) (*Config, error) {
	var cfg Config

	err := configurator.Load(&cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from configurator: %w", err)
	}

	return &cfg, nil
}
