// Package core defines the business interfaces for the text-normalizer
// service.
package core

import "context"

// ObjectStore is the interface for the key-value blob store that carries text
// payloads between pipeline services.
type ObjectStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// NormalizeConfig holds the configuration for a single normalization job,
// allowing per-request customization of the spoken output.
type NormalizeConfig struct {
	Language                    string
	NormalizeSpacing            bool
	FixDotLetters               bool
	SoundWords                  string
	ApplyPronunciationOverrides bool
}

// TextNormalizer is the interface for a text normalization engine.
type TextNormalizer interface {
	Process(ctx context.Context, text []byte, cfg NormalizeConfig) ([]byte, error)
	GetConfig() NormalizeConfig
}
