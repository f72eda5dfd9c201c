// Package processor_test tests the text normalization processor.
package processor_test

import (
	"context"
	"testing"

	"github.com/book-expert/logger"
	"github.com/book-expert/text-normalizer/internal/core"
	"github.com/book-expert/text-normalizer/internal/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(t *testing.T, cfg core.NormalizeConfig) *processor.Processor {
	t.Helper()

	testLogger, err := logger.New(t.TempDir(), "test-log.log")
	require.NoError(t, err)

	proc, err := processor.New(cfg, testLogger)
	require.NoError(t, err)

	return proc
}

func defaultConfig(language string) core.NormalizeConfig {
	return core.NormalizeConfig{
		Language:                    language,
		NormalizeSpacing:            true,
		FixDotLetters:               true,
		SoundWords:                  "",
		ApplyPronunciationOverrides: true,
	}
}

func TestProcessor_GetConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig("en")
	proc := newTestProcessor(t, cfg)

	assert.Equal(t, cfg, proc.GetConfig())
}

func TestProcessor_Process_English(t *testing.T) {
	t.Parallel()

	proc := newTestProcessor(t, defaultConfig("en"))

	result, err := proc.Process(
		context.Background(), []byte("The price is RM100."), defaultConfig("en"),
	)
	require.NoError(t, err)

	assert.Equal(t, "The price is one hundred ringgit.", string(result))
}

func TestProcessor_Process_Malay(t *testing.T) {
	t.Parallel()

	proc := newTestProcessor(t, defaultConfig("ms"))

	result, err := proc.Process(
		context.Background(), []byte("Harganya RM100"), defaultConfig("ms"),
	)
	require.NoError(t, err)

	assert.Equal(t, "Harganya seratus ringgit", string(result))
}

func TestProcessor_Process_RegionalLanguageCode(t *testing.T) {
	t.Parallel()

	proc := newTestProcessor(t, defaultConfig("en-US"))

	result, err := proc.Process(
		context.Background(), []byte("room 42"), defaultConfig("en-US"),
	)
	require.NoError(t, err)

	assert.Equal(t, "room forty two", string(result))
}

func TestProcessor_Process_UnknownLanguageDegrades(t *testing.T) {
	t.Parallel()

	proc := newTestProcessor(t, defaultConfig("fr"))

	result, err := proc.Process(
		context.Background(), []byte("hello   world"), defaultConfig("fr"),
	)
	require.NoError(t, err)

	assert.Equal(t, "hello world", string(result))
}
