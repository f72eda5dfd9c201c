// main package for the text-normalizer-service
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/book-expert/logger"
	"github.com/book-expert/text-normalizer/internal/config"
	"github.com/book-expert/text-normalizer/internal/core"
	"github.com/book-expert/text-normalizer/internal/objectstore"
	"github.com/book-expert/text-normalizer/internal/processor"
	"github.com/book-expert/text-normalizer/internal/worker"
	"github.com/nats-io/nats.go"
)

func setupLogger(logPath string) (*logger.Logger, error) {
	log, err := logger.New(logPath, "text-normalizer-service.log")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

func run() error {
	// 1. Create a temporary logger for the bootstrap process
	bootstrapLog, err := setupLogger(os.TempDir())
	if err != nil {
		// If bootstrap logger fails, we can only print to stderr
		fmt.Fprintf(os.Stderr, "FATAL: Failed to create bootstrap logger: %v\n", err)

		return err
	}

	// 2. Load configuration using the central configurator
	cfg, err := config.Load(bootstrapLog)
	if err != nil {
		bootstrapLog.Error("Failed to load configuration: %v", err)

		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 3. Initialize the final logger based on the loaded configuration
	finalLog, err := setupLogger(cfg.Paths.BaseLogsDir)
	if err != nil {
		bootstrapLog.Error("Failed to create final logger: %v", err)

		return fmt.Errorf("failed to create final logger: %w", err)
	}

	defer func() {
		closeErr := finalLog.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "error closing final logger: %v\n", closeErr)
		}
	}()

	return runService(cfg, finalLog)
}

func runService(cfg *config.Config, log *logger.Logger) error {
	natsConnection, err := nats.Connect(cfg.NATS.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS at %s: %w", cfg.NATS.URL, err)
	}
	defer natsConnection.Close()

	jetstreamContext, err := natsConnection.JetStream()
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}

	store, err := objectstore.New(jetstreamContext, cfg.NATS.TextObjectStoreBucket)
	if err != nil {
		return fmt.Errorf("failed to create object store: %w", err)
	}

	normalizeCfg := core.NormalizeConfig{
		Language:                    cfg.Normalizer.DefaultLanguage,
		NormalizeSpacing:            cfg.Normalizer.NormalizeSpacing,
		FixDotLetters:               cfg.Normalizer.FixDotLetters,
		SoundWords:                  cfg.Normalizer.SoundWords,
		ApplyPronunciationOverrides: cfg.Normalizer.ApplyPronunciationOverrides,
	}

	textProcessor, err := processor.New(normalizeCfg, log)
	if err != nil {
		return fmt.Errorf("failed to create processor: %w", err)
	}

	natsWorker, err := worker.NewNatsWorker(
		natsConnection,
		cfg.NATS.TextExtractedSubject,
		store,
		textProcessor,
		log,
	)
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.System(
		"Text-normalizer-service successfully initialized. Listening for jobs on subject: %s",
		cfg.NATS.TextExtractedSubject,
	)

	runErr := natsWorker.Run(ctx)
	if runErr != nil {
		return fmt.Errorf("worker stopped with error: %w", runErr)
	}

	return nil
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Service exited with error: %v\n", err)
		os.Exit(1)
	}
}
