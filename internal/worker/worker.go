// Package worker provides a NATS worker that processes text normalization
// jobs.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/book-expert/events"
	"github.com/book-expert/logger"
	"github.com/book-expert/text-normalizer/internal/core"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const handleMessageTimeout = 30 * time.Second

// normalizedKeySuffix is appended to the generated object key for the
// normalized payload.
const normalizedKeySuffix = ".txt"

var (
	// ErrLanguageEmpty indicates that no job or default language is set.
	ErrLanguageEmpty = errors.New("language cannot be empty")
	// ErrUnsupportedLanguage indicates a language outside the supported set.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// supportedLanguages is the whitelist of locale codes the service accepts.
var supportedLanguages = map[string]struct{}{
	"en": {},
	"ms": {},
}

// NatsWorker listens for text normalization jobs on a NATS subject and
// processes them.
type NatsWorker struct {
	natsConnection *nats.Conn
	subject        string
	store          core.ObjectStore
	normalizer     core.TextNormalizer
	log            *logger.Logger
}

// NewNatsWorker creates a new instance of a NATS worker.
func NewNatsWorker(
	natsConnection *nats.Conn,
	subject string,
	store core.ObjectStore,
	normalizer core.TextNormalizer,
	log *logger.Logger,
) (*NatsWorker, error) {
	return &NatsWorker{
		natsConnection: natsConnection,
		subject:        subject,
		store:          store,
		normalizer:     normalizer,
		log:            log,
	}, nil
}

// Run starts the worker and begins listening for messages.
func (w *NatsWorker) Run(ctx context.Context) error {
	sub, err := w.natsConnection.Subscribe(w.subject, w.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", w.subject, err)
	}

	<-ctx.Done()

	drainErr := sub.Drain()
	if drainErr != nil {
		return fmt.Errorf("failed to drain subscription: %w", drainErr)
	}

	return nil
}

// handleMessage processes one job. A failure is logged and dropped; one bad
// job never stops the worker.
func (w *NatsWorker) handleMessage(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), handleMessageTimeout)
	defer cancel()

	event, err := parseEvent(msg)
	if err != nil {
		w.log.Error("Failed to parse event: %v", err)

		return
	}

	normalizedKey, processErr := w.processNormalizeJob(ctx, event)
	if processErr != nil {
		w.log.Error(
			"Failed to process normalization job for event %s: %v",
			event.Header.WorkflowID, processErr,
		)

		return
	}

	replyEvent := buildReplyEvent(event, normalizedKey)

	err = w.publishReplyEvent(msg, replyEvent)
	if err != nil {
		w.log.Error(
			"Failed to publish reply event for workflow %s: %v",
			event.Header.WorkflowID, err,
		)
	}
}

// processNormalizeJob downloads the raw text, normalizes it, and uploads the
// normalized payload under a fresh key. The raw object is deleted once the
// normalized payload is stored; a failed delete is logged but does not fail
// the job.
func (w *NatsWorker) processNormalizeJob(
	ctx context.Context,
	event *events.TextProcessedEvent,
) (string, error) {
	textData, err := w.store.Download(ctx, event.TextKey)
	if err != nil {
		return "", fmt.Errorf("failed to download text data for key '%s': %w", event.TextKey, err)
	}

	normalizeCfg := w.normalizer.GetConfig()

	validationErr := w.validateNormalizeConfig(normalizeCfg)
	if validationErr != nil {
		w.log.Error(
			"Invalid normalization configuration for workflow %s: %v",
			event.Header.WorkflowID, validationErr,
		)

		return "", validationErr
	}

	normalizedData, err := w.normalizer.Process(ctx, textData, normalizeCfg)
	if err != nil {
		return "", fmt.Errorf("failed to normalize text: %w", err)
	}

	normalizedKey := uuid.NewString() + normalizedKeySuffix

	err = w.store.Upload(ctx, normalizedKey, normalizedData)
	if err != nil {
		return "", fmt.Errorf("failed to upload normalized text for key '%s': %w", normalizedKey, err)
	}

	deleteErr := w.store.Delete(ctx, event.TextKey)
	if deleteErr != nil {
		w.log.Warn("Failed to delete raw text object '%s': %v", event.TextKey, deleteErr)
	}

	return normalizedKey, nil
}

// buildReplyEvent carries the normalized key forward while passing the TTS
// parameters of the incoming event through untouched.
func buildReplyEvent(
	event *events.TextProcessedEvent,
	normalizedKey string,
) *events.TextProcessedEvent {
	return &events.TextProcessedEvent{
		Header:            event.Header,
		TextKey:           normalizedKey,
		PNGKey:            event.PNGKey,
		PageNumber:        event.PageNumber,
		TotalPages:        event.TotalPages,
		Voice:             event.Voice,
		Seed:              event.Seed,
		NGL:               event.NGL,
		TopP:              event.TopP,
		RepetitionPenalty: event.RepetitionPenalty,
		Temperature:       event.Temperature,
	}
}

// publishReplyEvent marshals and responds with the normalized-text event.
func (w *NatsWorker) publishReplyEvent(msg *nats.Msg, replyEvent *events.TextProcessedEvent) error {
	replyData, err := json.Marshal(replyEvent)
	if err != nil {
		return fmt.Errorf("failed to marshal reply event: %w", err)
	}

	err = msg.Respond(replyData)
	if err != nil {
		return fmt.Errorf("failed to publish reply event: %w", err)
	}

	return nil
}

func parseEvent(msg *nats.Msg) (*events.TextProcessedEvent, error) {
	var event events.TextProcessedEvent

	err := json.Unmarshal(msg.Data, &event)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// validateNormalizeConfig ensures the job configuration carries a supported
// language. The library itself degrades gracefully on unknown languages, but
// a misconfigured service should fail loudly instead of silently emitting
// half-normalized text.
func (w *NatsWorker) validateNormalizeConfig(cfg core.NormalizeConfig) error {
	if cfg.Language == "" {
		return ErrLanguageEmpty
	}

	if _, ok := supportedLanguages[cfg.Language]; !ok {
		return fmt.Errorf("%w: '%s'", ErrUnsupportedLanguage, cfg.Language)
	}

	return nil
}
