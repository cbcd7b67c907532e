package workers

import (
	"context"
	"encoding/json"
	"time"

	"weddinghub_backend/internal/email"
	"weddinghub_backend/internal/logger"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/repositories"
)

// EmailWorker drains the email outbox in the background. Entries that
// keep failing are parked as failed after maxAttempts deliveries.
type EmailWorker struct {
	outboxRepo   repositories.OutboxRepository
	provider     email.Provider
	pollInterval time.Duration
	maxAttempts  int
	batchSize    int
}

func NewEmailWorker(
	outboxRepo repositories.OutboxRepository,
	provider email.Provider,
	pollInterval time.Duration,
	maxAttempts, batchSize int,
) *EmailWorker {
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if batchSize <= 0 {
		batchSize = 20
	}
	return &EmailWorker{
		outboxRepo:   outboxRepo,
		provider:     provider,
		pollInterval: pollInterval,
		maxAttempts:  maxAttempts,
		batchSize:    batchSize,
	}
}

// Run polls until the context is cancelled. One drain cycle runs
// immediately on start.
func (w *EmailWorker) Run(ctx context.Context) {
	logger.Info("email dispatcher started",
		"pollInterval", w.pollInterval, "maxAttempts", w.maxAttempts)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.Drain()
	for {
		select {
		case <-ctx.Done():
			logger.Info("email dispatcher stopped")
			return
		case <-ticker.C:
			w.Drain()
		}
	}
}

// Drain delivers one batch of pending outbox entries.
func (w *EmailWorker) Drain() {
	entries, err := w.outboxRepo.FindPending(w.batchSize, w.maxAttempts)
	if err != nil {
		logger.Error("outbox poll failed", "error", err)
		return
	}

	for i := range entries {
		w.deliver(&entries[i])
	}
}

func (w *EmailWorker) deliver(entry *models.EmailOutbox) {
	var data email.TemplateData
	if len(entry.Payload) > 0 {
		if err := json.Unmarshal(entry.Payload, &data); err != nil {
			// A corrupt payload never becomes deliverable; park it.
			w.fail(entry, "invalid payload: "+err.Error(), true)
			return
		}
	}

	err := w.provider.SendTemplate([]string{entry.RecipientEmail}, entry.Subject, entry.TemplateName, data)
	if err != nil {
		attempts := entry.Attempts + 1
		exhausted := attempts >= w.maxAttempts
		logger.Warn("email delivery failed",
			"outboxId", entry.ID, "attempt", attempts, "exhausted", exhausted, "error", err)
		if markErr := w.outboxRepo.MarkFailed(entry.ID, attempts, err.Error(), exhausted); markErr != nil {
			logger.Error("failed to record delivery failure", "outboxId", entry.ID, "error", markErr)
		}
		return
	}

	if err := w.outboxRepo.MarkSent(entry.ID); err != nil {
		logger.Error("failed to mark outbox entry sent", "outboxId", entry.ID, "error", err)
		return
	}
	logger.WorkerLog("email_dispatcher", "deliver "+entry.TemplateName, nil)
}

func (w *EmailWorker) fail(entry *models.EmailOutbox, reason string, exhausted bool) {
	attempts := entry.Attempts + 1
	if exhausted {
		attempts = w.maxAttempts
	}
	if err := w.outboxRepo.MarkFailed(entry.ID, attempts, reason, exhausted); err != nil {
		logger.Error("failed to park outbox entry", "outboxId", entry.ID, "error", err)
	}
}
