package repositories

import (
	"time"

	"weddinghub_backend/internal/models"

	"gorm.io/gorm"
)

type OutboxRepository interface {
	Enqueue(entry *models.EmailOutbox) error
	// FindPending returns deliverable entries oldest-first, capped at limit.
	FindPending(limit, maxAttempts int) ([]models.EmailOutbox, error)
	MarkSent(id string) error
	MarkFailed(id string, attempts int, lastError string, exhausted bool) error
}

type OutboxRepositoryImpl struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &OutboxRepositoryImpl{db: db}
}

func (r *OutboxRepositoryImpl) Enqueue(entry *models.EmailOutbox) error {
	entry.Status = models.OutboxStatusPending
	return r.db.Create(entry).Error
}

func (r *OutboxRepositoryImpl) FindPending(limit, maxAttempts int) ([]models.EmailOutbox, error) {
	var entries []models.EmailOutbox
	err := r.db.Where("status = ? AND attempts < ?", models.OutboxStatusPending, maxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *OutboxRepositoryImpl) MarkSent(id string) error {
	now := time.Now()
	return r.db.Model(&models.EmailOutbox{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":  models.OutboxStatusSent,
		"sent_at": &now,
	}).Error
}

func (r *OutboxRepositoryImpl) MarkFailed(id string, attempts int, lastError string, exhausted bool) error {
	status := models.OutboxStatusPending
	if exhausted {
		status = models.OutboxStatusFailed
	}
	return r.db.Model(&models.EmailOutbox{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"attempts":   attempts,
		"last_error": lastError,
	}).Error
}
