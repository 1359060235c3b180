package postgres

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/internal/domain/entity"
	domainerrors "github.com/antoniopd1/mercado-local-mex/internal/domain/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/repository"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// webhookEventRepository implements the repository.WebhookEventRepository interface.
type webhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository is the constructor for webhookEventRepository.
func NewWebhookEventRepository(db *gorm.DB) repository.WebhookEventRepository {
	return &webhookEventRepository{
		db: db,
	}
}

// Exists reports whether the event id is already in the ledger.
func (repo *webhookEventRepository) Exists(ctx context.Context, eventID string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProcessedWebhookEventModel{}).
		Where("event_id = ?", eventID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to look up webhook event")
	}

	return count > 0, nil
}

// Record inserts a ledger row. The unique index on event_id rejects a second writer.
func (repo *webhookEventRepository) Record(ctx context.Context, event *entity.ProcessedWebhookEvent) error {
	eventM := &model.ProcessedWebhookEventModel{
		EventID:     event.EventID,
		EventType:   event.EventType,
		CustomerID:  event.CustomerID,
		Outcome:     string(event.Outcome),
		ProcessedAt: event.ProcessedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWebhookEvent
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record webhook event")
	}

	return nil
}
