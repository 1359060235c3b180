package model

import "time"

// ProcessedWebhookEventModel mirrors the 'processed_webhook_events' dedupe ledger.
type ProcessedWebhookEventModel struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	EventID     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	EventType   string `gorm:"type:varchar(100);not null"`
	CustomerID  string `gorm:"type:varchar(255);not null;index"`
	Outcome     string `gorm:"type:varchar(32);not null"`
	ProcessedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProcessedWebhookEventModel) TableName() string {
	return "processed_webhook_events"
}

// All lists every persistence model, in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&BusinessModel{},
		&OfferModel{},
		&ProcessedWebhookEventModel{},
	}
}
