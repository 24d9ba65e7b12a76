package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/shiken-app/shiken/internal/shared/constants"
)

// SubscriptionHistoryModel is the append-only audit table for subscription
// lifecycle events.
type SubscriptionHistoryModel struct {
	ID             uint   `gorm:"primarykey"`
	SubscriptionID uint   `gorm:"not null;index:idx_history_subscription"`
	Event          string `gorm:"not null;size:30"`
	PreviousStatus string `gorm:"size:20"`
	NewStatus      string `gorm:"size:20"`
	Metadata       datatypes.JSON
	CreatedAt      time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionHistoryModel) TableName() string {
	return constants.TableSubscriptionHistories
}
