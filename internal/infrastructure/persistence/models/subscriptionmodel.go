package models

import (
	"time"

	"github.com/shiken-app/shiken/internal/shared/constants"
)

// SubscriptionModel is the database persistence model for subscriptions.
type SubscriptionModel struct {
	ID                 uint   `gorm:"primarykey"`
	UserID             uint   `gorm:"not null;index:idx_user_subscription"`
	Provider           string `gorm:"not null;size:30;index:idx_provider_external,priority:1"`
	ExternalID         string `gorm:"not null;size:100;index:idx_provider_external,priority:2"`
	Status             string `gorm:"not null;size:20;index:idx_sub_status"`
	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time
	CustomerPortalURL  string `gorm:"size:500"`
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
