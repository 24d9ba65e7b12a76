package dto

import (
	"time"

	"github.com/shiken-app/shiken/internal/domain/subscription"
)

// SubscriptionDTO is the account-page view of a subscription.
type SubscriptionDTO struct {
	ID                uint       `json:"id"`
	Provider          string     `json:"provider"`
	Status            string     `json:"status"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end,omitempty"`
	CustomerPortalURL string     `json:"customer_portal_url,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ToSubscriptionDTO converts a domain subscription.
func ToSubscriptionDTO(s *subscription.Subscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	return &SubscriptionDTO{
		ID:                s.ID(),
		Provider:          s.Provider(),
		Status:            s.Status().String(),
		CurrentPeriodEnd:  s.CurrentPeriodEnd(),
		CustomerPortalURL: s.CustomerPortalURL(),
		CancelledAt:       s.CancelledAt(),
		CreatedAt:         s.CreatedAt(),
	}
}
