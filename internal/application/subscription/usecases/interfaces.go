package usecases

import "context"

// BillingGateway is the provider API surface the usecases need. The concrete
// client lives in infrastructure.
type BillingGateway interface {
	// CreateCheckout opens a hosted checkout session and returns its URL.
	CreateCheckout(ctx context.Context, userID uint, email string) (string, error)
	// CancelSubscription requests cancellation at period end. The state
	// change is confirmed later by webhook.
	CancelSubscription(ctx context.Context, externalID string) error
}
