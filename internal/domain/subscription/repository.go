package subscription

import "context"

// Repository persists subscriptions. Rows are never deleted, only
// transitioned to terminal EXPIRED.
type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// GetByExternalID looks a subscription up by the provider's ID. Returns
	// (nil, nil) when absent so webhook handlers can fall back to creation.
	GetByExternalID(ctx context.Context, provider, externalID string) (*Subscription, error)
	// GetLatestActiveByUser returns the user's most recent ACTIVE subscription
	// from the given provider, or (nil, nil) when there is none.
	GetLatestActiveByUser(ctx context.Context, userID uint, provider string) (*Subscription, error)
	// GetCurrentByUser returns the most recent ACTIVE or CANCELLED
	// subscription for account-page display, or (nil, nil).
	GetCurrentByUser(ctx context.Context, userID uint) (*Subscription, error)
	Update(ctx context.Context, s *Subscription) error
}

// HistoryRepository appends audit entries. Write-only from the application's
// perspective aside from the per-subscription listing.
type HistoryRepository interface {
	Append(ctx context.Context, h *History) error
	ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*History, error)
}
