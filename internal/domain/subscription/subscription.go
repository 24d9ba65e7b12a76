package subscription

import (
	"errors"
	"strings"
	"time"

	vo "github.com/shiken-app/shiken/internal/domain/subscription/valueobjects"
)

// ProviderLemonSqueezy tags subscriptions managed by the Lemon Squeezy
// hosted-checkout integration.
const ProviderLemonSqueezy = "LEMON_SQUEEZY"

var (
	ErrZeroID          = errors.New("subscription ID cannot be zero")
	ErrIDAlreadySet    = errors.New("subscription ID is already set")
	ErrZeroUserID      = errors.New("user ID is required")
	ErrEmptyExternalID = errors.New("external subscription ID is required")
	ErrInvalidStatus   = errors.New("invalid subscription status")
	ErrNotFound        = errors.New("subscription not found")
)

// Subscription mirrors one billing-provider subscription. The provider is the
// system of record; every field here is an absolute-value copy of the latest
// known provider state, which keeps webhook re-delivery harmless.
type Subscription struct {
	id                 uint
	userID             uint
	provider           string
	externalID         string
	status             vo.SubscriptionStatus
	currentPeriodStart *time.Time
	currentPeriodEnd   *time.Time
	customerPortalURL  string
	cancelledAt        *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewSubscription creates a subscription from a provider "created" event.
func NewSubscription(userID uint, provider, externalID string, status vo.SubscriptionStatus) (*Subscription, error) {
	if userID == 0 {
		return nil, ErrZeroUserID
	}
	if strings.TrimSpace(externalID) == "" {
		return nil, ErrEmptyExternalID
	}
	if !vo.ValidStatuses[status] {
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	return &Subscription{
		userID:     userID,
		provider:   provider,
		externalID: externalID,
		status:     status,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(
	id, userID uint,
	provider, externalID string,
	status vo.SubscriptionStatus,
	currentPeriodStart, currentPeriodEnd *time.Time,
	customerPortalURL string,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, ErrZeroID
	}
	if userID == 0 {
		return nil, ErrZeroUserID
	}
	if !vo.ValidStatuses[status] {
		return nil, ErrInvalidStatus
	}
	return &Subscription{
		id:                 id,
		userID:             userID,
		provider:           provider,
		externalID:         externalID,
		status:             status,
		currentPeriodStart: currentPeriodStart,
		currentPeriodEnd:   currentPeriodEnd,
		customerPortalURL:  customerPortalURL,
		cancelledAt:        cancelledAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (s *Subscription) ID() uint                       { return s.id }
func (s *Subscription) UserID() uint                   { return s.userID }
func (s *Subscription) Provider() string               { return s.provider }
func (s *Subscription) ExternalID() string             { return s.externalID }
func (s *Subscription) Status() vo.SubscriptionStatus  { return s.status }
func (s *Subscription) CurrentPeriodStart() *time.Time { return s.currentPeriodStart }
func (s *Subscription) CurrentPeriodEnd() *time.Time   { return s.currentPeriodEnd }
func (s *Subscription) CustomerPortalURL() string      { return s.customerPortalURL }
func (s *Subscription) CancelledAt() *time.Time        { return s.cancelledAt }
func (s *Subscription) CreatedAt() time.Time           { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time           { return s.updatedAt }

// SetID sets the subscription ID (persistence layer use only).
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrZeroID
	}
	s.id = id
	return nil
}

// ApplyProviderState overwrites status and billing period with the values a
// webhook reported. The set is absolute, so re-applying the same event is a
// no-op on the row.
func (s *Subscription) ApplyProviderState(status vo.SubscriptionStatus, periodEnd *time.Time, portalURL string) error {
	if !vo.ValidStatuses[status] {
		return ErrInvalidStatus
	}
	s.status = status
	if periodEnd != nil {
		s.currentPeriodEnd = periodEnd
	}
	if portalURL != "" {
		s.customerPortalURL = portalURL
	}
	s.updatedAt = time.Now()
	return nil
}

// MarkCancelled records a cancellation without touching the billing period;
// the learner keeps access until the provider reports expiry. Idempotent: a
// webhook arriving after an optimistic local cancel just re-stamps the state.
func (s *Subscription) MarkCancelled() {
	now := time.Now()
	s.status = vo.StatusCancelled
	if s.cancelledAt == nil {
		s.cancelledAt = &now
	}
	s.updatedAt = now
}

// MarkExpired transitions the subscription to its terminal state.
func (s *Subscription) MarkExpired() {
	s.status = vo.StatusExpired
	s.updatedAt = time.Now()
}

// MarkPastDue records a failed renewal payment. Entitlement is left to the
// caller (grace period policy).
func (s *Subscription) MarkPastDue() {
	s.status = vo.StatusPastDue
	s.updatedAt = time.Now()
}

// IsCurrent reports whether the subscription should be shown as the user's
// current one on the account page.
func (s *Subscription) IsCurrent() bool {
	return s.status == vo.StatusActive || s.status == vo.StatusCancelled
}
