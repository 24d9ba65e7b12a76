package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/shiken-app/shiken/internal/domain/subscription/valueobjects"
)

func newTestSubscription(t *testing.T) *Subscription {
	t.Helper()
	sub, err := NewSubscription(1, ProviderLemonSqueezy, "ls-123", vo.StatusActive)
	require.NoError(t, err)
	require.NoError(t, sub.SetID(10))
	return sub
}

func TestNewSubscription_Validation(t *testing.T) {
	_, err := NewSubscription(0, ProviderLemonSqueezy, "ls-123", vo.StatusActive)
	assert.ErrorIs(t, err, ErrZeroUserID)

	_, err = NewSubscription(1, ProviderLemonSqueezy, "  ", vo.StatusActive)
	assert.ErrorIs(t, err, ErrEmptyExternalID)

	_, err = NewSubscription(1, ProviderLemonSqueezy, "ls-123", "TRIAL")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSubscription_ApplyProviderState(t *testing.T) {
	sub := newTestSubscription(t)

	end := time.Now().Add(30 * 24 * time.Hour)
	require.NoError(t, sub.ApplyProviderState(vo.StatusPastDue, &end, "https://portal.example"))

	assert.Equal(t, vo.StatusPastDue, sub.Status())
	require.NotNil(t, sub.CurrentPeriodEnd())
	assert.True(t, sub.CurrentPeriodEnd().Equal(end))
	assert.Equal(t, "https://portal.example", sub.CustomerPortalURL())

	// Nil period and empty URL leave the stored values alone.
	require.NoError(t, sub.ApplyProviderState(vo.StatusActive, nil, ""))
	require.NotNil(t, sub.CurrentPeriodEnd())
	assert.Equal(t, "https://portal.example", sub.CustomerPortalURL())

	assert.ErrorIs(t, sub.ApplyProviderState("TRIAL", nil, ""), ErrInvalidStatus)
}

func TestSubscription_MarkCancelled_Idempotent(t *testing.T) {
	sub := newTestSubscription(t)

	sub.MarkCancelled()
	require.NotNil(t, sub.CancelledAt())
	first := *sub.CancelledAt()

	// A webhook confirming the optimistic local cancel must not move the stamp.
	sub.MarkCancelled()
	assert.Equal(t, vo.StatusCancelled, sub.Status())
	assert.True(t, sub.CancelledAt().Equal(first))
}

func TestSubscription_IsCurrent(t *testing.T) {
	sub := newTestSubscription(t)
	assert.True(t, sub.IsCurrent())

	sub.MarkCancelled()
	assert.True(t, sub.IsCurrent(), "cancelled subscriptions stay visible until expiry")

	sub.MarkExpired()
	assert.False(t, sub.IsCurrent())

	sub2 := newTestSubscription(t)
	sub2.MarkPastDue()
	assert.False(t, sub2.IsCurrent())
}

func TestSubscriptionStatus_Entitlement(t *testing.T) {
	assert.True(t, vo.StatusActive.GrantsEntitlement())
	assert.False(t, vo.StatusCancelled.GrantsEntitlement())
	assert.False(t, vo.StatusExpired.GrantsEntitlement())
	assert.False(t, vo.StatusPastDue.GrantsEntitlement())
	assert.False(t, vo.StatusPaused.GrantsEntitlement())

	assert.True(t, vo.StatusExpired.IsTerminal())
	assert.False(t, vo.StatusCancelled.IsTerminal())
}

func TestMapProviderStatus(t *testing.T) {
	tests := []struct {
		provider string
		want     vo.SubscriptionStatus
		known    bool
	}{
		{"active", vo.StatusActive, true},
		{"on_trial", vo.StatusActive, true},
		{"cancelled", vo.StatusCancelled, true},
		{"expired", vo.StatusExpired, true},
		{"past_due", vo.StatusPastDue, true},
		{"paused", vo.StatusPaused, true},
		{"unpaid", vo.StatusActive, false},
		{"", vo.StatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			got, known := vo.MapProviderStatus(tt.provider)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestNewHistory(t *testing.T) {
	h, err := NewHistory(10, EventCancelled, vo.StatusActive, vo.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, uint(10), h.SubscriptionID())
	assert.Equal(t, vo.StatusActive, h.PreviousStatus())
	assert.Equal(t, vo.StatusCancelled, h.NewStatus())

	h.AddMetadata("external_id", "ls-123")
	assert.Equal(t, "ls-123", h.Metadata()["external_id"])

	_, err = NewHistory(0, EventCreated, "", vo.StatusActive)
	assert.ErrorIs(t, err, ErrZeroID)

	_, err = NewHistory(10, "UPGRADED", vo.StatusActive, vo.StatusActive)
	assert.ErrorIs(t, err, ErrInvalidEvent)
}
