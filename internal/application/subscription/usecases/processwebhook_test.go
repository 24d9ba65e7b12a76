package usecases

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiken-app/shiken/internal/domain/subscription"
	vo "github.com/shiken-app/shiken/internal/domain/subscription/valueobjects"
	"github.com/shiken-app/shiken/internal/domain/user"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

// =====================================================================
// In-memory fakes
// =====================================================================

type fakeSubscriptionRepo struct {
	subs   map[string]*subscription.Subscription
	nextID uint
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[string]*subscription.Subscription), nextID: 1}
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, s *subscription.Subscription) error {
	if err := s.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.subs[s.ExternalID()] = s
	return nil
}

func (r *fakeSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	for _, s := range r.subs {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, subscription.ErrNotFound
}

func (r *fakeSubscriptionRepo) GetByExternalID(ctx context.Context, provider, externalID string) (*subscription.Subscription, error) {
	return r.subs[externalID], nil
}

func (r *fakeSubscriptionRepo) GetLatestActiveByUser(ctx context.Context, userID uint, provider string) (*subscription.Subscription, error) {
	for _, s := range r.subs {
		if s.UserID() == userID && s.Status() == vo.StatusActive {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) GetCurrentByUser(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	for _, s := range r.subs {
		if s.UserID() == userID && s.IsCurrent() {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, s *subscription.Subscription) error {
	r.subs[s.ExternalID()] = s
	return nil
}

type fakeHistoryRepo struct {
	entries []*subscription.History
}

func (r *fakeHistoryRepo) Append(ctx context.Context, h *subscription.History) error {
	r.entries = append(r.entries, h)
	return nil
}

func (r *fakeHistoryRepo) ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*subscription.History, error) {
	return r.entries, nil
}

type fakeUserRepo struct {
	users map[uint]*user.User
}

func newFakeUserRepo(t *testing.T, ids ...uint) *fakeUserRepo {
	t.Helper()
	repo := &fakeUserRepo{users: make(map[uint]*user.User)}
	for _, id := range ids {
		u, err := user.NewUser("learner@example.com", "Learner", "")
		require.NoError(t, err)
		require.NoError(t, u.SetID(id))
		repo.users[id] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) Upsert(ctx context.Context, email, name, image string) (*user.User, error) {
	return nil, user.ErrNotFound
}

// =====================================================================
// Test harness
// =====================================================================

type webhookFixture struct {
	uc      *ProcessWebhookUseCase
	subs    *fakeSubscriptionRepo
	history *fakeHistoryRepo
	users   *fakeUserRepo
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()
	subs := newFakeSubscriptionRepo()
	history := &fakeHistoryRepo{}
	users := newFakeUserRepo(t, 42)
	log := logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
	return &webhookFixture{
		uc:      NewProcessWebhookUseCase(subs, history, users, log),
		subs:    subs,
		history: history,
		users:   users,
	}
}

func createdCommand() ProcessWebhookCommand {
	renews := time.Now().Add(30 * 24 * time.Hour)
	return ProcessWebhookCommand{
		EventName:         "subscription_created",
		UserID:            "42",
		ExternalID:        "ls-1",
		ProviderStatus:    "active",
		RenewsAt:          &renews,
		CustomerPortalURL: "https://portal.example",
	}
}

// =====================================================================
// Tests
// =====================================================================

func TestProcessWebhook_CreatedGrantsEntitlement(t *testing.T) {
	f := newWebhookFixture(t)

	require.NoError(t, f.uc.Execute(context.Background(), createdCommand()))

	sub := f.subs.subs["ls-1"]
	require.NotNil(t, sub)
	assert.Equal(t, uint(42), sub.UserID())
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, "https://portal.example", sub.CustomerPortalURL())

	u, _ := f.users.GetByID(context.Background(), 42)
	assert.True(t, u.IsPro())

	require.Len(t, f.history.entries, 1)
	assert.Equal(t, subscription.EventCreated, f.history.entries[0].Event())
}

func TestProcessWebhook_CreatedReplayIsIdempotent(t *testing.T) {
	f := newWebhookFixture(t)
	cmd := createdCommand()

	require.NoError(t, f.uc.Execute(context.Background(), cmd))
	require.NoError(t, f.uc.Execute(context.Background(), cmd))

	assert.Len(t, f.subs.subs, 1, "redelivery must not create a second row")
	sub := f.subs.subs["ls-1"]
	assert.Equal(t, vo.StatusActive, sub.Status())
}

func TestProcessWebhook_FullLifecycle(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.Execute(ctx, createdCommand()))

	u, _ := f.users.GetByID(ctx, 42)
	require.True(t, u.IsPro())

	// Cancellation keeps access until the period runs out.
	ends := time.Now().Add(20 * 24 * time.Hour)
	require.NoError(t, f.uc.Execute(ctx, ProcessWebhookCommand{
		EventName:      "subscription_cancelled",
		ExternalID:     "ls-1",
		ProviderStatus: "cancelled",
		EndsAt:         &ends,
	}))
	assert.Equal(t, vo.StatusCancelled, f.subs.subs["ls-1"].Status())
	assert.NotNil(t, f.subs.subs["ls-1"].CancelledAt())
	u, _ = f.users.GetByID(ctx, 42)
	assert.True(t, u.IsPro(), "cancelled learners keep access until expiry")

	// Expiry revokes.
	require.NoError(t, f.uc.Execute(ctx, ProcessWebhookCommand{
		EventName:  "subscription_expired",
		ExternalID: "ls-1",
	}))
	assert.Equal(t, vo.StatusExpired, f.subs.subs["ls-1"].Status())
	u, _ = f.users.GetByID(ctx, 42)
	assert.False(t, u.IsPro())

	assert.Len(t, f.history.entries, 3)
}

func TestProcessWebhook_PaymentFailedKeepsAccess(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.Execute(ctx, createdCommand()))
	require.NoError(t, f.uc.Execute(ctx, ProcessWebhookCommand{
		EventName:  "subscription_payment_failed",
		ExternalID: "ls-1",
	}))

	assert.Equal(t, vo.StatusPastDue, f.subs.subs["ls-1"].Status())
	u, _ := f.users.GetByID(ctx, 42)
	assert.True(t, u.IsPro(), "grace period until the provider gives up")
}

func TestProcessWebhook_UpdatedBeforeCreatedFallsBack(t *testing.T) {
	f := newWebhookFixture(t)
	cmd := createdCommand()
	cmd.EventName = "subscription_updated"

	require.NoError(t, f.uc.Execute(context.Background(), cmd))

	sub := f.subs.subs["ls-1"]
	require.NotNil(t, sub, "out-of-order update must create the row")
	assert.Equal(t, vo.StatusActive, sub.Status())
}

func TestProcessWebhook_UnrecognizedStatusOnUpdateKeepsStored(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.Execute(ctx, createdCommand()))
	require.NoError(t, f.uc.Execute(ctx, ProcessWebhookCommand{
		EventName:  "subscription_payment_failed",
		ExternalID: "ls-1",
	}))
	require.Equal(t, vo.StatusPastDue, f.subs.subs["ls-1"].Status())

	require.NoError(t, f.uc.Execute(ctx, ProcessWebhookCommand{
		EventName:      "subscription_updated",
		ExternalID:     "ls-1",
		ProviderStatus: "some_future_status",
	}))

	assert.Equal(t, vo.StatusPastDue, f.subs.subs["ls-1"].Status(),
		"unknown provider status must not silently change state")
}

func TestProcessWebhook_UpdatedRecoversPastDue(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	require.NoError(t, f.uc.Execute(ctx, createdCommand()))
	require.NoError(t, f.uc.Execute(ctx, ProcessWebhookCommand{
		EventName:  "subscription_payment_failed",
		ExternalID: "ls-1",
	}))

	require.NoError(t, f.uc.Execute(ctx, ProcessWebhookCommand{
		EventName:      "subscription_updated",
		ExternalID:     "ls-1",
		ProviderStatus: "active",
	}))

	assert.Equal(t, vo.StatusActive, f.subs.subs["ls-1"].Status())
	u, _ := f.users.GetByID(ctx, 42)
	assert.True(t, u.IsPro())
}

func TestProcessWebhook_UnknownEventIsAcknowledged(t *testing.T) {
	f := newWebhookFixture(t)

	err := f.uc.Execute(context.Background(), ProcessWebhookCommand{
		EventName:  "order_created",
		ExternalID: "ls-9",
	})

	assert.NoError(t, err, "unhandled events must be acked, not retried")
	assert.Empty(t, f.subs.subs)
}

func TestProcessWebhook_CancelledForUnknownSubscription(t *testing.T) {
	f := newWebhookFixture(t)

	err := f.uc.Execute(context.Background(), ProcessWebhookCommand{
		EventName:  "subscription_cancelled",
		ExternalID: "never-seen",
	})

	assert.Error(t, err)
}

func TestProcessWebhook_CreatedWithBadUserID(t *testing.T) {
	f := newWebhookFixture(t)
	cmd := createdCommand()
	cmd.UserID = "not-a-number"

	assert.Error(t, f.uc.Execute(context.Background(), cmd))
	assert.Empty(t, f.subs.subs)
}
