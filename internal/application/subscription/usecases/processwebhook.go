package usecases

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shiken-app/shiken/internal/domain/subscription"
	vo "github.com/shiken-app/shiken/internal/domain/subscription/valueobjects"
	"github.com/shiken-app/shiken/internal/domain/user"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

// Provider webhook event names.
const (
	webhookSubscriptionCreated       = "subscription_created"
	webhookSubscriptionUpdated       = "subscription_updated"
	webhookSubscriptionCancelled     = "subscription_cancelled"
	webhookSubscriptionExpired       = "subscription_expired"
	webhookSubscriptionPaymentFailed = "subscription_payment_failed"
)

type ProcessWebhookCommand struct {
	EventName         string
	UserID            string
	ExternalID        string
	ProviderStatus    string
	RenewsAt          *time.Time
	EndsAt            *time.Time
	CustomerPortalURL string
}

// ProcessWebhookUseCase reconciles local subscription state with provider
// webhook events. The provider is the system of record: every handler sets
// absolute values, so duplicate and out-of-order deliveries converge on the
// same row instead of corrupting it.
type ProcessWebhookUseCase struct {
	subscriptionRepo subscription.Repository
	historyRepo      subscription.HistoryRepository
	userRepo         user.Repository
	logger           logger.Interface
}

func NewProcessWebhookUseCase(
	subscriptionRepo subscription.Repository,
	historyRepo subscription.HistoryRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ProcessWebhookUseCase {
	return &ProcessWebhookUseCase{
		subscriptionRepo: subscriptionRepo,
		historyRepo:      historyRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *ProcessWebhookUseCase) Execute(ctx context.Context, cmd ProcessWebhookCommand) error {
	switch cmd.EventName {
	case webhookSubscriptionCreated:
		return uc.handleCreated(ctx, cmd)
	case webhookSubscriptionUpdated:
		return uc.handleUpdated(ctx, cmd)
	case webhookSubscriptionCancelled:
		return uc.handleCancelled(ctx, cmd)
	case webhookSubscriptionExpired:
		return uc.handleExpired(ctx, cmd)
	case webhookSubscriptionPaymentFailed:
		return uc.handlePaymentFailed(ctx, cmd)
	default:
		// Unknown events are acknowledged, not retried. The provider sends
		// more event types than this backend reacts to.
		uc.logger.Infow("ignoring unhandled webhook event", "event", cmd.EventName)
		return nil
	}
}

func (uc *ProcessWebhookUseCase) handleCreated(ctx context.Context, cmd ProcessWebhookCommand) error {
	existing, err := uc.subscriptionRepo.GetByExternalID(ctx, subscription.ProviderLemonSqueezy, cmd.ExternalID)
	if err != nil {
		return fmt.Errorf("failed to look up subscription: %w", err)
	}

	if existing != nil {
		// Redelivery of a created event we already processed. Re-apply the
		// absolute state and stop; no second row, no second entitlement grant.
		uc.logger.Infow("created event replayed, re-applying state", "external_id", cmd.ExternalID)
		return uc.applyUpdate(ctx, existing, cmd, subscription.EventCreated)
	}

	userID, err := uc.resolveUserID(cmd.UserID)
	if err != nil {
		return err
	}

	// Unrecognized provider statuses default to ACTIVE on creation; a
	// checkout just completed, so the learner paid.
	status, _ := vo.MapProviderStatus(cmd.ProviderStatus)

	sub, err := subscription.NewSubscription(userID, subscription.ProviderLemonSqueezy, cmd.ExternalID, status)
	if err != nil {
		return fmt.Errorf("failed to build subscription: %w", err)
	}
	if err := sub.ApplyProviderState(status, cmd.RenewsAt, cmd.CustomerPortalURL); err != nil {
		return fmt.Errorf("failed to apply provider state: %w", err)
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := uc.syncEntitlement(ctx, sub); err != nil {
		return err
	}

	uc.appendHistory(ctx, sub, subscription.EventCreated, "", status)
	uc.logger.Infow("subscription created from webhook", "subscription_id", sub.ID(), "user_id", userID, "status", status)
	return nil
}

func (uc *ProcessWebhookUseCase) handleUpdated(ctx context.Context, cmd ProcessWebhookCommand) error {
	sub, err := uc.subscriptionRepo.GetByExternalID(ctx, subscription.ProviderLemonSqueezy, cmd.ExternalID)
	if err != nil {
		return fmt.Errorf("failed to look up subscription: %w", err)
	}
	if sub == nil {
		// Updated arrived before created. Fall back to creation so the
		// out-of-order delivery still converges.
		uc.logger.Warnw("updated event for unknown subscription, creating", "external_id", cmd.ExternalID)
		return uc.handleCreated(ctx, cmd)
	}

	return uc.applyUpdate(ctx, sub, cmd, subscription.EventRenewed)
}

func (uc *ProcessWebhookUseCase) applyUpdate(ctx context.Context, sub *subscription.Subscription, cmd ProcessWebhookCommand, event string) error {
	previous := sub.Status()

	// An unrecognized status on update leaves the stored status alone rather
	// than silently granting or revoking access.
	status, ok := vo.MapProviderStatus(cmd.ProviderStatus)
	if !ok {
		uc.logger.Warnw("unrecognized provider status, keeping stored status",
			"external_id", cmd.ExternalID, "provider_status", cmd.ProviderStatus, "stored_status", previous)
		status = previous
	}

	if err := sub.ApplyProviderState(status, cmd.RenewsAt, cmd.CustomerPortalURL); err != nil {
		return fmt.Errorf("failed to apply provider state: %w", err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	if err := uc.syncEntitlement(ctx, sub); err != nil {
		return err
	}

	uc.appendHistory(ctx, sub, event, previous, status)
	return nil
}

func (uc *ProcessWebhookUseCase) handleCancelled(ctx context.Context, cmd ProcessWebhookCommand) error {
	sub, err := uc.mustFind(ctx, cmd.ExternalID)
	if err != nil {
		return err
	}

	previous := sub.Status()
	sub.MarkCancelled()
	if cmd.EndsAt != nil {
		if err := sub.ApplyProviderState(vo.StatusCancelled, cmd.EndsAt, cmd.CustomerPortalURL); err != nil {
			return fmt.Errorf("failed to apply provider state: %w", err)
		}
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	// Entitlement is untouched: the learner paid through the period end and
	// keeps access until the expired event arrives.
	uc.appendHistory(ctx, sub, subscription.EventCancelled, previous, vo.StatusCancelled)
	uc.logger.Infow("subscription cancelled via webhook", "subscription_id", sub.ID())
	return nil
}

func (uc *ProcessWebhookUseCase) handleExpired(ctx context.Context, cmd ProcessWebhookCommand) error {
	sub, err := uc.mustFind(ctx, cmd.ExternalID)
	if err != nil {
		return err
	}

	previous := sub.Status()
	sub.MarkExpired()

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	if err := uc.syncEntitlement(ctx, sub); err != nil {
		return err
	}

	uc.appendHistory(ctx, sub, subscription.EventExpired, previous, vo.StatusExpired)
	uc.logger.Infow("subscription expired via webhook", "subscription_id", sub.ID())
	return nil
}

func (uc *ProcessWebhookUseCase) handlePaymentFailed(ctx context.Context, cmd ProcessWebhookCommand) error {
	sub, err := uc.mustFind(ctx, cmd.ExternalID)
	if err != nil {
		return err
	}

	previous := sub.Status()
	sub.MarkPastDue()

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	// Access survives the grace period. The provider either recovers the
	// payment (updated event) or gives up (expired event).
	uc.appendHistory(ctx, sub, subscription.EventPaymentFailed, previous, vo.StatusPastDue)
	uc.logger.Warnw("subscription payment failed", "subscription_id", sub.ID())
	return nil
}

func (uc *ProcessWebhookUseCase) mustFind(ctx context.Context, externalID string) (*subscription.Subscription, error) {
	sub, err := uc.subscriptionRepo.GetByExternalID(ctx, subscription.ProviderLemonSqueezy, externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("subscription %s not found", externalID))
	}
	return sub, nil
}

// syncEntitlement lines up the user's pro flag with the subscription status.
// ACTIVE grants; EXPIRED and PAUSED revoke; CANCELLED and PAST_DUE keep the
// current flag, since the learner retains access until expiry.
func (uc *ProcessWebhookUseCase) syncEntitlement(ctx context.Context, sub *subscription.Subscription) error {
	u, err := uc.userRepo.GetByID(ctx, sub.UserID())
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			uc.logger.Errorw("subscription references missing user", "subscription_id", sub.ID(), "user_id", sub.UserID())
			return apperrors.NewNotFoundError("user not found")
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	before := u.IsPro()
	switch sub.Status() {
	case vo.StatusActive:
		u.GrantPro()
	case vo.StatusExpired, vo.StatusPaused:
		u.RevokePro()
	}

	if u.IsPro() == before {
		return nil
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to update user entitlement: %w", err)
	}

	uc.logger.Infow("user entitlement updated", "user_id", u.ID(), "is_pro", u.IsPro())
	return nil
}

func (uc *ProcessWebhookUseCase) appendHistory(ctx context.Context, sub *subscription.Subscription, event string, previous, next vo.SubscriptionStatus) {
	h, err := subscription.NewHistory(sub.ID(), event, previous, next)
	if err != nil {
		uc.logger.Warnw("failed to build history entry", "subscription_id", sub.ID(), "event", event, "error", err)
		return
	}
	h.AddMetadata("external_id", sub.ExternalID())

	// The audit log is best-effort; reconciliation already succeeded.
	if err := uc.historyRepo.Append(ctx, h); err != nil {
		uc.logger.Warnw("failed to append subscription history", "subscription_id", sub.ID(), "event", event, "error", err)
	}
}

func (uc *ProcessWebhookUseCase) resolveUserID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewBadRequestError("webhook payload missing valid user ID")
	}
	return uint(id), nil
}
