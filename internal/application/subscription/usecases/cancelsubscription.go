package usecases

import (
	"context"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/subscription/dto"
	"github.com/shiken-app/shiken/internal/domain/subscription"
	vo "github.com/shiken-app/shiken/internal/domain/subscription/valueobjects"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	UserID uint
}

// CancelSubscriptionUseCase lets a learner cancel their own subscription.
// The local row is updated optimistically so the account page reflects the
// cancel immediately; the provider's webhook later confirms the same state.
type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	historyRepo      subscription.HistoryRepository
	billing          BillingGateway
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	historyRepo subscription.HistoryRepository,
	billing BillingGateway,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		historyRepo:      historyRepo,
		billing:          billing,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.GetLatestActiveByUser(ctx, cmd.UserID, subscription.ProviderLemonSqueezy)
	if err != nil {
		uc.logger.Errorw("failed to get active subscription", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("no active subscription")
	}

	if err := uc.billing.CancelSubscription(ctx, sub.ExternalID()); err != nil {
		uc.logger.Errorw("provider cancel request failed", "subscription_id", sub.ID(), "error", err)
		return nil, fmt.Errorf("failed to cancel subscription with provider: %w", err)
	}

	previous := sub.Status()
	sub.MarkCancelled()

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update cancelled subscription", "subscription_id", sub.ID(), "error", err)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	if h, err := subscription.NewHistory(sub.ID(), subscription.EventCancelled, previous, vo.StatusCancelled); err == nil {
		h.AddMetadata("initiated_by", "user")
		if err := uc.historyRepo.Append(ctx, h); err != nil {
			uc.logger.Warnw("failed to append cancel history", "subscription_id", sub.ID(), "error", err)
		}
	}

	uc.logger.Infow("subscription cancelled by user", "subscription_id", sub.ID(), "user_id", cmd.UserID)
	return dto.ToSubscriptionDTO(sub), nil
}
