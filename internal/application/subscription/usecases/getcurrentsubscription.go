package usecases

import (
	"context"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/subscription/dto"
	"github.com/shiken-app/shiken/internal/domain/subscription"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

// GetCurrentSubscriptionUseCase returns the subscription shown on the
// account page, or nil when the learner has none worth showing.
type GetCurrentSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetCurrentSubscriptionUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *GetCurrentSubscriptionUseCase {
	return &GetCurrentSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetCurrentSubscriptionUseCase) Execute(ctx context.Context, userID uint) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.GetCurrentByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get current subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return dto.ToSubscriptionDTO(sub), nil
}
