package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiken-app/shiken/internal/domain/subscription"
	"github.com/shiken-app/shiken/internal/domain/user"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type CreateCheckoutCommand struct {
	UserID uint
}

type CreateCheckoutResult struct {
	CheckoutURL string `json:"checkout_url"`
}

// CreateCheckoutUseCase opens a hosted checkout session for a learner
// without an active subscription.
type CreateCheckoutUseCase struct {
	subscriptionRepo subscription.Repository
	userRepo         user.Repository
	billing          BillingGateway
	logger           logger.Interface
}

func NewCreateCheckoutUseCase(
	subscriptionRepo subscription.Repository,
	userRepo user.Repository,
	billing BillingGateway,
	logger logger.Interface,
) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		billing:          billing,
		logger:           logger,
	}
}

func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, cmd CreateCheckoutCommand) (*CreateCheckoutResult, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user for checkout", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	existing, err := uc.subscriptionRepo.GetLatestActiveByUser(ctx, cmd.UserID, subscription.ProviderLemonSqueezy)
	if err != nil {
		uc.logger.Errorw("failed to check existing subscription", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("subscription already active")
	}

	url, err := uc.billing.CreateCheckout(ctx, u.ID(), u.Email())
	if err != nil {
		uc.logger.Errorw("failed to create checkout session", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	uc.logger.Infow("checkout session created", "user_id", cmd.UserID)
	return &CreateCheckoutResult{CheckoutURL: url}, nil
}
