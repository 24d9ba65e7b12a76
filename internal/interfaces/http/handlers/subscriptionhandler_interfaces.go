package handlers

import (
	"context"

	subdto "github.com/shiken-app/shiken/internal/application/subscription/dto"
	"github.com/shiken-app/shiken/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler and WebhookHandler

type createCheckoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCheckoutCommand) (*usecases.CreateCheckoutResult, error)
}

type cancelSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelSubscriptionCommand) (*subdto.SubscriptionDTO, error)
}

type getCurrentSubscriptionUseCase interface {
	Execute(ctx context.Context, userID uint) (*subdto.SubscriptionDTO, error)
}

type processWebhookUseCase interface {
	Execute(ctx context.Context, cmd usecases.ProcessWebhookCommand) error
}
