package handlers

import (
	"context"

	authdto "github.com/shiken-app/shiken/internal/application/auth/dto"
	"github.com/shiken-app/shiken/internal/application/auth/usecases"
)

// Use case interfaces for AuthHandler

type googleLoginUseCase interface {
	Execute() (*usecases.GoogleLoginResult, error)
}

type googleCallbackUseCase interface {
	Execute(ctx context.Context, cmd usecases.GoogleCallbackCommand) (*authdto.LoginResult, error)
}

type getProfileUseCase interface {
	Execute(ctx context.Context, userID uint) (*authdto.UserDTO, error)
}

type updateTargetLevelUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTargetLevelCommand) (*authdto.UserDTO, error)
}
