package usecases

import (
	"context"
	"errors"

	"github.com/shiken-app/shiken/internal/application/auth/dto"
	"github.com/shiken-app/shiken/internal/domain/user"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user profile", "user_id", userID, "error", err)
		return nil, err
	}

	return dto.ToUserDTO(u), nil
}
