package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/auth/dto"
	"github.com/shiken-app/shiken/internal/domain/user"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type UpdateTargetLevelCommand struct {
	UserID uint
	Level  int
}

type UpdateTargetLevelUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateTargetLevelUseCase(userRepo user.Repository, logger logger.Interface) *UpdateTargetLevelUseCase {
	return &UpdateTargetLevelUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateTargetLevelUseCase) Execute(ctx context.Context, cmd UpdateTargetLevelCommand) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	if err := u.SetTargetLevel(cmd.Level); err != nil {
		return nil, apperrors.NewValidationError("invalid target level", err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update target level", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to update target level: %w", err)
	}

	return dto.ToUserDTO(u), nil
}
