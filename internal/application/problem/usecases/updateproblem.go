package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/problem/dto"
	"github.com/shiken-app/shiken/internal/domain/problem"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/utils"
)

type UpdateProblemCommand struct {
	ID uint
	AttributesInput
}

type UpdateProblemUseCase struct {
	problemRepo problem.Repository
	logger      logger.Interface
}

func NewUpdateProblemUseCase(problemRepo problem.Repository, logger logger.Interface) *UpdateProblemUseCase {
	return &UpdateProblemUseCase{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *UpdateProblemUseCase) Execute(ctx context.Context, cmd UpdateProblemCommand) (*dto.ProblemDTO, error) {
	if err := utils.ValidateStruct(cmd.AttributesInput); err != nil {
		return nil, err
	}

	entity, err := uc.problemRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, problem.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("problem not found")
		}
		uc.logger.Errorw("failed to get problem for update", "id", cmd.ID, "error", err)
		return nil, err
	}

	if err := entity.Replace(cmd.toAttributes()); err != nil {
		return nil, apperrors.NewValidationError("invalid problem", err.Error())
	}

	if err := uc.problemRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update problem", "id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to update problem: %w", err)
	}

	uc.logger.Infow("problem updated", "id", cmd.ID)
	return dto.ToProblemDTO(entity), nil
}
