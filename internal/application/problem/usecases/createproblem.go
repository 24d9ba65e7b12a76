package usecases

import (
	"context"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/problem/dto"
	"github.com/shiken-app/shiken/internal/domain/problem"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/utils"
)

type CreateProblemCommand struct {
	AttributesInput
}

type CreateProblemUseCase struct {
	problemRepo problem.Repository
	logger      logger.Interface
}

func NewCreateProblemUseCase(problemRepo problem.Repository, logger logger.Interface) *CreateProblemUseCase {
	return &CreateProblemUseCase{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *CreateProblemUseCase) Execute(ctx context.Context, cmd CreateProblemCommand) (*dto.ProblemDTO, error) {
	if err := utils.ValidateStruct(cmd.AttributesInput); err != nil {
		return nil, err
	}

	entity, err := problem.NewProblem(cmd.toAttributes())
	if err != nil {
		return nil, apperrors.NewValidationError("invalid problem", err.Error())
	}

	if err := uc.problemRepo.Create(ctx, entity); err != nil {
		uc.logger.Errorw("failed to create problem", "error", err)
		return nil, fmt.Errorf("failed to create problem: %w", err)
	}

	uc.logger.Infow("problem created", "id", entity.ID(), "level", entity.Level(), "type", entity.Type())
	return dto.ToProblemDTO(entity), nil
}
