package usecases

import (
	"context"
	"errors"

	"github.com/shiken-app/shiken/internal/application/problem/dto"
	"github.com/shiken-app/shiken/internal/domain/problem"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type GetProblemUseCase struct {
	problemRepo problem.Repository
	logger      logger.Interface
}

func NewGetProblemUseCase(problemRepo problem.Repository, logger logger.Interface) *GetProblemUseCase {
	return &GetProblemUseCase{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *GetProblemUseCase) Execute(ctx context.Context, id uint) (*dto.ProblemDTO, error) {
	entity, err := uc.problemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, problem.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("problem not found")
		}
		uc.logger.Errorw("failed to get problem", "id", id, "error", err)
		return nil, err
	}

	return dto.ToProblemDTO(entity), nil
}
