package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiken-app/shiken/internal/domain/problem"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type DeleteProblemUseCase struct {
	problemRepo problem.Repository
	logger      logger.Interface
}

func NewDeleteProblemUseCase(problemRepo problem.Repository, logger logger.Interface) *DeleteProblemUseCase {
	return &DeleteProblemUseCase{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *DeleteProblemUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.problemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, problem.ErrNotFound) {
			return apperrors.NewNotFoundError("problem not found")
		}
		uc.logger.Errorw("failed to delete problem", "id", id, "error", err)
		return fmt.Errorf("failed to delete problem: %w", err)
	}

	uc.logger.Infow("problem deleted", "id", id)
	return nil
}
