package usecases

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/shiken-app/shiken/internal/application/problem/dto"
	"github.com/shiken-app/shiken/internal/domain/problem"
	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type GetRandomProblemQuery struct {
	Level int
	Type  string
}

// GetRandomProblemUseCase picks a uniformly random problem within one
// (level, type) pool. Count plus offset keeps the selection cheap without
// loading the pool into memory.
type GetRandomProblemUseCase struct {
	problemRepo problem.Repository
	logger      logger.Interface
}

func NewGetRandomProblemUseCase(problemRepo problem.Repository, logger logger.Interface) *GetRandomProblemUseCase {
	return &GetRandomProblemUseCase{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *GetRandomProblemUseCase) Execute(ctx context.Context, query GetRandomProblemQuery) (*dto.ProblemDTO, error) {
	problemType := vo.ProblemType(query.Type)
	if !problemType.IsValid() {
		return nil, apperrors.NewValidationError("invalid problem type", query.Type)
	}
	if query.Level < 1 || query.Level > 5 {
		return nil, apperrors.NewValidationError("invalid level", "level must be between 1 and 5")
	}

	total, err := uc.problemRepo.CountByFilter(ctx, query.Level, problemType)
	if err != nil {
		uc.logger.Errorw("failed to count problems", "level", query.Level, "type", query.Type, "error", err)
		return nil, fmt.Errorf("failed to count problems: %w", err)
	}
	if total == 0 {
		return nil, apperrors.NewNotFoundError("no problems available for this level and type")
	}

	entity, err := uc.problemRepo.GetByOffset(ctx, query.Level, problemType, rand.Int63n(total))
	if err != nil {
		if errors.Is(err, problem.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no problems available for this level and type")
		}
		uc.logger.Errorw("failed to get random problem", "level", query.Level, "type", query.Type, "error", err)
		return nil, fmt.Errorf("failed to get random problem: %w", err)
	}

	return dto.ToProblemDTO(entity), nil
}
