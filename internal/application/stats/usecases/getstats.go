package usecases

import (
	"context"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/stats/dto"
	"github.com/shiken-app/shiken/internal/domain/stats"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type GetStatsUseCase struct {
	statsRepo stats.Repository
	logger    logger.Interface
}

func NewGetStatsUseCase(statsRepo stats.Repository, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// Execute returns counters for every level the learner has touched. A
// learner with no submissions gets an empty list, not an error.
func (uc *GetStatsUseCase) Execute(ctx context.Context, userID uint) ([]*dto.LevelStatsDTO, error) {
	all, err := uc.statsRepo.GetAllStats(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get stats", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return dto.ToLevelStatsDTOs(all), nil
}

// ExecuteForLevel returns one level's counters.
func (uc *GetStatsUseCase) ExecuteForLevel(ctx context.Context, userID uint, level int) (*dto.LevelStatsDTO, error) {
	if level < 1 || level > 5 {
		return nil, apperrors.NewValidationError("invalid level", "level must be between 1 and 5")
	}

	ls, err := uc.statsRepo.GetLevelStats(ctx, userID, level)
	if err != nil {
		uc.logger.Errorw("failed to get level stats", "user_id", userID, "level", level, "error", err)
		return nil, fmt.Errorf("failed to get level stats: %w", err)
	}
	if ls == nil {
		return nil, apperrors.NewNotFoundError("no stats recorded for this level")
	}

	return dto.ToLevelStatsDTO(ls), nil
}
