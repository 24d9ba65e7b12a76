package handlers

import (
	"context"

	statsdto "github.com/shiken-app/shiken/internal/application/stats/dto"
)

// Use case interfaces for StatsHandler

type getStatsUseCase interface {
	Execute(ctx context.Context, userID uint) ([]*statsdto.LevelStatsDTO, error)
	ExecuteForLevel(ctx context.Context, userID uint, level int) (*statsdto.LevelStatsDTO, error)
}
