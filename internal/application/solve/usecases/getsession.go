package usecases

import (
	"context"

	"github.com/shiken-app/shiken/internal/application/solve"
	"github.com/shiken-app/shiken/internal/application/solve/dto"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type GetSessionUseCase struct {
	sessions *solve.SessionManager
	logger   logger.Interface
}

func NewGetSessionUseCase(sessions *solve.SessionManager, logger logger.Interface) *GetSessionUseCase {
	return &GetSessionUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *GetSessionUseCase) Execute(ctx context.Context, sessionID string, userID uint) (*dto.SessionDTO, error) {
	entry, ok := uc.sessions.Get(sessionID, userID)
	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}

	entry.Lock()
	defer entry.Unlock()

	return dto.ToSessionDTO(entry.Session), nil
}
