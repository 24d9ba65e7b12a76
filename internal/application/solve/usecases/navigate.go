package usecases

import (
	"context"
	"errors"

	"github.com/shiken-app/shiken/internal/application/solve"
	"github.com/shiken-app/shiken/internal/application/solve/dto"
	"github.com/shiken-app/shiken/internal/domain/exam"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type NavigateCommand struct {
	UserID    uint
	SessionID string
	Index     int
}

// NavigateUseCase jumps to another problem in the sitting. State recorded
// for the target problem is retained and returned in the snapshot.
type NavigateUseCase struct {
	sessions *solve.SessionManager
	logger   logger.Interface
}

func NewNavigateUseCase(sessions *solve.SessionManager, logger logger.Interface) *NavigateUseCase {
	return &NavigateUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *NavigateUseCase) Execute(ctx context.Context, cmd NavigateCommand) (*dto.SessionDTO, error) {
	entry, ok := uc.sessions.Get(cmd.SessionID, cmd.UserID)
	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}

	entry.Lock()
	defer entry.Unlock()

	if err := entry.Session.GoTo(cmd.Index); err != nil {
		if errors.Is(err, exam.ErrIndexOutOfRange) {
			return nil, apperrors.NewValidationError("invalid problem index", "index is outside the session")
		}
		return nil, err
	}

	return dto.ToSessionDTO(entry.Session), nil
}
