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

type SelectOptionCommand struct {
	UserID      uint
	SessionID   string
	OptionIndex int
}

// SelectOptionUseCase records the learner's tentative choice for the current
// problem. Reselecting overwrites; a submitted problem refuses changes.
type SelectOptionUseCase struct {
	sessions *solve.SessionManager
	logger   logger.Interface
}

func NewSelectOptionUseCase(sessions *solve.SessionManager, logger logger.Interface) *SelectOptionUseCase {
	return &SelectOptionUseCase{
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *SelectOptionUseCase) Execute(ctx context.Context, cmd SelectOptionCommand) (*dto.SessionDTO, error) {
	entry, ok := uc.sessions.Get(cmd.SessionID, cmd.UserID)
	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}

	entry.Lock()
	defer entry.Unlock()

	if err := entry.Session.Select(cmd.OptionIndex); err != nil {
		switch {
		case errors.Is(err, exam.ErrAlreadySubmitted):
			return nil, apperrors.NewConflictError("answer already submitted")
		case errors.Is(err, exam.ErrOptionOutOfRange):
			return nil, apperrors.NewValidationError("invalid option index", "option index must be between 0 and 3")
		}
		return nil, err
	}

	return dto.ToSessionDTO(entry.Session), nil
}
