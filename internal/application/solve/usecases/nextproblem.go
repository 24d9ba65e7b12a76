package usecases

import (
	"context"

	"github.com/shiken-app/shiken/internal/application/solve"
	"github.com/shiken-app/shiken/internal/application/solve/dto"
	"github.com/shiken-app/shiken/internal/domain/exam"
	"github.com/shiken-app/shiken/internal/domain/problem"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type NextProblemCommand struct {
	UserID    uint
	SessionID string
}

// NextProblemUseCase draws a fresh random problem into a practice session,
// discarding the current problem's state. Exam sittings keep their fixed
// sequence and refuse this operation.
type NextProblemUseCase struct {
	problemRepo problem.Repository
	sessions    *solve.SessionManager
	logger      logger.Interface
}

func NewNextProblemUseCase(problemRepo problem.Repository, sessions *solve.SessionManager, logger logger.Interface) *NextProblemUseCase {
	return &NextProblemUseCase{
		problemRepo: problemRepo,
		sessions:    sessions,
		logger:      logger,
	}
}

func (uc *NextProblemUseCase) Execute(ctx context.Context, cmd NextProblemCommand) (*dto.SessionDTO, error) {
	entry, ok := uc.sessions.Get(cmd.SessionID, cmd.UserID)
	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}

	entry.Lock()
	defer entry.Unlock()

	session := entry.Session
	if session.Mode() != exam.ModePractice {
		return nil, apperrors.NewBadRequestError("next is only available in practice mode")
	}

	next, err := drawRandomProblem(ctx, uc.problemRepo, session.Level(), entry.PracticeType)
	if err != nil {
		uc.logger.Errorw("failed to draw next practice problem", "session_id", cmd.SessionID, "error", err)
		return nil, err
	}

	session.SwapProblem(next)
	return dto.ToSessionDTO(session), nil
}
