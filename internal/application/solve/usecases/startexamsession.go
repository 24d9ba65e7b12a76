package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/solve"
	"github.com/shiken-app/shiken/internal/application/solve/dto"
	"github.com/shiken-app/shiken/internal/domain/exam"
	"github.com/shiken-app/shiken/internal/domain/problem"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type StartExamSessionCommand struct {
	UserID     uint
	MockExamID uint
}

// StartExamSessionUseCase opens a sitting over a mock exam. Problems are
// sequenced in their canonical display order at start time.
type StartExamSessionUseCase struct {
	examRepo    exam.Repository
	problemRepo problem.Repository
	sessions    *solve.SessionManager
	logger      logger.Interface
}

func NewStartExamSessionUseCase(
	examRepo exam.Repository,
	problemRepo problem.Repository,
	sessions *solve.SessionManager,
	logger logger.Interface,
) *StartExamSessionUseCase {
	return &StartExamSessionUseCase{
		examRepo:    examRepo,
		problemRepo: problemRepo,
		sessions:    sessions,
		logger:      logger,
	}
}

func (uc *StartExamSessionUseCase) Execute(ctx context.Context, cmd StartExamSessionCommand) (*dto.SessionDTO, error) {
	if _, err := uc.examRepo.GetByID(ctx, cmd.MockExamID); err != nil {
		if errors.Is(err, exam.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("mock exam not found")
		}
		uc.logger.Errorw("failed to get mock exam for session", "id", cmd.MockExamID, "error", err)
		return nil, err
	}

	problems, err := uc.problemRepo.GetByMockExamID(ctx, cmd.MockExamID)
	if err != nil {
		uc.logger.Errorw("failed to get exam problems", "mock_exam_id", cmd.MockExamID, "error", err)
		return nil, fmt.Errorf("failed to get exam problems: %w", err)
	}
	if len(problems) == 0 {
		return nil, apperrors.NewNotFoundError("mock exam not found")
	}

	numbered := exam.NumberProblems(problems)
	ordered := make([]*problem.Problem, 0, len(numbered))
	for _, np := range numbered {
		ordered = append(ordered, np.Problem)
	}

	session := exam.NewExamSession(uc.sessions.NewID(), cmd.MockExamID, ordered)
	uc.sessions.Put(&solve.Entry{Session: session, UserID: cmd.UserID})

	uc.logger.Infow("exam session started", "session_id", session.ID(), "user_id", cmd.UserID, "mock_exam_id", cmd.MockExamID, "problems", len(ordered))
	return dto.ToSessionDTO(session), nil
}
