package usecases

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/shiken-app/shiken/internal/application/solve"
	"github.com/shiken-app/shiken/internal/application/solve/dto"
	"github.com/shiken-app/shiken/internal/domain/exam"
	"github.com/shiken-app/shiken/internal/domain/problem"
	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type StartPracticeSessionCommand struct {
	UserID uint
	Level  int
	Type   string
}

// StartPracticeSessionUseCase opens a practice run seeded with one random
// problem from the chosen (level, type) pool.
type StartPracticeSessionUseCase struct {
	problemRepo problem.Repository
	sessions    *solve.SessionManager
	logger      logger.Interface
}

func NewStartPracticeSessionUseCase(
	problemRepo problem.Repository,
	sessions *solve.SessionManager,
	logger logger.Interface,
) *StartPracticeSessionUseCase {
	return &StartPracticeSessionUseCase{
		problemRepo: problemRepo,
		sessions:    sessions,
		logger:      logger,
	}
}

func (uc *StartPracticeSessionUseCase) Execute(ctx context.Context, cmd StartPracticeSessionCommand) (*dto.SessionDTO, error) {
	problemType := vo.ProblemType(cmd.Type)
	if !problemType.IsValid() {
		return nil, apperrors.NewValidationError("invalid problem type", cmd.Type)
	}
	if cmd.Level < 1 || cmd.Level > 5 {
		return nil, apperrors.NewValidationError("invalid level", "level must be between 1 and 5")
	}

	first, err := drawRandomProblem(ctx, uc.problemRepo, cmd.Level, problemType)
	if err != nil {
		uc.logger.Errorw("failed to draw practice problem", "level", cmd.Level, "type", cmd.Type, "error", err)
		return nil, err
	}

	session := exam.NewPracticeSession(uc.sessions.NewID(), cmd.Level, first)
	uc.sessions.Put(&solve.Entry{Session: session, UserID: cmd.UserID, PracticeType: problemType})

	uc.logger.Infow("practice session started", "session_id", session.ID(), "user_id", cmd.UserID, "level", cmd.Level, "type", cmd.Type)
	return dto.ToSessionDTO(session), nil
}

// drawRandomProblem picks a uniformly random problem from a (level, type)
// pool via count and offset.
func drawRandomProblem(ctx context.Context, repo problem.Repository, level int, problemType vo.ProblemType) (*problem.Problem, error) {
	total, err := repo.CountByFilter(ctx, level, problemType)
	if err != nil {
		return nil, fmt.Errorf("failed to count problems: %w", err)
	}
	if total == 0 {
		return nil, apperrors.NewNotFoundError("no problems available for this level and type")
	}

	p, err := repo.GetByOffset(ctx, level, problemType, rand.Int63n(total))
	if err != nil {
		if errors.Is(err, problem.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no problems available for this level and type")
		}
		return nil, fmt.Errorf("failed to get random problem: %w", err)
	}

	return p, nil
}
