package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/exam/dto"
	"github.com/shiken-app/shiken/internal/domain/exam"
	"github.com/shiken-app/shiken/internal/domain/problem"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

// GetExamForSolvingUseCase loads the learner view of an exam: numbered
// problems with answers withheld. Empty exams are invisible to learners.
type GetExamForSolvingUseCase struct {
	examRepo    exam.Repository
	problemRepo problem.Repository
	logger      logger.Interface
}

func NewGetExamForSolvingUseCase(examRepo exam.Repository, problemRepo problem.Repository, logger logger.Interface) *GetExamForSolvingUseCase {
	return &GetExamForSolvingUseCase{
		examRepo:    examRepo,
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *GetExamForSolvingUseCase) Execute(ctx context.Context, id uint) (*dto.MockExamSolveDTO, error) {
	entity, err := uc.examRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, exam.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("mock exam not found")
		}
		uc.logger.Errorw("failed to get mock exam for solving", "id", id, "error", err)
		return nil, err
	}

	problems, err := uc.problemRepo.GetByMockExamID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get exam problems", "mock_exam_id", id, "error", err)
		return nil, fmt.Errorf("failed to get exam problems: %w", err)
	}
	if len(problems) == 0 {
		return nil, apperrors.NewNotFoundError("mock exam not found")
	}

	numbered := exam.NumberProblems(problems)

	return &dto.MockExamSolveDTO{
		ID:       entity.ID(),
		Title:    entity.Title(),
		Level:    entity.Level(),
		Problems: dto.ToNumberedSolveProblemDTOs(numbered),
	}, nil
}
