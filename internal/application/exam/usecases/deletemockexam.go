package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiken-app/shiken/internal/domain/exam"
	"github.com/shiken-app/shiken/internal/domain/problem"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

// DeleteMockExamUseCase removes an exam shell. Member problems are detached
// first so they return to the unassigned pool instead of being orphaned or
// deleted with the exam.
type DeleteMockExamUseCase struct {
	examRepo    exam.Repository
	problemRepo problem.Repository
	logger      logger.Interface
}

func NewDeleteMockExamUseCase(examRepo exam.Repository, problemRepo problem.Repository, logger logger.Interface) *DeleteMockExamUseCase {
	return &DeleteMockExamUseCase{
		examRepo:    examRepo,
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *DeleteMockExamUseCase) Execute(ctx context.Context, id uint) error {
	if _, err := uc.examRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, exam.ErrNotFound) {
			return apperrors.NewNotFoundError("mock exam not found")
		}
		uc.logger.Errorw("failed to get mock exam for delete", "id", id, "error", err)
		return err
	}

	if err := uc.problemRepo.DetachFromExam(ctx, id); err != nil {
		uc.logger.Errorw("failed to detach problems before exam delete", "mock_exam_id", id, "error", err)
		return fmt.Errorf("failed to detach problems: %w", err)
	}

	if err := uc.examRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, exam.ErrNotFound) {
			return apperrors.NewNotFoundError("mock exam not found")
		}
		uc.logger.Errorw("failed to delete mock exam", "id", id, "error", err)
		return fmt.Errorf("failed to delete mock exam: %w", err)
	}

	uc.logger.Infow("mock exam deleted", "id", id)
	return nil
}
