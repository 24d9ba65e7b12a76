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

type AssignProblemsCommand struct {
	MockExamID uint
	// Add lists problem IDs to pull into the exam. A problem already assigned
	// elsewhere is moved; membership is exclusive.
	Add []uint
	// Remove lists problem IDs to return to the unassigned pool.
	Remove []uint
}

type AssignProblemsUseCase struct {
	examRepo    exam.Repository
	problemRepo problem.Repository
	logger      logger.Interface
}

func NewAssignProblemsUseCase(examRepo exam.Repository, problemRepo problem.Repository, logger logger.Interface) *AssignProblemsUseCase {
	return &AssignProblemsUseCase{
		examRepo:    examRepo,
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *AssignProblemsUseCase) Execute(ctx context.Context, cmd AssignProblemsCommand) error {
	if _, err := uc.examRepo.GetByID(ctx, cmd.MockExamID); err != nil {
		if errors.Is(err, exam.ErrNotFound) {
			return apperrors.NewNotFoundError("mock exam not found")
		}
		uc.logger.Errorw("failed to get mock exam for assignment", "id", cmd.MockExamID, "error", err)
		return err
	}

	examID := cmd.MockExamID
	for _, problemID := range cmd.Add {
		if err := uc.setAssignment(ctx, problemID, &examID); err != nil {
			return err
		}
	}

	for _, problemID := range cmd.Remove {
		p, err := uc.problemRepo.GetByID(ctx, problemID)
		if err != nil {
			if errors.Is(err, problem.ErrNotFound) {
				return apperrors.NewNotFoundError(fmt.Sprintf("problem %d not found", problemID))
			}
			return err
		}
		if p.MockExamID() == nil || *p.MockExamID() != cmd.MockExamID {
			continue
		}
		if err := uc.setAssignment(ctx, problemID, nil); err != nil {
			return err
		}
	}

	uc.logger.Infow("exam membership updated", "mock_exam_id", cmd.MockExamID, "added", len(cmd.Add), "removed", len(cmd.Remove))
	return nil
}

func (uc *AssignProblemsUseCase) setAssignment(ctx context.Context, problemID uint, examID *uint) error {
	p, err := uc.problemRepo.GetByID(ctx, problemID)
	if err != nil {
		if errors.Is(err, problem.ErrNotFound) {
			return apperrors.NewNotFoundError(fmt.Sprintf("problem %d not found", problemID))
		}
		uc.logger.Errorw("failed to get problem for assignment", "problem_id", problemID, "error", err)
		return err
	}

	p.AssignToExam(examID)
	if err := uc.problemRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update problem assignment", "problem_id", problemID, "error", err)
		return fmt.Errorf("failed to update problem assignment: %w", err)
	}

	return nil
}
