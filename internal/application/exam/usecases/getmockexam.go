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

// GetMockExamUseCase loads the admin detail view. Display numbers are
// computed at read time from the canonical section order, never stored.
type GetMockExamUseCase struct {
	examRepo    exam.Repository
	problemRepo problem.Repository
	logger      logger.Interface
}

func NewGetMockExamUseCase(examRepo exam.Repository, problemRepo problem.Repository, logger logger.Interface) *GetMockExamUseCase {
	return &GetMockExamUseCase{
		examRepo:    examRepo,
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *GetMockExamUseCase) Execute(ctx context.Context, id uint) (*dto.MockExamDetailDTO, error) {
	entity, err := uc.examRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, exam.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("mock exam not found")
		}
		uc.logger.Errorw("failed to get mock exam", "id", id, "error", err)
		return nil, err
	}

	problems, err := uc.problemRepo.GetByMockExamID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get exam problems", "mock_exam_id", id, "error", err)
		return nil, fmt.Errorf("failed to get exam problems: %w", err)
	}

	numbered := exam.NumberProblems(problems)

	return &dto.MockExamDetailDTO{
		MockExamDTO: *dto.ToMockExamDTO(entity, int64(len(problems))),
		Problems:    dto.ToNumberedProblemDTOs(numbered),
	}, nil
}
