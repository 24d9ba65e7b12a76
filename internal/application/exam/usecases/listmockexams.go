package usecases

import (
	"context"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/exam/dto"
	"github.com/shiken-app/shiken/internal/domain/exam"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type ListMockExamsQuery struct {
	Level *int
	// PublicOnly hides exams with no assigned problems. Learners never see
	// empty shells; admins see everything.
	PublicOnly bool
}

type ListMockExamsUseCase struct {
	examRepo exam.Repository
	logger   logger.Interface
}

func NewListMockExamsUseCase(examRepo exam.Repository, logger logger.Interface) *ListMockExamsUseCase {
	return &ListMockExamsUseCase{
		examRepo: examRepo,
		logger:   logger,
	}
}

func (uc *ListMockExamsUseCase) Execute(ctx context.Context, query ListMockExamsQuery) ([]*dto.MockExamDTO, error) {
	exams, err := uc.examRepo.List(ctx, query.Level)
	if err != nil {
		uc.logger.Errorw("failed to list mock exams", "error", err)
		return nil, fmt.Errorf("failed to list mock exams: %w", err)
	}

	dtos := make([]*dto.MockExamDTO, 0, len(exams))
	for _, e := range exams {
		if query.PublicOnly && e.ProblemCount == 0 {
			continue
		}
		dtos = append(dtos, dto.ToMockExamDTO(e.Exam, e.ProblemCount))
	}

	return dtos, nil
}
