package usecases

import (
	"context"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/problem/dto"
	"github.com/shiken-app/shiken/internal/domain/problem"
	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type ListProblemsQuery struct {
	Level           *int
	Type            *string
	ExcludeAssigned bool
	Page            int
	PageSize        int
}

type ListProblemsResult struct {
	Problems []*dto.ProblemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListProblemsUseCase struct {
	problemRepo problem.Repository
	logger      logger.Interface
}

func NewListProblemsUseCase(problemRepo problem.Repository, logger logger.Interface) *ListProblemsUseCase {
	return &ListProblemsUseCase{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (uc *ListProblemsUseCase) Execute(ctx context.Context, query ListProblemsQuery) (*ListProblemsResult, error) {
	filter := problem.Filter{
		Level:           query.Level,
		ExcludeAssigned: query.ExcludeAssigned,
		Page:            query.Page,
		PageSize:        query.PageSize,
	}
	if query.Type != nil {
		t := vo.ProblemType(*query.Type)
		filter.Type = &t
	}

	problems, total, err := uc.problemRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	return &ListProblemsResult{
		Problems: dto.ToProblemDTOs(problems),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
