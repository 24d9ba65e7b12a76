package handlers

import (
	"context"

	examdto "github.com/shiken-app/shiken/internal/application/exam/dto"
	"github.com/shiken-app/shiken/internal/application/exam/usecases"
)

// Use case interfaces for MockExamHandler

type createMockExamUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateMockExamCommand) (*examdto.MockExamDTO, error)
}

type getMockExamUseCase interface {
	Execute(ctx context.Context, id uint) (*examdto.MockExamDetailDTO, error)
}

type listMockExamsUseCase interface {
	Execute(ctx context.Context, query usecases.ListMockExamsQuery) ([]*examdto.MockExamDTO, error)
}

type updateMockExamUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateMockExamCommand) (*examdto.MockExamDTO, error)
}

type deleteMockExamUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type assignProblemsUseCase interface {
	Execute(ctx context.Context, cmd usecases.AssignProblemsCommand) error
}

type getExamForSolvingUseCase interface {
	Execute(ctx context.Context, id uint) (*examdto.MockExamSolveDTO, error)
}
