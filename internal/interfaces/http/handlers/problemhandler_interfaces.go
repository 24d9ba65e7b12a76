package handlers

import (
	"context"

	problemdto "github.com/shiken-app/shiken/internal/application/problem/dto"
	"github.com/shiken-app/shiken/internal/application/problem/usecases"
)

// Use case interfaces for ProblemHandler

type createProblemUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProblemCommand) (*problemdto.ProblemDTO, error)
}

type getProblemUseCase interface {
	Execute(ctx context.Context, id uint) (*problemdto.ProblemDTO, error)
}

type listProblemsUseCase interface {
	Execute(ctx context.Context, query usecases.ListProblemsQuery) (*usecases.ListProblemsResult, error)
}

type updateProblemUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProblemCommand) (*problemdto.ProblemDTO, error)
}

type deleteProblemUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type getRandomProblemUseCase interface {
	Execute(ctx context.Context, query usecases.GetRandomProblemQuery) (*problemdto.ProblemDTO, error)
}
