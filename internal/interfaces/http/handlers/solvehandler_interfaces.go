package handlers

import (
	"context"

	solvedto "github.com/shiken-app/shiken/internal/application/solve/dto"
	"github.com/shiken-app/shiken/internal/application/solve/usecases"
)

// Use case interfaces for SolveHandler

type startExamSessionUseCase interface {
	Execute(ctx context.Context, cmd usecases.StartExamSessionCommand) (*solvedto.SessionDTO, error)
}

type startPracticeSessionUseCase interface {
	Execute(ctx context.Context, cmd usecases.StartPracticeSessionCommand) (*solvedto.SessionDTO, error)
}

type getSessionUseCase interface {
	Execute(ctx context.Context, sessionID string, userID uint) (*solvedto.SessionDTO, error)
}

type selectOptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.SelectOptionCommand) (*solvedto.SessionDTO, error)
}

type submitAnswerUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitAnswerCommand) (*solvedto.SubmitResultDTO, error)
}

type navigateUseCase interface {
	Execute(ctx context.Context, cmd usecases.NavigateCommand) (*solvedto.SessionDTO, error)
}

type nextProblemUseCase interface {
	Execute(ctx context.Context, cmd usecases.NextProblemCommand) (*solvedto.SessionDTO, error)
}
