package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiken-app/shiken/internal/application/exam/dto"
	"github.com/shiken-app/shiken/internal/domain/exam"
	apperrors "github.com/shiken-app/shiken/internal/shared/errors"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type CreateMockExamCommand struct {
	Title string
	Level int
}

type CreateMockExamUseCase struct {
	examRepo exam.Repository
	logger   logger.Interface
}

func NewCreateMockExamUseCase(examRepo exam.Repository, logger logger.Interface) *CreateMockExamUseCase {
	return &CreateMockExamUseCase{
		examRepo: examRepo,
		logger:   logger,
	}
}

func (uc *CreateMockExamUseCase) Execute(ctx context.Context, cmd CreateMockExamCommand) (*dto.MockExamDTO, error) {
	entity, err := exam.NewMockExam(cmd.Title, cmd.Level)
	if err != nil {
		if errors.Is(err, exam.ErrEmptyTitle) || errors.Is(err, exam.ErrInvalidLevel) {
			return nil, apperrors.NewValidationError("invalid mock exam", err.Error())
		}
		return nil, err
	}

	if err := uc.examRepo.Create(ctx, entity); err != nil {
		uc.logger.Errorw("failed to create mock exam", "error", err)
		return nil, fmt.Errorf("failed to create mock exam: %w", err)
	}

	uc.logger.Infow("mock exam created", "id", entity.ID(), "title", entity.Title(), "level", entity.Level())
	return dto.ToMockExamDTO(entity, 0), nil
}
