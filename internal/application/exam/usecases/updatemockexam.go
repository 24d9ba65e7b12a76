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

type UpdateMockExamCommand struct {
	ID    uint
	Title string
	Level int
}

type UpdateMockExamUseCase struct {
	examRepo exam.Repository
	logger   logger.Interface
}

func NewUpdateMockExamUseCase(examRepo exam.Repository, logger logger.Interface) *UpdateMockExamUseCase {
	return &UpdateMockExamUseCase{
		examRepo: examRepo,
		logger:   logger,
	}
}

func (uc *UpdateMockExamUseCase) Execute(ctx context.Context, cmd UpdateMockExamCommand) (*dto.MockExamDTO, error) {
	entity, err := uc.examRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, exam.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("mock exam not found")
		}
		uc.logger.Errorw("failed to get mock exam for update", "id", cmd.ID, "error", err)
		return nil, err
	}

	if err := entity.Rename(cmd.Title, cmd.Level); err != nil {
		if errors.Is(err, exam.ErrEmptyTitle) || errors.Is(err, exam.ErrInvalidLevel) {
			return nil, apperrors.NewValidationError("invalid mock exam", err.Error())
		}
		return nil, err
	}

	if err := uc.examRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update mock exam", "id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to update mock exam: %w", err)
	}

	uc.logger.Infow("mock exam updated", "id", cmd.ID)
	return dto.ToMockExamDTO(entity, 0), nil
}
