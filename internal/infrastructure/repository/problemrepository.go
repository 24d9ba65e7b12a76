package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shiken-app/shiken/internal/domain/problem"
	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/mappers"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/models"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type ProblemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProblemMapper
	logger logger.Interface
}

func NewProblemRepository(db *gorm.DB, logger logger.Interface) problem.Repository {
	return &ProblemRepositoryImpl{
		db:     db,
		mapper: mappers.NewProblemMapper(),
		logger: logger,
	}
}

func (r *ProblemRepositoryImpl) Create(ctx context.Context, p *problem.Problem) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map problem entity to model", "error", err)
		return fmt.Errorf("failed to map problem entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create problem in database", "error", err)
		return fmt.Errorf("failed to create problem: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set problem ID", "error", err)
		return fmt.Errorf("failed to set problem ID: %w", err)
	}

	r.logger.Infow("problem created", "id", model.ID, "level", model.Level, "type", model.Type)
	return nil
}

func (r *ProblemRepositoryImpl) GetByID(ctx context.Context, id uint) (*problem.Problem, error) {
	var model models.ProblemModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, problem.ErrNotFound
		}
		r.logger.Errorw("failed to get problem by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map problem model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map problem: %w", err)
	}

	return entity, nil
}

func (r *ProblemRepositoryImpl) List(ctx context.Context, filter problem.Filter) ([]*problem.Problem, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ProblemModel{})

	if filter.Level != nil {
		query = query.Where("level = ?", *filter.Level)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.ExcludeAssigned {
		query = query.Where("mock_exam_id IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count problems", "error", err)
		return nil, 0, fmt.Errorf("failed to count problems: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var problemModels []*models.ProblemModel
	if err := query.Order("created_at DESC, id DESC").Find(&problemModels).Error; err != nil {
		r.logger.Errorw("failed to list problems", "error", err)
		return nil, 0, fmt.Errorf("failed to list problems: %w", err)
	}

	entities, err := r.mapper.ToEntities(problemModels)
	if err != nil {
		r.logger.Errorw("failed to map problem models to entities", "error", err)
		return nil, 0, fmt.Errorf("failed to map problems: %w", err)
	}

	return entities, total, nil
}

func (r *ProblemRepositoryImpl) Update(ctx context.Context, p *problem.Problem) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map problem entity to model", "id", p.ID(), "error", err)
		return fmt.Errorf("failed to map problem entity: %w", err)
	}

	// Existence is checked up front: a no-op update also affects zero rows
	// on MySQL, so RowsAffected cannot tell missing from unchanged.
	var existing models.ProblemModel
	if err := r.db.WithContext(ctx).Select("id").First(&existing, model.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return problem.ErrNotFound
		}
		r.logger.Errorw("failed to check problem existence", "id", model.ID, "error", err)
		return fmt.Errorf("failed to check problem existence: %w", err)
	}

	// Save with a full column list so clearing mock_exam_id back to NULL
	// actually persists.
	result := r.db.WithContext(ctx).Model(&models.ProblemModel{}).
		Where("id = ?", model.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update problem", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update problem: %w", result.Error)
	}

	return nil
}

func (r *ProblemRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ProblemModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete problem", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete problem: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return problem.ErrNotFound
	}

	r.logger.Infow("problem deleted", "id", id)
	return nil
}

func (r *ProblemRepositoryImpl) CountByFilter(ctx context.Context, level int, problemType vo.ProblemType) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.ProblemModel{}).
		Where("level = ? AND type = ?", level, problemType.String()).
		Count(&total).Error
	if err != nil {
		r.logger.Errorw("failed to count problems by filter", "level", level, "type", problemType, "error", err)
		return 0, fmt.Errorf("failed to count problems: %w", err)
	}
	return total, nil
}

func (r *ProblemRepositoryImpl) GetByOffset(ctx context.Context, level int, problemType vo.ProblemType, offset int64) (*problem.Problem, error) {
	var model models.ProblemModel

	err := r.db.WithContext(ctx).
		Where("level = ? AND type = ?", level, problemType.String()).
		Order("id ASC").
		Offset(int(offset)).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, problem.ErrNotFound
		}
		r.logger.Errorw("failed to get problem by offset", "level", level, "type", problemType, "offset", offset, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProblemRepositoryImpl) GetByMockExamID(ctx context.Context, mockExamID uint) ([]*problem.Problem, error) {
	var problemModels []*models.ProblemModel

	err := r.db.WithContext(ctx).
		Where("mock_exam_id = ?", mockExamID).
		Order("id ASC").
		Find(&problemModels).Error
	if err != nil {
		r.logger.Errorw("failed to get problems by mock exam ID", "mock_exam_id", mockExamID, "error", err)
		return nil, fmt.Errorf("failed to get exam problems: %w", err)
	}

	return r.mapper.ToEntities(problemModels)
}

func (r *ProblemRepositoryImpl) DetachFromExam(ctx context.Context, mockExamID uint) error {
	err := r.db.WithContext(ctx).Model(&models.ProblemModel{}).
		Where("mock_exam_id = ?", mockExamID).
		Update("mock_exam_id", nil).Error
	if err != nil {
		r.logger.Errorw("failed to detach problems from exam", "mock_exam_id", mockExamID, "error", err)
		return fmt.Errorf("failed to detach problems: %w", err)
	}

	return nil
}
