package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shiken-app/shiken/internal/domain/exam"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/mappers"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/models"
	"github.com/shiken-app/shiken/internal/shared/constants"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type MockExamRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MockExamMapper
	logger logger.Interface
}

func NewMockExamRepository(db *gorm.DB, logger logger.Interface) exam.Repository {
	return &MockExamRepositoryImpl{
		db:     db,
		mapper: mappers.NewMockExamMapper(),
		logger: logger,
	}
}

func (r *MockExamRepositoryImpl) Create(ctx context.Context, m *exam.MockExam) error {
	model := r.mapper.ToModel(m)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create mock exam in database", "error", err)
		return fmt.Errorf("failed to create mock exam: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set mock exam ID", "error", err)
		return fmt.Errorf("failed to set mock exam ID: %w", err)
	}

	r.logger.Infow("mock exam created", "id", model.ID, "title", model.Title, "level", model.Level)
	return nil
}

func (r *MockExamRepositoryImpl) GetByID(ctx context.Context, id uint) (*exam.MockExam, error) {
	var model models.MockExamModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exam.ErrNotFound
		}
		r.logger.Errorw("failed to get mock exam by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get mock exam: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MockExamRepositoryImpl) List(ctx context.Context, level *int) ([]*exam.WithProblemCount, error) {
	type row struct {
		models.MockExamModel
		ProblemCount int64
	}

	query := r.db.WithContext(ctx).
		Table(constants.TableMockExams + " AS e").
		Select("e.*, COUNT(p.id) AS problem_count").
		Joins("LEFT JOIN " + constants.TableProblems + " AS p ON p.mock_exam_id = e.id").
		Group("e.id").
		Order("e.created_at DESC, e.id DESC")

	if level != nil {
		query = query.Where("e.level = ?", *level)
	}

	var rows []*row
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list mock exams", "error", err)
		return nil, fmt.Errorf("failed to list mock exams: %w", err)
	}

	result := make([]*exam.WithProblemCount, 0, len(rows))
	for _, rw := range rows {
		entity, err := r.mapper.ToEntity(&rw.MockExamModel)
		if err != nil {
			r.logger.Errorw("failed to map mock exam model to entity", "id", rw.ID, "error", err)
			return nil, fmt.Errorf("failed to map mock exam: %w", err)
		}
		result = append(result, &exam.WithProblemCount{Exam: entity, ProblemCount: rw.ProblemCount})
	}

	return result, nil
}

func (r *MockExamRepositoryImpl) Update(ctx context.Context, m *exam.MockExam) error {
	model := r.mapper.ToModel(m)

	// Existence is checked up front: a no-op update also affects zero rows
	// on MySQL, so RowsAffected cannot tell missing from unchanged.
	var existing models.MockExamModel
	if err := r.db.WithContext(ctx).Select("id").First(&existing, model.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return exam.ErrNotFound
		}
		r.logger.Errorw("failed to check mock exam existence", "id", model.ID, "error", err)
		return fmt.Errorf("failed to check mock exam existence: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.MockExamModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title": model.Title,
			"level": model.Level,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update mock exam", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update mock exam: %w", result.Error)
	}

	return nil
}

func (r *MockExamRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.MockExamModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete mock exam", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete mock exam: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return exam.ErrNotFound
	}

	r.logger.Infow("mock exam deleted", "id", id)
	return nil
}
