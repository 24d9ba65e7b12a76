package mappers

import (
	"github.com/shiken-app/shiken/internal/domain/exam"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/models"
)

type MockExamMapper interface {
	ToEntity(model *models.MockExamModel) (*exam.MockExam, error)
	ToModel(entity *exam.MockExam) *models.MockExamModel
	ToEntities(models []*models.MockExamModel) ([]*exam.MockExam, error)
}

type MockExamMapperImpl struct{}

func NewMockExamMapper() MockExamMapper {
	return &MockExamMapperImpl{}
}

func (m *MockExamMapperImpl) ToEntity(model *models.MockExamModel) (*exam.MockExam, error) {
	if model == nil {
		return nil, nil
	}
	return exam.ReconstructMockExam(model.ID, model.Title, model.Level, model.CreatedAt, model.UpdatedAt)
}

func (m *MockExamMapperImpl) ToModel(entity *exam.MockExam) *models.MockExamModel {
	if entity == nil {
		return nil
	}
	return &models.MockExamModel{
		ID:        entity.ID(),
		Title:     entity.Title(),
		Level:     entity.Level(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *MockExamMapperImpl) ToEntities(examModels []*models.MockExamModel) ([]*exam.MockExam, error) {
	entities := make([]*exam.MockExam, 0, len(examModels))
	for _, em := range examModels {
		entity, err := m.ToEntity(em)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
