package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/shiken-app/shiken/internal/domain/problem"
	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/models"
)

type ProblemMapper interface {
	ToEntity(model *models.ProblemModel) (*problem.Problem, error)
	ToModel(entity *problem.Problem) (*models.ProblemModel, error)
	ToEntities(models []*models.ProblemModel) ([]*problem.Problem, error)
}

type ProblemMapperImpl struct{}

func NewProblemMapper() ProblemMapper {
	return &ProblemMapperImpl{}
}

func (m *ProblemMapperImpl) ToEntity(model *models.ProblemModel) (*problem.Problem, error) {
	if model == nil {
		return nil, nil
	}

	var options []string
	if err := json.Unmarshal(model.Options, &options); err != nil {
		return nil, fmt.Errorf("failed to unmarshal options: %w", err)
	}

	var explanation problem.Explanation
	if err := json.Unmarshal(model.Explanation, &explanation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal explanation: %w", err)
	}

	var vocab []problem.VocabEntry
	if model.Vocab != nil {
		if err := json.Unmarshal(model.Vocab, &vocab); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vocab: %w", err)
		}
	}

	attrs := problem.Attributes{
		Level:             model.Level,
		Type:              vo.ProblemType(model.Type),
		SubType:           vo.ProblemSubType(model.SubType),
		Content:           model.Content,
		Question:          model.Question,
		Options:           options,
		AnswerIndex:       model.AnswerIndex,
		Explanation:       explanation,
		Vocab:             vocab,
		ReasoningForLevel: model.ReasoningForLevel,
	}

	return problem.ReconstructProblem(model.ID, attrs, model.MockExamID, model.CreatedAt, model.UpdatedAt)
}

func (m *ProblemMapperImpl) ToModel(entity *problem.Problem) (*models.ProblemModel, error) {
	if entity == nil {
		return nil, nil
	}

	options, err := json.Marshal(entity.Options())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal options: %w", err)
	}

	explanation, err := json.Marshal(entity.Explanation())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal explanation: %w", err)
	}

	model := &models.ProblemModel{
		ID:                entity.ID(),
		Level:             entity.Level(),
		Type:              entity.Type().String(),
		SubType:           entity.SubType().String(),
		Content:           entity.Content(),
		Question:          entity.Question(),
		Options:           options,
		AnswerIndex:       entity.AnswerIndex(),
		Explanation:       explanation,
		ReasoningForLevel: entity.ReasoningForLevel(),
		MockExamID:        entity.MockExamID(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}

	if vocab := entity.Vocab(); len(vocab) > 0 {
		data, err := json.Marshal(vocab)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal vocab: %w", err)
		}
		model.Vocab = data
	}

	return model, nil
}

func (m *ProblemMapperImpl) ToEntities(problemModels []*models.ProblemModel) ([]*problem.Problem, error) {
	entities := make([]*problem.Problem, 0, len(problemModels))
	for _, pm := range problemModels {
		entity, err := m.ToEntity(pm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
