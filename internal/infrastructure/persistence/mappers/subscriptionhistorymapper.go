package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/shiken-app/shiken/internal/domain/subscription"
	vo "github.com/shiken-app/shiken/internal/domain/subscription/valueobjects"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/models"
)

type SubscriptionHistoryMapper interface {
	ToEntity(model *models.SubscriptionHistoryModel) (*subscription.History, error)
	ToModel(entity *subscription.History) (*models.SubscriptionHistoryModel, error)
	ToEntities(models []*models.SubscriptionHistoryModel) ([]*subscription.History, error)
}

type SubscriptionHistoryMapperImpl struct{}

func NewSubscriptionHistoryMapper() SubscriptionHistoryMapper {
	return &SubscriptionHistoryMapperImpl{}
}

func (m *SubscriptionHistoryMapperImpl) ToEntity(model *models.SubscriptionHistoryModel) (*subscription.History, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]interface{}
	if model.Metadata != nil {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return subscription.ReconstructHistory(
		model.ID,
		model.SubscriptionID,
		model.Event,
		vo.SubscriptionStatus(model.PreviousStatus),
		vo.SubscriptionStatus(model.NewStatus),
		metadata,
		model.CreatedAt,
	)
}

func (m *SubscriptionHistoryMapperImpl) ToModel(entity *subscription.History) (*models.SubscriptionHistoryModel, error) {
	if entity == nil {
		return nil, nil
	}

	model := &models.SubscriptionHistoryModel{
		ID:             entity.ID(),
		SubscriptionID: entity.SubscriptionID(),
		Event:          entity.Event(),
		PreviousStatus: entity.PreviousStatus().String(),
		NewStatus:      entity.NewStatus().String(),
		CreatedAt:      entity.CreatedAt(),
	}

	if metadata := entity.Metadata(); len(metadata) > 0 {
		data, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		model.Metadata = data
	}

	return model, nil
}

func (m *SubscriptionHistoryMapperImpl) ToEntities(historyModels []*models.SubscriptionHistoryModel) ([]*subscription.History, error) {
	entities := make([]*subscription.History, 0, len(historyModels))
	for _, hm := range historyModels {
		entity, err := m.ToEntity(hm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
