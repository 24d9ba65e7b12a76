package mappers

import (
	"fmt"

	"github.com/shiken-app/shiken/internal/domain/subscription"
	vo "github.com/shiken-app/shiken/internal/domain/subscription/valueobjects"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) *models.SubscriptionModel
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.SubscriptionStatus(model.Status)
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", model.Status)
	}

	return subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		model.Provider,
		model.ExternalID,
		status,
		model.CurrentPeriodStart,
		model.CurrentPeriodEnd,
		model.CustomerPortalURL,
		model.CancelledAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}
	return &models.SubscriptionModel{
		ID:                 entity.ID(),
		UserID:             entity.UserID(),
		Provider:           entity.Provider(),
		ExternalID:         entity.ExternalID(),
		Status:             entity.Status().String(),
		CurrentPeriodStart: entity.CurrentPeriodStart(),
		CurrentPeriodEnd:   entity.CurrentPeriodEnd(),
		CustomerPortalURL:  entity.CustomerPortalURL(),
		CancelledAt:        entity.CancelledAt(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *SubscriptionMapperImpl) ToEntities(subModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subModels))
	for _, sm := range subModels {
		entity, err := m.ToEntity(sm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
