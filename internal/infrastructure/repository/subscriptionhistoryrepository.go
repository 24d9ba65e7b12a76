package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shiken-app/shiken/internal/domain/subscription"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/mappers"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/models"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type SubscriptionHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionHistoryMapper
	logger logger.Interface
}

func NewSubscriptionHistoryRepository(db *gorm.DB, logger logger.Interface) subscription.HistoryRepository {
	return &SubscriptionHistoryRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionHistoryMapper(),
		logger: logger,
	}
}

func (r *SubscriptionHistoryRepositoryImpl) Append(ctx context.Context, h *subscription.History) error {
	model, err := r.mapper.ToModel(h)
	if err != nil {
		r.logger.Errorw("failed to map history entity to model", "error", err)
		return fmt.Errorf("failed to map history entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append subscription history", "subscription_id", h.SubscriptionID(), "error", err)
		return fmt.Errorf("failed to append subscription history: %w", err)
	}

	if err := h.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set history ID", "error", err)
		return fmt.Errorf("failed to set history ID: %w", err)
	}

	return nil
}

func (r *SubscriptionHistoryRepositoryImpl) ListBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*subscription.History, error) {
	var historyModels []*models.SubscriptionHistoryModel

	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at ASC, id ASC").
		Find(&historyModels).Error
	if err != nil {
		r.logger.Errorw("failed to list subscription history", "subscription_id", subscriptionID, "error", err)
		return nil, fmt.Errorf("failed to list subscription history: %w", err)
	}

	return r.mapper.ToEntities(historyModels)
}
