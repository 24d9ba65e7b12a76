package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shiken-app/shiken/internal/domain/subscription"
	vo "github.com/shiken-app/shiken/internal/domain/subscription/valueobjects"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/mappers"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/models"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "user_id", s.UserID(), "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set subscription ID", "error", err)
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created", "id", model.ID, "user_id", model.UserID, "external_id", model.ExternalID)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscription.ErrNotFound
		}
		r.logger.Errorw("failed to get subscription by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetByExternalID(ctx context.Context, provider, externalID string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("provider = ? AND external_id = ?", provider, externalID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by external ID", "provider", provider, "external_id", externalID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetLatestActiveByUser(ctx context.Context, userID uint, provider string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND provider = ? AND status = ?", userID, provider, vo.StatusActive.String()).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get active subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetCurrentByUser(ctx context.Context, userID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []string{vo.StatusActive.String(), vo.StatusCancelled.String()}).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get current subscription", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)

	// Existence is checked up front: a webhook replay writes identical
	// values, which affects zero rows on MySQL and must not read as missing.
	var existing models.SubscriptionModel
	if err := r.db.WithContext(ctx).Select("id").First(&existing, model.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return subscription.ErrNotFound
		}
		r.logger.Errorw("failed to check subscription existence", "id", model.ID, "error", err)
		return fmt.Errorf("failed to check subscription existence: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("id = ?", model.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}

	return nil
}
