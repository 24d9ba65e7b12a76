package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shiken-app/shiken/internal/domain/user"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/mappers"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/models"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user in database", "email", u.Email(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set user ID", "error", err)
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "email", model.Email)
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		r.logger.Errorw("failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	// Existence is checked up front: a no-op update also affects zero rows
	// on MySQL, so RowsAffected cannot tell missing from unchanged.
	var existing models.UserModel
	if err := r.db.WithContext(ctx).Select("id").First(&existing, model.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrNotFound
		}
		r.logger.Errorw("failed to check user existence", "id", model.ID, "error", err)
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("*").Omit("id", "email", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepositoryImpl) Upsert(ctx context.Context, email, name, image string) (*user.User, error) {
	existing, err := r.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}

	if existing == nil {
		entity, err := user.NewUser(email, name, image)
		if err != nil {
			return nil, err
		}
		if err := r.Create(ctx, entity); err != nil {
			return nil, err
		}
		return entity, nil
	}

	existing.RefreshProfile(name, image)
	if err := r.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}
