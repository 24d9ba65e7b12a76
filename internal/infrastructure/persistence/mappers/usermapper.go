package mappers

import (
	"github.com/shiken-app/shiken/internal/domain/user"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.Image,
		model.IsAdmin,
		model.IsPro,
		model.TargetLevel,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:          entity.ID(),
		Email:       entity.Email(),
		Name:        entity.Name(),
		Image:       entity.Image(),
		IsAdmin:     entity.IsAdmin(),
		IsPro:       entity.IsPro(),
		TargetLevel: entity.TargetLevel(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, um := range userModels {
		entity, err := m.ToEntity(um)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
