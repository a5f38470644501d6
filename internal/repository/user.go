package repository

import (
	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/pkg/xcontext"
)

type UserRepository interface {
	Create(ctx xcontext.Context, data *entity.User) error
	UpdateByID(ctx xcontext.Context, id string, data *entity.User) error
	GetByID(ctx xcontext.Context, id string) (*entity.User, error)
	GetByEmail(ctx xcontext.Context, email string) (*entity.User, error)
	GetByServiceUserID(ctx xcontext.Context, service, serviceUserID string) (*entity.User, error)
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx xcontext.Context, data *entity.User) error {
	return ctx.DB().Create(data).Error
}

func (r *userRepository) UpdateByID(ctx xcontext.Context, id string, data *entity.User) error {
	updateMap := map[string]any{}
	if data.Name != "" {
		updateMap["name"] = data.Name
	}

	if data.Bio != "" {
		updateMap["bio"] = data.Bio
	}

	if data.AvatarURL != "" {
		updateMap["avatar_url"] = data.AvatarURL
	}

	if data.BirthYear != 0 {
		updateMap["birth_year"] = data.BirthYear
	}

	return ctx.DB().Model(&entity.User{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *userRepository) GetByID(ctx xcontext.Context, id string) (*entity.User, error) {
	var record entity.User
	if err := ctx.DB().Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByEmail(ctx xcontext.Context, email string) (*entity.User, error) {
	var record entity.User
	if err := ctx.DB().Where("email=?", email).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByServiceUserID(
	ctx xcontext.Context, service, serviceUserID string,
) (*entity.User, error) {
	var record entity.User
	err := ctx.DB().
		Joins("join oauth2 on users.id=oauth2.user_id").
		Where("oauth2.service=? AND oauth2.service_user_id=?", service, serviceUserID).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}
