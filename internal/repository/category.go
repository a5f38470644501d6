package repository

import (
	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/pkg/xcontext"
)

type CategoryRepository interface {
	GetList(ctx xcontext.Context) ([]entity.Category, error)
	GetByID(ctx xcontext.Context, id string) (*entity.Category, error)
}

type categoryRepository struct{}

func NewCategoryRepository() CategoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) GetList(ctx xcontext.Context) ([]entity.Category, error) {
	var result []entity.Category
	if err := ctx.DB().Order("name asc").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *categoryRepository) GetByID(ctx xcontext.Context, id string) (*entity.Category, error) {
	var result entity.Category
	if err := ctx.DB().Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
