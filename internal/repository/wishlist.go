package repository

import (
	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/pkg/xcontext"
)

type WishlistRepository interface {
	Create(ctx xcontext.Context, data *entity.Wishlist) error
	Get(ctx xcontext.Context, userID, questID string) (*entity.Wishlist, error)
	GetByUserID(ctx xcontext.Context, userID string) ([]entity.Wishlist, error)
	Delete(ctx xcontext.Context, userID, questID string) error
}

type wishlistRepository struct{}

func NewWishlistRepository() WishlistRepository {
	return &wishlistRepository{}
}

func (r *wishlistRepository) Create(ctx xcontext.Context, data *entity.Wishlist) error {
	return ctx.DB().Create(data).Error
}

func (r *wishlistRepository) Get(
	ctx xcontext.Context, userID, questID string,
) (*entity.Wishlist, error) {
	var result entity.Wishlist
	err := ctx.DB().Take(&result, "user_id=? AND quest_id=?", userID, questID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *wishlistRepository) GetByUserID(
	ctx xcontext.Context, userID string,
) ([]entity.Wishlist, error) {
	result := []entity.Wishlist{}
	err := ctx.DB().
		Where("user_id=?", userID).
		Order("created_at desc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *wishlistRepository) Delete(ctx xcontext.Context, userID, questID string) error {
	return ctx.DB().
		Where("user_id=? AND quest_id=?", userID, questID).
		Delete(&entity.Wishlist{}).Error
}
