package repository

import (
	"math"
	"sort"
	"time"

	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type NearbyQuest struct {
	entity.SideQuest
	DistanceKm float64
}

type SideQuestRepository interface {
	Create(ctx xcontext.Context, data *entity.SideQuest) error
	GetByID(ctx xcontext.Context, id string) (*entity.SideQuest, error)
	GetByIDs(ctx xcontext.Context, ids []string) ([]entity.SideQuest, error)
	GetPublicList(ctx xcontext.Context, offset, limit int) ([]entity.SideQuest, error)
	GetPublicByCategory(ctx xcontext.Context, categoryID string, offset, limit int) ([]entity.SideQuest, error)
	GetActiveByUserID(ctx xcontext.Context, userID string) ([]entity.SideQuest, error)
	GetCompletedByUserID(ctx xcontext.Context, userID string, offset, limit int) ([]entity.SideQuest, error)
	GetAllByUserID(ctx xcontext.Context, userID string) ([]entity.SideQuest, error)
	GetByFingerprint(ctx xcontext.Context, userID, name, description string) (*entity.SideQuest, error)
	GetNearby(ctx xcontext.Context, lat, lng, radiusKm float64, limit int) ([]NearbyQuest, error)
	Update(ctx xcontext.Context, id string, data *entity.SideQuest) error
	Complete(ctx xcontext.Context, userID, id string, notes, photoURL string, at time.Time) error
	Delete(ctx xcontext.Context, userID, id string) error
}

type sideQuestRepository struct{}

func NewSideQuestRepository() SideQuestRepository {
	return &sideQuestRepository{}
}

func (r *sideQuestRepository) Create(ctx xcontext.Context, data *entity.SideQuest) error {
	return ctx.DB().Create(data).Error
}

func (r *sideQuestRepository) GetByID(ctx xcontext.Context, id string) (*entity.SideQuest, error) {
	result := &entity.SideQuest{}
	if err := ctx.DB().Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *sideQuestRepository) GetByIDs(ctx xcontext.Context, ids []string) ([]entity.SideQuest, error) {
	result := []entity.SideQuest{}
	if err := ctx.DB().Find(&result, "id IN (?)", ids).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *sideQuestRepository) GetPublicList(
	ctx xcontext.Context, offset, limit int,
) ([]entity.SideQuest, error) {
	result := []entity.SideQuest{}
	err := ctx.DB().
		Where("is_public=?", true).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *sideQuestRepository) GetPublicByCategory(
	ctx xcontext.Context, categoryID string, offset, limit int,
) ([]entity.SideQuest, error) {
	result := []entity.SideQuest{}
	err := ctx.DB().
		Where("is_public=? AND category_id=?", true, categoryID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *sideQuestRepository) GetActiveByUserID(
	ctx xcontext.Context, userID string,
) ([]entity.SideQuest, error) {
	result := []entity.SideQuest{}
	err := ctx.DB().
		Where("created_by=? AND is_public=? AND is_completed=?", userID, false, false).
		Order("created_at desc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *sideQuestRepository) GetCompletedByUserID(
	ctx xcontext.Context, userID string, offset, limit int,
) ([]entity.SideQuest, error) {
	result := []entity.SideQuest{}
	err := ctx.DB().
		Where("created_by=? AND is_completed=?", userID, true).
		Order("completed_at desc").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *sideQuestRepository) GetAllByUserID(
	ctx xcontext.Context, userID string,
) ([]entity.SideQuest, error) {
	result := []entity.SideQuest{}
	err := ctx.DB().
		Where("created_by=? AND is_public=?", userID, false).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *sideQuestRepository) GetByFingerprint(
	ctx xcontext.Context, userID, name, description string,
) (*entity.SideQuest, error) {
	result := entity.SideQuest{}
	err := ctx.DB().
		Where("created_by=? AND is_public=? AND name=? AND description=?",
			userID, false, name, description).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

const earthRadiusKm = 6371

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func (r *sideQuestRepository) GetNearby(
	ctx xcontext.Context, lat, lng, radiusKm float64, limit int,
) ([]NearbyQuest, error) {
	// A bounding box narrows the scan, the exact distance is computed here.
	// One latitude degree is about 111km, a longitude degree shrinks with
	// the cosine of the latitude.
	latDelta := radiusKm / 111.0
	lngDelta := latDelta
	if cos := math.Cos(lat * math.Pi / 180); cos > 0.01 {
		lngDelta = latDelta / cos
	}

	candidates := []entity.SideQuest{}
	err := ctx.DB().
		Where("is_public=? AND location_type=?", true, entity.LocationAddress).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("latitude BETWEEN ? AND ?", lat-latDelta, lat+latDelta).
		Where("longitude BETWEEN ? AND ?", lng-lngDelta, lng+lngDelta).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	result := []NearbyQuest{}
	for i := range candidates {
		distance := haversineKm(lat, lng,
			candidates[i].Latitude.Float64, candidates[i].Longitude.Float64)
		if distance <= radiusKm {
			result = append(result, NearbyQuest{
				SideQuest:  candidates[i],
				DistanceKm: distance,
			})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

func (r *sideQuestRepository) Update(
	ctx xcontext.Context, id string, data *entity.SideQuest,
) error {
	return ctx.DB().Model(&entity.SideQuest{}).Where("id=?", id).Updates(data).Error
}

func (r *sideQuestRepository) Complete(
	ctx xcontext.Context, userID, id string, notes, photoURL string, at time.Time,
) error {
	updateMap := map[string]any{
		"is_completed":     true,
		"completed_at":     at,
		"completion_notes": notes,
	}
	if photoURL != "" {
		updateMap["completion_photo_url"] = photoURL
	}

	tx := ctx.DB().Model(&entity.SideQuest{}).
		Where("id=? AND created_by=?", id, userID).
		Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *sideQuestRepository) Delete(ctx xcontext.Context, userID, id string) error {
	tx := ctx.DB().
		Where("id=? AND created_by=?", id, userID).
		Delete(&entity.SideQuest{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
