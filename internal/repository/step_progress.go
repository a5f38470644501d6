package repository

import (
	"database/sql"

	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type StepProgressRepository interface {
	Upsert(ctx xcontext.Context, data *entity.StepProgress) error
	Clear(ctx xcontext.Context, userQuestID string, stepOrder int) error
	GetByUserQuestID(ctx xcontext.Context, userQuestID string) ([]entity.StepProgress, error)
	DeleteByUserQuestID(ctx xcontext.Context, userQuestID string) error
}

type stepProgressRepository struct{}

func NewStepProgressRepository() StepProgressRepository {
	return &stepProgressRepository{}
}

func (r *stepProgressRepository) Upsert(ctx xcontext.Context, data *entity.StepProgress) error {
	return ctx.DB().Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_quest_id"},
			{Name: "step_order"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"completed_at", "updated_at"}),
	}).Create(data).Error
}

func (r *stepProgressRepository) Clear(
	ctx xcontext.Context, userQuestID string, stepOrder int,
) error {
	return ctx.DB().Model(&entity.StepProgress{}).
		Where("user_quest_id=? AND step_order=?", userQuestID, stepOrder).
		Update("completed_at", sql.NullTime{}).Error
}

func (r *stepProgressRepository) GetByUserQuestID(
	ctx xcontext.Context, userQuestID string,
) ([]entity.StepProgress, error) {
	result := []entity.StepProgress{}
	err := ctx.DB().
		Where("user_quest_id=?", userQuestID).
		Order("step_order asc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *stepProgressRepository) DeleteByUserQuestID(
	ctx xcontext.Context, userQuestID string,
) error {
	return ctx.DB().
		Where("user_quest_id=?", userQuestID).
		Delete(&entity.StepProgress{}).Error
}
