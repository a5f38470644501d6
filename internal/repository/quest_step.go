package repository

import (
	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/pkg/xcontext"
)

type QuestStepRepository interface {
	CreateMany(ctx xcontext.Context, steps []entity.QuestStep) error
	GetByQuestID(ctx xcontext.Context, questID string) ([]entity.QuestStep, error)
	DeleteByQuestID(ctx xcontext.Context, questID string) error
}

type questStepRepository struct{}

func NewQuestStepRepository() QuestStepRepository {
	return &questStepRepository{}
}

func (r *questStepRepository) CreateMany(ctx xcontext.Context, steps []entity.QuestStep) error {
	if len(steps) == 0 {
		return nil
	}

	return ctx.DB().Create(steps).Error
}

func (r *questStepRepository) GetByQuestID(
	ctx xcontext.Context, questID string,
) ([]entity.QuestStep, error) {
	result := []entity.QuestStep{}
	err := ctx.DB().
		Where("quest_id=?", questID).
		Order("step_order asc").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questStepRepository) DeleteByQuestID(ctx xcontext.Context, questID string) error {
	return ctx.DB().Where("quest_id=?", questID).Delete(&entity.QuestStep{}).Error
}
