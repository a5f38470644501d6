package domain

import (
	"time"

	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/internal/model"
)

func convertUser(user *entity.User) model.User {
	return model.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
		BirthYear: user.BirthYear,
	}
}

func convertCategory(category *entity.Category) model.Category {
	return model.Category{
		ID:    category.ID,
		Name:  category.Name,
		Icon:  category.Icon,
		Color: category.Color,
	}
}

func convertSideQuest(quest *entity.SideQuest, category *entity.Category) model.SideQuest {
	result := model.SideQuest{
		ID:            quest.ID,
		Name:          quest.Name,
		Description:   quest.Description,
		Difficulty:    quest.Difficulty,
		Uniqueness:    quest.Uniqueness,
		LocationType:  string(quest.LocationType),
		LocationText:  quest.LocationText,
		DurationValue: quest.DurationValue,
		DurationUnit:  string(quest.DurationUnit),
		PhotoURL:      quest.PhotoURL,
		IsPublic:      quest.IsPublic,
		CreatedBy:     quest.CreatedBy.String,
		SourceQuestID: quest.SourceQuestID.String,
		CreatedAt:     quest.CreatedAt.Format(time.RFC3339),

		IsCompleted:        quest.IsCompleted,
		CompletionNotes:    quest.CompletionNotes,
		CompletionPhotoURL: quest.CompletionPhotoURL,
	}

	if category != nil {
		result.Category = convertCategory(category)
	}

	if quest.Latitude.Valid {
		result.Latitude = quest.Latitude.Float64
	}

	if quest.Longitude.Valid {
		result.Longitude = quest.Longitude.Float64
	}

	if quest.Cost.Valid {
		result.Cost = quest.Cost.Float64
	}

	if quest.CompletedAt.Valid {
		result.CompletedAt = quest.CompletedAt.Time.Format(time.RFC3339)
	}

	return result
}

func convertQuestStep(step *entity.QuestStep) model.QuestStep {
	return model.QuestStep{
		StepOrder:   step.StepOrder,
		Title:       step.Title,
		Description: step.Description,
	}
}

func convertStepProgress(progress *entity.StepProgress) model.StepProgress {
	result := model.StepProgress{StepOrder: progress.StepOrder}
	if progress.CompletedAt.Valid {
		result.CompletedAt = progress.CompletedAt.Time.Format(time.RFC3339)
	}

	return result
}
