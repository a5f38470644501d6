package entity

import "database/sql"

// QuestStep rows are written once at quest creation and never mutated.
type QuestStep struct {
	Base

	QuestID string    `gorm:"index:idx_quest_step,unique"`
	Quest   SideQuest `gorm:"foreignKey:QuestID"`

	StepOrder   int `gorm:"index:idx_quest_step,unique"`
	Title       string
	Description string `gorm:"type:text"`
}

// StepProgress tracks per-user completion of a step of an owned quest copy.
// Un-completing a step clears CompletedAt rather than deleting the row.
type StepProgress struct {
	Base

	UserQuestID string    `gorm:"index:idx_user_quest_step,unique"`
	UserQuest   SideQuest `gorm:"foreignKey:UserQuestID"`

	StepOrder   int `gorm:"index:idx_user_quest_step,unique"`
	CompletedAt sql.NullTime
}
