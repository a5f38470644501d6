package entity

import "time"

type Wishlist struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	QuestID string    `gorm:"primaryKey"`
	Quest   SideQuest `gorm:"foreignKey:QuestID"`

	CreatedAt time.Time
}
