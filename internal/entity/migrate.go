package entity

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func MigrateTable(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&OAuth2{},
		&Category{},
		&SideQuest{},
		&QuestStep{},
		&StepProgress{},
		&Wishlist{},
	); err != nil {
		return err
	}

	return seedCategories(db)
}

func seedCategories(db *gorm.DB) error {
	categories := SeedCategories
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error
}
