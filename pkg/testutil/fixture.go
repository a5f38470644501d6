package testutil

import (
	"database/sql"

	"github.com/sidequests/backend/internal/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	User1 = entity.User{
		Base:  entity.Base{ID: "user1"},
		Name:  "alice",
		Email: "alice@example.com",
	}

	User2 = entity.User{
		Base:  entity.Base{ID: "user2"},
		Name:  "bob",
		Email: "bob@example.com",
	}

	Quest1 = entity.SideQuest{
		Base:          entity.Base{ID: "quest1"},
		Name:          "Learn origami",
		Description:   "Fold a paper crane",
		CategoryID:    sql.NullString{Valid: true, String: "skill"},
		Difficulty:    2,
		Uniqueness:    3,
		LocationType:  entity.LocationAnywhere,
		DurationValue: 30,
		DurationUnit:  entity.DurationMinutes,
		IsPublic:      true,
	}

	Quest2 = entity.SideQuest{
		Base:          entity.Base{ID: "quest2"},
		Name:          "Summit hike at dawn",
		Description:   "Watch the sunrise from the top",
		CategoryID:    sql.NullString{Valid: true, String: "adventure"},
		Difficulty:    4,
		Uniqueness:    4,
		LocationType:  entity.LocationAddress,
		LocationText:  "Mount Tam, CA",
		Latitude:      sql.NullFloat64{Valid: true, Float64: 37.9235},
		Longitude:     sql.NullFloat64{Valid: true, Float64: -122.5965},
		DurationValue: 4,
		DurationUnit:  entity.DurationHours,
		IsPublic:      true,
	}

	Quest3 = entity.SideQuest{
		Base:          entity.Base{ID: "quest3"},
		Name:          "Host a trivia night",
		Description:   "Write ten questions and invite friends",
		CategoryID:    sql.NullString{Valid: true, String: "social"},
		Difficulty:    3,
		Uniqueness:    2,
		LocationType:  entity.LocationOnline,
		DurationValue: 1,
		DurationUnit:  entity.DurationWeeks,
		IsPublic:      true,
	}

	Quest1Steps = []entity.QuestStep{
		{
			Base:      entity.Base{ID: "quest1-step1"},
			QuestID:   "quest1",
			StepOrder: 1,
			Title:     "Get square paper",
		},
		{
			Base:      entity.Base{ID: "quest1-step2"},
			QuestID:   "quest1",
			StepOrder: 2,
			Title:     "Follow the crane diagram",
		},
	}
)

func CreateFixtureDb() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if err := entity.MigrateTable(db); err != nil {
		panic(err)
	}

	insertUsers(db)
	insertQuests(db)

	return db
}

func insertUsers(db *gorm.DB) {
	for _, user := range []entity.User{User1, User2} {
		if err := db.Create(&user).Error; err != nil {
			panic(err)
		}
	}
}

func insertQuests(db *gorm.DB) {
	for _, quest := range []entity.SideQuest{Quest1, Quest2, Quest3} {
		if err := db.Create(&quest).Error; err != nil {
			panic(err)
		}
	}

	for _, step := range Quest1Steps {
		if err := db.Create(&step).Error; err != nil {
			panic(err)
		}
	}
}
