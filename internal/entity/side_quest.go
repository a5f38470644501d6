package entity

import (
	"database/sql"

	"github.com/sidequests/backend/pkg/enum"
)

type LocationType string

var (
	LocationAnywhere = enum.New(LocationType("anywhere"))
	LocationOnline   = enum.New(LocationType("online"))
	LocationAddress  = enum.New(LocationType("address"))
)

type DurationUnit string

var (
	DurationMinutes = enum.New(DurationUnit("minutes"))
	DurationHours   = enum.New(DurationUnit("hours"))
	DurationDays    = enum.New(DurationUnit("days"))
	DurationWeeks   = enum.New(DurationUnit("weeks"))
	DurationMonths  = enum.New(DurationUnit("months"))
)

// SideQuest is both a shareable template (is_public, created_by possibly
// empty for seed data) and a user's personal copy (created_by set,
// is_public false). Templates and user copies share one table.
type SideQuest struct {
	Base

	Name        string
	Description string `gorm:"type:text"`

	CategoryID sql.NullString
	Category   Category `gorm:"foreignKey:CategoryID"`

	Difficulty int
	Uniqueness int

	LocationType LocationType
	LocationText string
	Latitude     sql.NullFloat64
	Longitude    sql.NullFloat64

	Cost sql.NullFloat64

	DurationValue int
	DurationUnit  DurationUnit

	PhotoURL string

	IsPublic  bool           `gorm:"index"`
	CreatedBy sql.NullString `gorm:"index"`
	Creator   User           `gorm:"foreignKey:CreatedBy"`

	// SourceQuestID references the public template a personal copy was made
	// from. Ownership checks use the (name, description) fingerprint; this
	// column is informative only.
	SourceQuestID sql.NullString

	IsCompleted        bool `gorm:"index"`
	CompletedAt        sql.NullTime
	CompletionNotes    string `gorm:"type:text"`
	CompletionPhotoURL string
}
