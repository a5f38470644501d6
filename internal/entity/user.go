package entity

type User struct {
	Base

	Name           string
	Email          string `gorm:"uniqueIndex"`
	HashedPassword string
	AvatarURL      string
	Bio            string `gorm:"type:text"`
	BirthYear      int
}
