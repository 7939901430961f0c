package models

import (
	"time"

	"bugtrail/internal/shared/constants"
)

// UserModel represents the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:100"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	Phone        string `gorm:"uniqueIndex;not null;size:30"`
	PasswordHash string `gorm:"not null;size:255"`
	ProjectOwner bool   `gorm:"not null;default:false"`
	ProfileImage string `gorm:"size:500"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
