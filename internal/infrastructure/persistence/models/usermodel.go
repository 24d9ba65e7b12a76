package models

import (
	"time"

	"github.com/shiken-app/shiken/internal/shared/constants"
)

// UserModel is the database persistence model for accounts.
type UserModel struct {
	ID          uint   `gorm:"primarykey"`
	Email       string `gorm:"uniqueIndex;not null;size:255"`
	Name        string `gorm:"size:255"`
	Image       string `gorm:"size:500"`
	IsAdmin     bool   `gorm:"not null;default:false"`
	IsPro       bool   `gorm:"not null;default:false"`
	TargetLevel *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
