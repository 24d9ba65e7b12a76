package models

import (
	"time"

	"github.com/shiken-app/shiken/internal/shared/constants"
)

// MockExamModel is the database persistence model for mock exam shells.
type MockExamModel struct {
	ID        uint   `gorm:"primarykey"`
	Title     string `gorm:"not null;size:255"`
	Level     int    `gorm:"not null;index:idx_exam_level"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (MockExamModel) TableName() string {
	return constants.TableMockExams
}
