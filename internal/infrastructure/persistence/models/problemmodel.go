package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/shiken-app/shiken/internal/shared/constants"
)

// ProblemModel is the database persistence model for problems.
// This is the anti-corruption layer between domain and database.
type ProblemModel struct {
	ID                uint           `gorm:"primarykey"`
	Level             int            `gorm:"not null;index:idx_level_type,priority:1"`
	Type              string         `gorm:"not null;size:20;index:idx_level_type,priority:2"`
	SubType           string         `gorm:"not null;size:40"`
	Content           string         `gorm:"type:text;not null"`
	Question          string         `gorm:"type:text;not null"`
	Options           datatypes.JSON `gorm:"not null"`
	AnswerIndex       int            `gorm:"not null"`
	Explanation       datatypes.JSON `gorm:"not null"`
	Vocab             datatypes.JSON
	ReasoningForLevel *string `gorm:"type:text"`
	MockExamID        *uint   `gorm:"index:idx_mock_exam"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (ProblemModel) TableName() string {
	return constants.TableProblems
}
