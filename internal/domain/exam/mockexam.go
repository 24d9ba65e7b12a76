package exam

import (
	"strings"
	"time"
)

// MockExam is a named, leveled bundle of problems presented as one sitting.
// Membership lives on the problem side (Problem.MockExamID); the exam row
// itself owns nothing but title and level.
type MockExam struct {
	id        uint
	title     string
	level     int
	createdAt time.Time
	updatedAt time.Time
}

// NewMockExam creates an empty mock exam shell.
func NewMockExam(title string, level int) (*MockExam, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if level < 1 || level > 5 {
		return nil, ErrInvalidLevel
	}

	now := time.Now()
	return &MockExam{
		title:     title,
		level:     level,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructMockExam rebuilds a mock exam from persistence.
func ReconstructMockExam(id uint, title string, level int, createdAt, updatedAt time.Time) (*MockExam, error) {
	if id == 0 {
		return nil, ErrZeroID
	}
	return &MockExam{
		id:        id,
		title:     title,
		level:     level,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (m *MockExam) ID() uint             { return m.id }
func (m *MockExam) Title() string        { return m.title }
func (m *MockExam) Level() int           { return m.level }
func (m *MockExam) CreatedAt() time.Time { return m.createdAt }
func (m *MockExam) UpdatedAt() time.Time { return m.updatedAt }

// SetID sets the exam ID (persistence layer use only).
func (m *MockExam) SetID(id uint) error {
	if m.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrZeroID
	}
	m.id = id
	return nil
}

// Rename updates title and level. Level is editable independently of member
// problems; nothing forces assigned problems to share it.
func (m *MockExam) Rename(title string, level int) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if level < 1 || level > 5 {
		return ErrInvalidLevel
	}
	m.title = title
	m.level = level
	m.updatedAt = time.Now()
	return nil
}
