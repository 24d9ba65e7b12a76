package problem

import (
	"context"

	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
)

// Filter narrows admin and practice problem queries.
type Filter struct {
	Level           *int
	Type            *vo.ProblemType
	ExcludeAssigned bool
	Page            int
	PageSize        int
}

// Repository persists problems.
type Repository interface {
	Create(ctx context.Context, p *Problem) error
	GetByID(ctx context.Context, id uint) (*Problem, error)
	List(ctx context.Context, filter Filter) ([]*Problem, int64, error)
	Update(ctx context.Context, p *Problem) error
	Delete(ctx context.Context, id uint) error

	// CountByFilter returns the number of problems matching level and type,
	// ignoring assignment. Used with GetByOffset for random selection.
	CountByFilter(ctx context.Context, level int, problemType vo.ProblemType) (int64, error)
	// GetByOffset returns the single problem at the given offset within the
	// (level, type) set ordered by id.
	GetByOffset(ctx context.Context, level int, problemType vo.ProblemType, offset int64) (*Problem, error)

	// GetByMockExamID returns all problems assigned to a mock exam.
	GetByMockExamID(ctx context.Context, mockExamID uint) ([]*Problem, error)
	// DetachFromExam nulls the exam reference on every member problem.
	DetachFromExam(ctx context.Context, mockExamID uint) error
}
