package exam

import "context"

// WithProblemCount pairs an exam with the number of assigned problems.
type WithProblemCount struct {
	Exam         *MockExam
	ProblemCount int64
}

// Repository persists mock exam shells. Problem membership is managed through
// the problem repository (the foreign key lives on problems).
type Repository interface {
	Create(ctx context.Context, m *MockExam) error
	GetByID(ctx context.Context, id uint) (*MockExam, error)
	// List returns all exams with their problem counts, newest first.
	List(ctx context.Context, level *int) ([]*WithProblemCount, error)
	Update(ctx context.Context, m *MockExam) error
	Delete(ctx context.Context, id uint) error
}
