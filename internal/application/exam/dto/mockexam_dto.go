package dto

import (
	"time"

	problemdto "github.com/shiken-app/shiken/internal/application/problem/dto"
	"github.com/shiken-app/shiken/internal/domain/exam"
)

// MockExamDTO is the list representation of a mock exam.
type MockExamDTO struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Level        int       `json:"level"`
	ProblemCount int64     `json:"problem_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NumberedProblemDTO pairs a problem with its display number within the exam.
type NumberedProblemDTO struct {
	Number  int                    `json:"number"`
	Problem *problemdto.ProblemDTO `json:"problem"`
}

// NumberedSolveProblemDTO is the learner-facing numbered problem, answer
// withheld.
type NumberedSolveProblemDTO struct {
	Number  int                         `json:"number"`
	Problem *problemdto.SolveProblemDTO `json:"problem"`
}

// MockExamDetailDTO is the admin detail view with full problem payloads.
type MockExamDetailDTO struct {
	MockExamDTO
	Problems []*NumberedProblemDTO `json:"problems"`
}

// MockExamSolveDTO is the learner view used to take the exam.
type MockExamSolveDTO struct {
	ID       uint                       `json:"id"`
	Title    string                     `json:"title"`
	Level    int                        `json:"level"`
	Problems []*NumberedSolveProblemDTO `json:"problems"`
}

// ToMockExamDTO converts an exam with its problem count.
func ToMockExamDTO(e *exam.MockExam, problemCount int64) *MockExamDTO {
	if e == nil {
		return nil
	}
	return &MockExamDTO{
		ID:           e.ID(),
		Title:        e.Title(),
		Level:        e.Level(),
		ProblemCount: problemCount,
		CreatedAt:    e.CreatedAt(),
		UpdatedAt:    e.UpdatedAt(),
	}
}

// ToNumberedProblemDTOs converts numbered problems to the admin shape.
func ToNumberedProblemDTOs(numbered []exam.NumberedProblem) []*NumberedProblemDTO {
	dtos := make([]*NumberedProblemDTO, 0, len(numbered))
	for _, np := range numbered {
		dtos = append(dtos, &NumberedProblemDTO{
			Number:  np.Number,
			Problem: problemdto.ToProblemDTO(np.Problem),
		})
	}
	return dtos
}

// ToNumberedSolveProblemDTOs converts numbered problems to the learner shape.
func ToNumberedSolveProblemDTOs(numbered []exam.NumberedProblem) []*NumberedSolveProblemDTO {
	dtos := make([]*NumberedSolveProblemDTO, 0, len(numbered))
	for _, np := range numbered {
		dtos = append(dtos, &NumberedSolveProblemDTO{
			Number:  np.Number,
			Problem: problemdto.ToSolveProblemDTO(np.Problem),
		})
	}
	return dtos
}
