package dto

import (
	problemdto "github.com/shiken-app/shiken/internal/application/problem/dto"
	"github.com/shiken-app/shiken/internal/domain/exam"
)

// SessionProblemDTO is one slot of a session: the learner-facing problem
// plus its recorded solve state.
type SessionProblemDTO struct {
	Number        int                         `json:"number"`
	State         string                      `json:"state"`
	SelectedIndex *int                        `json:"selected_index,omitempty"`
	Problem       *problemdto.SolveProblemDTO `json:"problem"`
}

// SessionDTO is the full snapshot of a sitting.
type SessionDTO struct {
	SessionID    string               `json:"session_id"`
	Mode         string               `json:"mode"`
	MockExamID   *uint                `json:"mock_exam_id,omitempty"`
	Level        int                  `json:"level,omitempty"`
	CurrentIndex int                  `json:"current_index"`
	Problems     []*SessionProblemDTO `json:"problems"`
}

// SubmitResultDTO is the graded outcome revealed on submission.
type SubmitResultDTO struct {
	Correct         bool                       `json:"correct"`
	SelectedIndex   int                        `json:"selected_index"`
	AnswerIndex     int                        `json:"answer_index"`
	Explanation     problemdto.ExplanationDTO  `json:"explanation"`
	ExplanationHTML string                     `json:"explanation_html,omitempty"`
	Vocab           []problemdto.VocabEntryDTO `json:"vocab,omitempty"`
}

// ToSessionDTO snapshots a session in display order.
func ToSessionDTO(s *exam.Session) *SessionDTO {
	problems := s.Problems()
	slots := make([]*SessionProblemDTO, 0, len(problems))

	for i, p := range problems {
		slot := &SessionProblemDTO{
			Number:  i + 1,
			State:   string(s.StateOf(p.ID())),
			Problem: problemdto.ToSolveProblemDTO(p),
		}
		if idx, ok := s.SelectionOf(p.ID()); ok {
			slot.SelectedIndex = &idx
		} else if ans, ok := s.AnswerOf(p.ID()); ok {
			sel := ans.OptionIndex
			slot.SelectedIndex = &sel
		}
		slots = append(slots, slot)
	}

	return &SessionDTO{
		SessionID:    s.ID(),
		Mode:         string(s.Mode()),
		MockExamID:   s.MockExamID(),
		Level:        s.Level(),
		CurrentIndex: s.CurrentIndex(),
		Problems:     slots,
	}
}
