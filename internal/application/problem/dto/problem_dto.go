package dto

import (
	"time"

	"github.com/shiken-app/shiken/internal/domain/problem"
)

// ExplanationDTO mirrors the localized explanation payload.
type ExplanationDTO struct {
	Ko string `json:"ko"`
	En string `json:"en,omitempty"`
}

// VocabMeaningDTO mirrors a localized vocabulary meaning.
type VocabMeaningDTO struct {
	Ko string `json:"ko"`
	En string `json:"en,omitempty"`
}

// VocabEntryDTO mirrors one vocabulary annotation.
type VocabEntryDTO struct {
	Word    string          `json:"word"`
	Reading string          `json:"reading"`
	Meaning VocabMeaningDTO `json:"meaning"`
}

// ProblemDTO is the full admin-facing problem representation, answer
// included.
type ProblemDTO struct {
	ID                uint            `json:"id"`
	Level             int             `json:"level"`
	Type              string          `json:"type"`
	SubType           string          `json:"sub_type"`
	Content           string          `json:"content"`
	Question          string          `json:"question"`
	Options           []string        `json:"options"`
	AnswerIndex       int             `json:"answer_index"`
	Explanation       ExplanationDTO  `json:"explanation"`
	Vocab             []VocabEntryDTO `json:"vocab,omitempty"`
	ReasoningForLevel *string         `json:"reasoning_for_level,omitempty"`
	MockExamID        *uint           `json:"mock_exam_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// SolveProblemDTO is the learner-facing representation served while a
// problem is being worked on. The answer and explanation stay server-side
// until submission.
type SolveProblemDTO struct {
	ID       uint     `json:"id"`
	Level    int      `json:"level"`
	Type     string   `json:"type"`
	SubType  string   `json:"sub_type"`
	Content  string   `json:"content"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// ToProblemDTO converts a domain problem to its admin representation.
func ToProblemDTO(p *problem.Problem) *ProblemDTO {
	if p == nil {
		return nil
	}

	exp := p.Explanation()
	dto := &ProblemDTO{
		ID:                p.ID(),
		Level:             p.Level(),
		Type:              p.Type().String(),
		SubType:           p.SubType().String(),
		Content:           p.Content(),
		Question:          p.Question(),
		Options:           p.Options(),
		AnswerIndex:       p.AnswerIndex(),
		Explanation:       ExplanationDTO{Ko: exp.Ko, En: exp.En},
		ReasoningForLevel: p.ReasoningForLevel(),
		MockExamID:        p.MockExamID(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}

	for _, v := range p.Vocab() {
		dto.Vocab = append(dto.Vocab, VocabEntryDTO{
			Word:    v.Word,
			Reading: v.Reading,
			Meaning: VocabMeaningDTO{Ko: v.Meaning.Ko, En: v.Meaning.En},
		})
	}

	return dto
}

// ToProblemDTOs converts a slice of domain problems.
func ToProblemDTOs(problems []*problem.Problem) []*ProblemDTO {
	dtos := make([]*ProblemDTO, 0, len(problems))
	for _, p := range problems {
		dtos = append(dtos, ToProblemDTO(p))
	}
	return dtos
}

// ToSolveProblemDTO converts a domain problem to its learner representation.
func ToSolveProblemDTO(p *problem.Problem) *SolveProblemDTO {
	if p == nil {
		return nil
	}
	return &SolveProblemDTO{
		ID:       p.ID(),
		Level:    p.Level(),
		Type:     p.Type().String(),
		SubType:  p.SubType().String(),
		Content:  p.Content(),
		Question: p.Question(),
		Options:  p.Options(),
	}
}
