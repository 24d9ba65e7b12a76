package problem

import (
	"time"

	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
)

// OptionCount is the fixed number of answer options per problem.
const OptionCount = 4

// Explanation holds the localized answer explanation. Korean is mandatory,
// English optional.
type Explanation struct {
	Ko string `json:"ko"`
	En string `json:"en,omitempty"`
}

// VocabMeaning is the localized meaning of a vocabulary entry.
type VocabMeaning struct {
	Ko string `json:"ko"`
	En string `json:"en,omitempty"`
}

// VocabEntry is one vocabulary annotation attached to a problem.
type VocabEntry struct {
	Word    string       `json:"word"`
	Reading string       `json:"reading"`
	Meaning VocabMeaning `json:"meaning"`
}

// Problem is the aggregate root for a single multiple-choice question.
type Problem struct {
	id                uint
	level             int
	problemType       vo.ProblemType
	subType           vo.ProblemSubType
	content           string
	question          string
	options           []string
	answerIndex       int
	explanation       Explanation
	vocab             []VocabEntry
	reasoningForLevel *string
	mockExamID        *uint
	createdAt         time.Time
	updatedAt         time.Time
}

// Attributes carries every author-editable field of a problem. It is the
// single payload shape validated for both create and full-replace update.
type Attributes struct {
	Level             int
	Type              vo.ProblemType
	SubType           vo.ProblemSubType
	Content           string
	Question          string
	Options           []string
	AnswerIndex       int
	Explanation       Explanation
	Vocab             []VocabEntry
	ReasoningForLevel *string
}

// NewProblem creates a validated, unassigned problem.
func NewProblem(attrs Attributes) (*Problem, error) {
	if err := ValidateAttributes(attrs); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Problem{
		level:             attrs.Level,
		problemType:       attrs.Type,
		subType:           attrs.SubType,
		content:           attrs.Content,
		question:          attrs.Question,
		options:           append([]string(nil), attrs.Options...),
		answerIndex:       attrs.AnswerIndex,
		explanation:       attrs.Explanation,
		vocab:             append([]VocabEntry(nil), attrs.Vocab...),
		reasoningForLevel: attrs.ReasoningForLevel,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructProblem rebuilds a problem from persistence without re-running
// author-side validation.
func ReconstructProblem(
	id uint,
	attrs Attributes,
	mockExamID *uint,
	createdAt, updatedAt time.Time,
) (*Problem, error) {
	if id == 0 {
		return nil, ErrZeroID
	}
	return &Problem{
		id:                id,
		level:             attrs.Level,
		problemType:       attrs.Type,
		subType:           attrs.SubType,
		content:           attrs.Content,
		question:          attrs.Question,
		options:           append([]string(nil), attrs.Options...),
		answerIndex:       attrs.AnswerIndex,
		explanation:       attrs.Explanation,
		vocab:             append([]VocabEntry(nil), attrs.Vocab...),
		reasoningForLevel: attrs.ReasoningForLevel,
		mockExamID:        mockExamID,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (p *Problem) ID() uint                   { return p.id }
func (p *Problem) Level() int                 { return p.level }
func (p *Problem) Type() vo.ProblemType       { return p.problemType }
func (p *Problem) SubType() vo.ProblemSubType { return p.subType }
func (p *Problem) Content() string            { return p.content }
func (p *Problem) Question() string           { return p.question }
func (p *Problem) AnswerIndex() int           { return p.answerIndex }
func (p *Problem) Explanation() Explanation   { return p.explanation }
func (p *Problem) ReasoningForLevel() *string { return p.reasoningForLevel }
func (p *Problem) MockExamID() *uint          { return p.mockExamID }
func (p *Problem) CreatedAt() time.Time       { return p.createdAt }
func (p *Problem) UpdatedAt() time.Time       { return p.updatedAt }

func (p *Problem) Options() []string {
	return append([]string(nil), p.options...)
}

func (p *Problem) Vocab() []VocabEntry {
	return append([]VocabEntry(nil), p.vocab...)
}

// SetID sets the problem ID (persistence layer use only).
func (p *Problem) SetID(id uint) error {
	if p.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrZeroID
	}
	p.id = id
	return nil
}

// Replace overwrites every author-editable field with a validated payload.
// Assignment is untouched; use AssignToExam for that.
func (p *Problem) Replace(attrs Attributes) error {
	if err := ValidateAttributes(attrs); err != nil {
		return err
	}

	p.level = attrs.Level
	p.problemType = attrs.Type
	p.subType = attrs.SubType
	p.content = attrs.Content
	p.question = attrs.Question
	p.options = append([]string(nil), attrs.Options...)
	p.answerIndex = attrs.AnswerIndex
	p.explanation = attrs.Explanation
	p.vocab = append([]VocabEntry(nil), attrs.Vocab...)
	p.reasoningForLevel = attrs.ReasoningForLevel
	p.updatedAt = time.Now()
	return nil
}

// AssignToExam moves the problem into a mock exam. A problem belongs to at
// most one exam; assigning overwrites any previous membership. Passing nil
// unassigns.
func (p *Problem) AssignToExam(mockExamID *uint) {
	p.mockExamID = mockExamID
	p.updatedAt = time.Now()
}

// IsAssigned reports whether the problem currently belongs to a mock exam.
func (p *Problem) IsAssigned() bool {
	return p.mockExamID != nil
}

// IsCorrectChoice reports whether the zero-based option index is the answer.
func (p *Problem) IsCorrectChoice(optionIndex int) bool {
	return optionIndex == p.answerIndex
}

// Attributes returns a copy of the author-editable fields.
func (p *Problem) Attributes() Attributes {
	return Attributes{
		Level:             p.level,
		Type:              p.problemType,
		SubType:           p.subType,
		Content:           p.content,
		Question:          p.question,
		Options:           p.Options(),
		AnswerIndex:       p.answerIndex,
		Explanation:       p.explanation,
		Vocab:             p.Vocab(),
		ReasoningForLevel: p.reasoningForLevel,
	}
}
