package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
)

func validAttributes() Attributes {
	return Attributes{
		Level:       3,
		Type:        vo.TypeVocab,
		SubType:     vo.SubTypeKanjiReading,
		Content:     "彼は毎朝新聞を読みます。",
		Question:    "「新聞」の読み方はどれですか。",
		Options:     []string{"しんぶん", "しんもん", "にいぶん", "しんふん"},
		AnswerIndex: 0,
		Explanation: Explanation{Ko: "신문은 しんぶん으로 읽습니다."},
	}
}

func TestNewProblem_Valid(t *testing.T) {
	p, err := NewProblem(validAttributes())
	require.NoError(t, err)

	assert.Equal(t, uint(0), p.ID())
	assert.Equal(t, 3, p.Level())
	assert.Equal(t, vo.TypeVocab, p.Type())
	assert.False(t, p.IsAssigned())
	assert.True(t, p.IsCorrectChoice(0))
	assert.False(t, p.IsCorrectChoice(1))
}

func TestValidateAttributes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Attributes)
		wantOK bool
	}{
		{"valid", func(a *Attributes) {}, true},
		{"level too low", func(a *Attributes) { a.Level = 0 }, false},
		{"level too high", func(a *Attributes) { a.Level = 6 }, false},
		{"unknown type", func(a *Attributes) { a.Type = "SPEAKING" }, false},
		{"unknown subtype", func(a *Attributes) { a.SubType = "HAIKU" }, false},
		{"subtype under wrong type", func(a *Attributes) { a.SubType = vo.SubTypeGrammarForm }, false},
		{"three options", func(a *Attributes) { a.Options = a.Options[:3] }, false},
		{"five options", func(a *Attributes) { a.Options = append(a.Options, "extra") }, false},
		{"blank option", func(a *Attributes) { a.Options[2] = "  " }, false},
		{"answer index negative", func(a *Attributes) { a.AnswerIndex = -1 }, false},
		{"answer index too large", func(a *Attributes) { a.AnswerIndex = 4 }, false},
		{"missing korean explanation", func(a *Attributes) { a.Explanation.Ko = "" }, false},
		{"vocab without word", func(a *Attributes) {
			a.Vocab = []VocabEntry{{Meaning: VocabMeaning{Ko: "뜻"}}}
		}, false},
		{"vocab without korean meaning", func(a *Attributes) {
			a.Vocab = []VocabEntry{{Word: "新聞"}}
		}, false},
		{"full vocab entry", func(a *Attributes) {
			a.Vocab = []VocabEntry{{Word: "新聞", Reading: "しんぶん", Meaning: VocabMeaning{Ko: "신문", En: "newspaper"}}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := validAttributes()
			tt.mutate(&attrs)

			err := ValidateAttributes(attrs)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestProblem_Replace_RejectsInvalidPayload(t *testing.T) {
	p, err := NewProblem(validAttributes())
	require.NoError(t, err)

	bad := validAttributes()
	bad.Options = bad.Options[:2]
	require.Error(t, p.Replace(bad))

	// Failed replace leaves the problem untouched.
	assert.Len(t, p.Options(), OptionCount)
	assert.Equal(t, 3, p.Level())
}

func TestProblem_Replace_KeepsAssignment(t *testing.T) {
	p, err := NewProblem(validAttributes())
	require.NoError(t, err)

	examID := uint(7)
	p.AssignToExam(&examID)
	require.True(t, p.IsAssigned())

	next := validAttributes()
	next.Level = 2
	require.NoError(t, p.Replace(next))

	assert.Equal(t, 2, p.Level())
	require.NotNil(t, p.MockExamID())
	assert.Equal(t, examID, *p.MockExamID())
}

func TestProblem_AssignToExam_Overwrite(t *testing.T) {
	p, err := NewProblem(validAttributes())
	require.NoError(t, err)

	first, second := uint(1), uint(2)
	p.AssignToExam(&first)
	p.AssignToExam(&second)
	require.NotNil(t, p.MockExamID())
	assert.Equal(t, second, *p.MockExamID())

	p.AssignToExam(nil)
	assert.False(t, p.IsAssigned())
}

func TestProblem_SetID(t *testing.T) {
	p, err := NewProblem(validAttributes())
	require.NoError(t, err)

	require.NoError(t, p.SetID(42))
	assert.Equal(t, uint(42), p.ID())
	assert.ErrorIs(t, p.SetID(43), ErrIDAlreadySet)
}

func TestReconstructProblem_RequiresID(t *testing.T) {
	p, err := NewProblem(validAttributes())
	require.NoError(t, err)

	_, err = ReconstructProblem(0, p.Attributes(), nil, p.CreatedAt(), p.UpdatedAt())
	assert.ErrorIs(t, err, ErrZeroID)
}
