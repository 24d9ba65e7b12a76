package exam

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiken-app/shiken/internal/domain/problem"
	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
)

func makeSessionProblem(t *testing.T, id uint, answerIndex int) *problem.Problem {
	t.Helper()
	now := time.Now()
	p, err := problem.ReconstructProblem(id, problem.Attributes{
		Level:       2,
		Type:        vo.TypeGrammar,
		SubType:     vo.SubTypeGrammarForm,
		Content:     "content",
		Question:    "question",
		Options:     []string{"a", "b", "c", "d"},
		AnswerIndex: answerIndex,
		Explanation: problem.Explanation{Ko: "설명"},
	}, nil, now, now)
	require.NoError(t, err)
	return p
}

func newTestExamSession(t *testing.T) *Session {
	return NewExamSession("sess-1", 9, []*problem.Problem{
		makeSessionProblem(t, 1, 0),
		makeSessionProblem(t, 2, 1),
		makeSessionProblem(t, 3, 2),
	})
}

func TestSession_InitialState(t *testing.T) {
	s := newTestExamSession(t)

	assert.Equal(t, ModeExam, s.Mode())
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, 3, s.Len())
	for _, p := range s.Problems() {
		assert.Equal(t, StateUnanswered, s.StateOf(p.ID()))
	}
}

func TestSession_SelectIsReentrantUntilSubmit(t *testing.T) {
	s := newTestExamSession(t)

	require.NoError(t, s.Select(1))
	require.NoError(t, s.Select(3))

	idx, ok := s.SelectionOf(1)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, StateSelected, s.StateOf(1))
}

func TestSession_SelectOutOfRange(t *testing.T) {
	s := newTestExamSession(t)

	assert.ErrorIs(t, s.Select(-1), ErrOptionOutOfRange)
	assert.ErrorIs(t, s.Select(4), ErrOptionOutOfRange)
}

func TestSession_SubmitWithoutSelection(t *testing.T) {
	s := newTestExamSession(t)

	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestSession_SubmitIsOneWay(t *testing.T) {
	s := newTestExamSession(t)

	require.NoError(t, s.Select(0))
	ans, err := s.Submit()
	require.NoError(t, err)
	assert.True(t, ans.Correct)
	assert.Equal(t, 0, ans.OptionIndex)
	assert.Equal(t, StateSubmitted, s.StateOf(1))

	// Second submit is refused and the recorded answer survives.
	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	// So is re-selection.
	assert.ErrorIs(t, s.Select(2), ErrAlreadySubmitted)

	recorded, ok := s.AnswerOf(1)
	require.True(t, ok)
	assert.True(t, recorded.Correct)
}

func TestSession_SubmitGradesWrongAnswer(t *testing.T) {
	s := newTestExamSession(t)

	require.NoError(t, s.Select(3))
	ans, err := s.Submit()
	require.NoError(t, err)
	assert.False(t, ans.Correct)
	assert.Equal(t, 3, ans.OptionIndex)
}

func TestSession_GoToRestoresRecordedState(t *testing.T) {
	s := newTestExamSession(t)

	require.NoError(t, s.Select(0))
	_, err := s.Submit()
	require.NoError(t, err)

	require.NoError(t, s.GoTo(2))
	assert.Equal(t, 2, s.CurrentIndex())
	require.NoError(t, s.Select(1))

	// Jumping back shows the locked-in answer for the first problem.
	require.NoError(t, s.GoTo(0))
	assert.Equal(t, StateSubmitted, s.StateOf(s.Current().ID()))

	// And the selection on the third problem is still there.
	require.NoError(t, s.GoTo(2))
	assert.Equal(t, StateSelected, s.StateOf(s.Current().ID()))
}

func TestSession_GoToOutOfRange(t *testing.T) {
	s := newTestExamSession(t)

	assert.ErrorIs(t, s.GoTo(-1), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.GoTo(3), ErrIndexOutOfRange)
}

func TestPracticeSession_SwapProblemDiscardsState(t *testing.T) {
	first := makeSessionProblem(t, 1, 0)
	s := NewPracticeSession("sess-2", 2, first)

	assert.Equal(t, ModePractice, s.Mode())
	assert.Nil(t, s.MockExamID())
	assert.Equal(t, 2, s.Level())

	require.NoError(t, s.Select(1))
	_, err := s.Submit()
	require.NoError(t, err)

	next := makeSessionProblem(t, 5, 2)
	s.SwapProblem(next)

	assert.Equal(t, uint(5), s.Current().ID())
	assert.Equal(t, StateUnanswered, s.StateOf(5))
	// Old problem's state is gone too; a redraw of the same problem starts fresh.
	assert.Equal(t, StateUnanswered, s.StateOf(1))
}
