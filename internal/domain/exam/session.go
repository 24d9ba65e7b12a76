package exam

import (
	"time"

	"github.com/shiken-app/shiken/internal/domain/problem"
)

// SessionMode distinguishes a mock-exam sitting from free practice.
type SessionMode string

const (
	ModeExam     SessionMode = "exam"
	ModePractice SessionMode = "practice"
)

// ProblemState is the per-problem solve state within one session.
type ProblemState string

const (
	StateUnanswered ProblemState = "unanswered"
	StateSelected   ProblemState = "selected"
	StateSubmitted  ProblemState = "submitted"
)

// SubmittedAnswer is the locked-in outcome for one problem.
type SubmittedAnswer struct {
	OptionIndex int
	Correct     bool
}

// Session drives a learner through an ordered sequence of problems, enforcing
// single-attempt-before-reveal semantics per problem. State lives in memory
// for the duration of one sitting and is never persisted; losing the session
// loses the progress.
type Session struct {
	id         string
	mode       SessionMode
	mockExamID *uint
	level      int
	problems   []*problem.Problem
	current    int
	selections map[uint]int
	submitted  map[uint]SubmittedAnswer
	createdAt  time.Time
}

// NewExamSession starts a sitting over an exam's problems in display order.
func NewExamSession(id string, mockExamID uint, ordered []*problem.Problem) *Session {
	return &Session{
		id:         id,
		mode:       ModeExam,
		mockExamID: &mockExamID,
		problems:   append([]*problem.Problem(nil), ordered...),
		selections: make(map[uint]int),
		submitted:  make(map[uint]SubmittedAnswer),
		createdAt:  time.Now(),
	}
}

// NewPracticeSession starts a practice run over a single random problem.
func NewPracticeSession(id string, level int, first *problem.Problem) *Session {
	return &Session{
		id:         id,
		mode:       ModePractice,
		level:      level,
		problems:   []*problem.Problem{first},
		selections: make(map[uint]int),
		submitted:  make(map[uint]SubmittedAnswer),
		createdAt:  time.Now(),
	}
}

func (s *Session) ID() string           { return s.id }
func (s *Session) Mode() SessionMode    { return s.mode }
func (s *Session) MockExamID() *uint    { return s.mockExamID }
func (s *Session) Level() int           { return s.level }
func (s *Session) CurrentIndex() int    { return s.current }
func (s *Session) Len() int             { return len(s.problems) }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Current returns the problem the learner is looking at.
func (s *Session) Current() *problem.Problem {
	return s.problems[s.current]
}

// Problems returns the session's problems in display order.
func (s *Session) Problems() []*problem.Problem {
	return append([]*problem.Problem(nil), s.problems...)
}

// StateOf reports the solve state recorded for a problem in this session.
func (s *Session) StateOf(problemID uint) ProblemState {
	if _, ok := s.submitted[problemID]; ok {
		return StateSubmitted
	}
	if _, ok := s.selections[problemID]; ok {
		return StateSelected
	}
	return StateUnanswered
}

// SelectionOf returns the recorded option index for a problem, if any.
func (s *Session) SelectionOf(problemID uint) (int, bool) {
	idx, ok := s.selections[problemID]
	return idx, ok
}

// AnswerOf returns the locked-in answer for a submitted problem, if any.
func (s *Session) AnswerOf(problemID uint) (SubmittedAnswer, bool) {
	ans, ok := s.submitted[problemID]
	return ans, ok
}

// Select records the learner's choice for the current problem. Reselecting
// overwrites the previous choice; selection is refused once submitted.
func (s *Session) Select(optionIndex int) error {
	cur := s.Current()
	if _, ok := s.submitted[cur.ID()]; ok {
		return ErrAlreadySubmitted
	}
	if optionIndex < 0 || optionIndex >= problem.OptionCount {
		return ErrOptionOutOfRange
	}
	s.selections[cur.ID()] = optionIndex
	return nil
}

// Submit locks in the current selection, computes correctness against the
// problem's answer index and reveals the explanation. The transition is
// one-way: a second submit for the same problem returns ErrAlreadySubmitted
// and the recorded answer is untouched.
func (s *Session) Submit() (SubmittedAnswer, error) {
	cur := s.Current()
	if _, ok := s.submitted[cur.ID()]; ok {
		return SubmittedAnswer{}, ErrAlreadySubmitted
	}
	sel, ok := s.selections[cur.ID()]
	if !ok {
		return SubmittedAnswer{}, ErrNoSelection
	}

	ans := SubmittedAnswer{
		OptionIndex: sel,
		Correct:     cur.IsCorrectChoice(sel),
	}
	s.submitted[cur.ID()] = ans
	return ans, nil
}

// GoTo jumps to any problem in the sequence. Previously recorded selection
// and submission state for the target problem is retained and visible through
// StateOf/SelectionOf/AnswerOf.
func (s *Session) GoTo(index int) error {
	if index < 0 || index >= len(s.problems) {
		return ErrIndexOutOfRange
	}
	s.current = index
	return nil
}

// SwapProblem replaces the practice session's problem with a freshly drawn
// one, discarding the current problem's state.
func (s *Session) SwapProblem(next *problem.Problem) {
	cur := s.Current()
	delete(s.selections, cur.ID())
	delete(s.submitted, cur.ID())
	s.problems[s.current] = next
}
