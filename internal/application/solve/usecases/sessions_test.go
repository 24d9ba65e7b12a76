package usecases

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiken-app/shiken/internal/application/solve"
	"github.com/shiken-app/shiken/internal/domain/exam"
	"github.com/shiken-app/shiken/internal/domain/problem"
	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
	"github.com/shiken-app/shiken/internal/domain/stats"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/services/markdown"
)

// =====================================================================
// Fakes
// =====================================================================

// fakeProblemRepo serves a fixed pool through the random-draw path.
type fakeProblemRepo struct {
	pool []*problem.Problem
}

func (r *fakeProblemRepo) Create(ctx context.Context, p *problem.Problem) error { return nil }
func (r *fakeProblemRepo) GetByID(ctx context.Context, id uint) (*problem.Problem, error) {
	return nil, problem.ErrNotFound
}
func (r *fakeProblemRepo) List(ctx context.Context, filter problem.Filter) ([]*problem.Problem, int64, error) {
	return nil, 0, nil
}
func (r *fakeProblemRepo) Update(ctx context.Context, p *problem.Problem) error { return nil }
func (r *fakeProblemRepo) Delete(ctx context.Context, id uint) error            { return nil }

func (r *fakeProblemRepo) CountByFilter(ctx context.Context, level int, problemType vo.ProblemType) (int64, error) {
	var n int64
	for _, p := range r.pool {
		if p.Level() == level && p.Type() == problemType {
			n++
		}
	}
	return n, nil
}

func (r *fakeProblemRepo) GetByOffset(ctx context.Context, level int, problemType vo.ProblemType, offset int64) (*problem.Problem, error) {
	var matched []*problem.Problem
	for _, p := range r.pool {
		if p.Level() == level && p.Type() == problemType {
			matched = append(matched, p)
		}
	}
	if offset < 0 || offset >= int64(len(matched)) {
		return nil, problem.ErrNotFound
	}
	return matched[offset], nil
}

func (r *fakeProblemRepo) GetByMockExamID(ctx context.Context, mockExamID uint) ([]*problem.Problem, error) {
	return r.pool, nil
}

func (r *fakeProblemRepo) DetachFromExam(ctx context.Context, mockExamID uint) error { return nil }

// fakeStatsRepo captures outcomes from the detached submit write.
type fakeStatsRepo struct {
	mu       sync.Mutex
	outcomes []stats.Outcome
	recorded chan struct{}
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{recorded: make(chan struct{}, 16)}
}

func (r *fakeStatsRepo) RecordOutcome(ctx context.Context, outcome stats.Outcome) error {
	r.mu.Lock()
	r.outcomes = append(r.outcomes, outcome)
	r.mu.Unlock()
	r.recorded <- struct{}{}
	return nil
}

func (r *fakeStatsRepo) GetLevelStats(ctx context.Context, userID uint, level int) (*stats.LevelStats, error) {
	return nil, nil
}

func (r *fakeStatsRepo) GetAllStats(ctx context.Context, userID uint) ([]*stats.LevelStats, error) {
	return nil, nil
}

func (r *fakeStatsRepo) waitForOutcome(t *testing.T) stats.Outcome {
	t.Helper()
	select {
	case <-r.recorded:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stats write")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomes[len(r.outcomes)-1]
}

// =====================================================================
// Helpers
// =====================================================================

func nopLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

func buildProblem(t *testing.T, id uint, level int, pType vo.ProblemType, subType vo.ProblemSubType, answerIndex int) *problem.Problem {
	t.Helper()
	now := time.Now()
	p, err := problem.ReconstructProblem(id, problem.Attributes{
		Level:       level,
		Type:        pType,
		SubType:     subType,
		Content:     "content",
		Question:    "question",
		Options:     []string{"a", "b", "c", "d"},
		AnswerIndex: answerIndex,
		Explanation: problem.Explanation{Ko: "설명", En: "explanation"},
	}, nil, now, now)
	require.NoError(t, err)
	return p
}

func putPracticeSession(t *testing.T, sessions *solve.SessionManager, userID uint, p *problem.Problem) string {
	t.Helper()
	session := exam.NewPracticeSession(sessions.NewID(), p.Level(), p)
	sessions.Put(&solve.Entry{Session: session, UserID: userID, PracticeType: p.Type()})
	return session.ID()
}

// =====================================================================
// Tests
// =====================================================================

func TestStartPracticeSession(t *testing.T) {
	repo := &fakeProblemRepo{pool: []*problem.Problem{
		buildProblem(t, 1, 3, vo.TypeVocab, vo.SubTypeContext, 0),
	}}
	sessions := solve.NewSessionManager()
	uc := NewStartPracticeSessionUseCase(repo, sessions, nopLogger())

	result, err := uc.Execute(context.Background(), StartPracticeSessionCommand{
		UserID: 7,
		Level:  3,
		Type:   "VOCAB",
	})
	require.NoError(t, err)

	assert.Equal(t, "practice", result.Mode)
	assert.Equal(t, 3, result.Level)
	require.Len(t, result.Problems, 1)
	assert.Equal(t, "unanswered", result.Problems[0].State)
	assert.Equal(t, 1, sessions.Len())
}

func TestStartPracticeSession_InvalidInput(t *testing.T) {
	sessions := solve.NewSessionManager()
	uc := NewStartPracticeSessionUseCase(&fakeProblemRepo{}, sessions, nopLogger())

	_, err := uc.Execute(context.Background(), StartPracticeSessionCommand{UserID: 7, Level: 3, Type: "SPEAKING"})
	assert.Error(t, err)

	_, err = uc.Execute(context.Background(), StartPracticeSessionCommand{UserID: 7, Level: 0, Type: "VOCAB"})
	assert.Error(t, err)
}

func TestStartPracticeSession_EmptyPool(t *testing.T) {
	sessions := solve.NewSessionManager()
	uc := NewStartPracticeSessionUseCase(&fakeProblemRepo{}, sessions, nopLogger())

	_, err := uc.Execute(context.Background(), StartPracticeSessionCommand{UserID: 7, Level: 3, Type: "VOCAB"})
	assert.Error(t, err)
	assert.Equal(t, 0, sessions.Len())
}

func TestSelectOption(t *testing.T) {
	sessions := solve.NewSessionManager()
	p := buildProblem(t, 1, 2, vo.TypeGrammar, vo.SubTypeGrammarForm, 1)
	sessionID := putPracticeSession(t, sessions, 7, p)

	uc := NewSelectOptionUseCase(sessions, nopLogger())

	result, err := uc.Execute(context.Background(), SelectOptionCommand{UserID: 7, SessionID: sessionID, OptionIndex: 2})
	require.NoError(t, err)
	assert.Equal(t, "selected", result.Problems[0].State)
	require.NotNil(t, result.Problems[0].SelectedIndex)
	assert.Equal(t, 2, *result.Problems[0].SelectedIndex)

	// Reselect before submit is allowed.
	result, err = uc.Execute(context.Background(), SelectOptionCommand{UserID: 7, SessionID: sessionID, OptionIndex: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, *result.Problems[0].SelectedIndex)
}

func TestSelectOption_SessionOwnership(t *testing.T) {
	sessions := solve.NewSessionManager()
	p := buildProblem(t, 1, 2, vo.TypeGrammar, vo.SubTypeGrammarForm, 1)
	sessionID := putPracticeSession(t, sessions, 7, p)

	uc := NewSelectOptionUseCase(sessions, nopLogger())

	_, err := uc.Execute(context.Background(), SelectOptionCommand{UserID: 8, SessionID: sessionID, OptionIndex: 0})
	assert.Error(t, err, "another user's session must look missing")
}

func TestSubmitAnswer_RecordsOutcome(t *testing.T) {
	sessions := solve.NewSessionManager()
	statsRepo := newFakeStatsRepo()
	p := buildProblem(t, 1, 2, vo.TypeGrammar, vo.SubTypeGrammarForm, 1)
	sessionID := putPracticeSession(t, sessions, 7, p)

	selectUC := NewSelectOptionUseCase(sessions, nopLogger())
	submitUC := NewSubmitAnswerUseCase(sessions, statsRepo, markdown.NewService(), nopLogger())

	_, err := selectUC.Execute(context.Background(), SelectOptionCommand{UserID: 7, SessionID: sessionID, OptionIndex: 1})
	require.NoError(t, err)

	result, err := submitUC.Execute(context.Background(), SubmitAnswerCommand{UserID: 7, SessionID: sessionID})
	require.NoError(t, err)

	assert.True(t, result.Correct)
	assert.Equal(t, 1, result.SelectedIndex)
	assert.Equal(t, 1, result.AnswerIndex)
	assert.Equal(t, "설명", result.Explanation.Ko)

	outcome := statsRepo.waitForOutcome(t)
	assert.Equal(t, uint(7), outcome.UserID)
	assert.Equal(t, 2, outcome.Level)
	assert.Equal(t, vo.TypeGrammar, outcome.Type)
	assert.Equal(t, vo.SubTypeGrammarForm, outcome.SubType)
	assert.True(t, outcome.IsCorrect)
}

func TestSubmitAnswer_WithoutSelection(t *testing.T) {
	sessions := solve.NewSessionManager()
	p := buildProblem(t, 1, 2, vo.TypeGrammar, vo.SubTypeGrammarForm, 1)
	sessionID := putPracticeSession(t, sessions, 7, p)

	uc := NewSubmitAnswerUseCase(sessions, newFakeStatsRepo(), markdown.NewService(), nopLogger())

	_, err := uc.Execute(context.Background(), SubmitAnswerCommand{UserID: 7, SessionID: sessionID})
	assert.Error(t, err)
}

func TestSubmitAnswer_DoubleSubmit(t *testing.T) {
	sessions := solve.NewSessionManager()
	statsRepo := newFakeStatsRepo()
	p := buildProblem(t, 1, 2, vo.TypeGrammar, vo.SubTypeGrammarForm, 0)
	sessionID := putPracticeSession(t, sessions, 7, p)

	selectUC := NewSelectOptionUseCase(sessions, nopLogger())
	submitUC := NewSubmitAnswerUseCase(sessions, statsRepo, markdown.NewService(), nopLogger())

	_, err := selectUC.Execute(context.Background(), SelectOptionCommand{UserID: 7, SessionID: sessionID, OptionIndex: 3})
	require.NoError(t, err)

	_, err = submitUC.Execute(context.Background(), SubmitAnswerCommand{UserID: 7, SessionID: sessionID})
	require.NoError(t, err)
	statsRepo.waitForOutcome(t)

	_, err = submitUC.Execute(context.Background(), SubmitAnswerCommand{UserID: 7, SessionID: sessionID})
	assert.Error(t, err)

	statsRepo.mu.Lock()
	defer statsRepo.mu.Unlock()
	assert.Len(t, statsRepo.outcomes, 1, "a refused resubmit must not double-count")
}

func TestNextProblem_DrawsFromSamePool(t *testing.T) {
	repo := &fakeProblemRepo{pool: []*problem.Problem{
		buildProblem(t, 1, 3, vo.TypeVocab, vo.SubTypeContext, 0),
		buildProblem(t, 2, 3, vo.TypeVocab, vo.SubTypeUsage, 1),
	}}
	sessions := solve.NewSessionManager()
	sessionID := putPracticeSession(t, sessions, 7, repo.pool[0])

	uc := NewNextProblemUseCase(repo, sessions, nopLogger())

	result, err := uc.Execute(context.Background(), NextProblemCommand{UserID: 7, SessionID: sessionID})
	require.NoError(t, err)

	require.Len(t, result.Problems, 1)
	assert.Equal(t, "unanswered", result.Problems[0].State)
	assert.Equal(t, "VOCAB", result.Problems[0].Problem.Type)
	assert.Equal(t, 3, result.Problems[0].Problem.Level)
}

func TestNextProblem_RefusedInExamMode(t *testing.T) {
	sessions := solve.NewSessionManager()
	p := buildProblem(t, 1, 1, vo.TypeVocab, vo.SubTypeContext, 0)
	session := exam.NewExamSession(sessions.NewID(), 5, []*problem.Problem{p})
	sessions.Put(&solve.Entry{Session: session, UserID: 7})

	uc := NewNextProblemUseCase(&fakeProblemRepo{}, sessions, nopLogger())

	_, err := uc.Execute(context.Background(), NextProblemCommand{UserID: 7, SessionID: session.ID()})
	assert.Error(t, err)
}

func TestNavigate(t *testing.T) {
	sessions := solve.NewSessionManager()
	problems := []*problem.Problem{
		buildProblem(t, 1, 1, vo.TypeVocab, vo.SubTypeKanjiReading, 0),
		buildProblem(t, 2, 1, vo.TypeVocab, vo.SubTypeContext, 1),
	}
	session := exam.NewExamSession(sessions.NewID(), 5, problems)
	sessions.Put(&solve.Entry{Session: session, UserID: 7})

	uc := NewNavigateUseCase(sessions, nopLogger())

	result, err := uc.Execute(context.Background(), NavigateCommand{UserID: 7, SessionID: session.ID(), Index: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CurrentIndex)

	_, err = uc.Execute(context.Background(), NavigateCommand{UserID: 7, SessionID: session.ID(), Index: 2})
	assert.Error(t, err)
}

func TestSolveSession_ConcurrentRequests(t *testing.T) {
	sessions := solve.NewSessionManager()
	problems := []*problem.Problem{
		buildProblem(t, 1, 2, vo.TypeVocab, vo.SubTypeKanjiReading, 0),
		buildProblem(t, 2, 2, vo.TypeVocab, vo.SubTypeContext, 1),
		buildProblem(t, 3, 2, vo.TypeGrammar, vo.SubTypeGrammarForm, 2),
	}
	session := exam.NewExamSession(sessions.NewID(), 5, problems)
	sessions.Put(&solve.Entry{Session: session, UserID: 7})

	selectUC := NewSelectOptionUseCase(sessions, nopLogger())
	navigateUC := NewNavigateUseCase(sessions, nopLogger())
	getUC := NewGetSessionUseCase(sessions, nopLogger())

	// One tab selecting and jumping around, another polling the snapshot.
	// Run with -race: session state must stay consistent under interleaving.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			selectUC.Execute(context.Background(), SelectOptionCommand{UserID: 7, SessionID: session.ID(), OptionIndex: i % 4})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			navigateUC.Execute(context.Background(), NavigateCommand{UserID: 7, SessionID: session.ID(), Index: i % 3})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			getUC.Execute(context.Background(), session.ID(), 7)
		}
	}()
	wg.Wait()

	result, err := getUC.Execute(context.Background(), session.ID(), 7)
	require.NoError(t, err)
	assert.Len(t, result.Problems, 3)
	for _, slot := range result.Problems {
		assert.Contains(t, []string{"unanswered", "selected"}, slot.State)
	}
}
