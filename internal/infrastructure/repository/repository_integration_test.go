package repository

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shiken-app/shiken/internal/domain/problem"
	vo "github.com/shiken-app/shiken/internal/domain/problem/valueobjects"
	"github.com/shiken-app/shiken/internal/domain/subscription"
	subvo "github.com/shiken-app/shiken/internal/domain/subscription/valueobjects"
	"github.com/shiken-app/shiken/internal/domain/user"
	"github.com/shiken-app/shiken/internal/infrastructure/persistence/models"
	"github.com/shiken-app/shiken/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{}, &models.ProblemModel{}, &models.SubscriptionModel{})
	require.NoError(t, err)

	return db
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

func createTestUser(t *testing.T, repo user.Repository) *user.User {
	t.Helper()
	u, err := user.NewUser("learner@example.com", "Learner", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func createTestProblem(t *testing.T, repo problem.Repository) *problem.Problem {
	t.Helper()
	p, err := problem.NewProblem(problem.Attributes{
		Level:       3,
		Type:        vo.TypeVocab,
		SubType:     vo.SubTypeKanjiReading,
		Content:     "彼は毎朝新聞を読みます。",
		Question:    "「新聞」の読み方はどれですか。",
		Options:     []string{"しんぶん", "しんもん", "にいぶん", "しんふん"},
		AnswerIndex: 0,
		Explanation: problem.Explanation{Ko: "신문은 しんぶん으로 읽습니다."},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestUserRepository_Update_NoChangeIsNotMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testLogger())
	ctx := context.Background()

	u := createTestUser(t, repo)

	// An update that changes nothing must not be mistaken for a missing row.
	err := repo.Update(ctx, u)
	assert.NoError(t, err)

	err = repo.Update(ctx, u)
	assert.NoError(t, err)
}

func TestUserRepository_Update_MissingRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, testLogger())

	ghost, err := user.NewUser("ghost@example.com", "Ghost", "")
	require.NoError(t, err)
	require.NoError(t, ghost.SetID(9999))

	err = repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestProblemRepository_Update_NoChangeIsNotMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProblemRepository(db, testLogger())
	ctx := context.Background()

	p := createTestProblem(t, repo)

	err := repo.Update(ctx, p)
	assert.NoError(t, err)

	err = repo.Update(ctx, p)
	assert.NoError(t, err)
}

func TestProblemRepository_Update_MissingRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProblemRepository(db, testLogger())

	now := time.Now()
	ghost, err := problem.ReconstructProblem(9999, problem.Attributes{
		Level:       2,
		Type:        vo.TypeGrammar,
		SubType:     vo.SubTypeGrammarForm,
		Content:     "content",
		Question:    "question",
		Options:     []string{"a", "b", "c", "d"},
		AnswerIndex: 1,
		Explanation: problem.Explanation{Ko: "설명"},
	}, nil, now, now)
	require.NoError(t, err)

	err = repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, problem.ErrNotFound)
}

func TestSubscriptionRepository_Update_ReplayIsNotMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db, testLogger())
	ctx := context.Background()

	s, err := subscription.NewSubscription(42, subscription.ProviderLemonSqueezy, "ls-1", subvo.StatusActive)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, s))

	// A webhook redelivery applies identical state; the write must not be
	// mistaken for a missing row.
	require.NoError(t, repo.Update(ctx, s))
	require.NoError(t, repo.Update(ctx, s))

	found, err := repo.GetByExternalID(ctx, subscription.ProviderLemonSqueezy, "ls-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, subvo.StatusActive, found.Status())
}

func TestProblemRepository_Update_ClearsAssignment(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProblemRepository(db, testLogger())
	ctx := context.Background()

	p := createTestProblem(t, repo)
	examID := uint(5)
	p.AssignToExam(&examID)
	require.NoError(t, repo.Update(ctx, p))

	p.AssignToExam(nil)
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Nil(t, found.MockExamID())
}
