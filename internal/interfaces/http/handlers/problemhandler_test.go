package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	problemdto "github.com/shiken-app/shiken/internal/application/problem/dto"
	"github.com/shiken-app/shiken/internal/application/problem/usecases"
	"github.com/shiken-app/shiken/internal/interfaces/http/handlers/testutil"
	"github.com/shiken-app/shiken/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateProblemUC struct {
	result *problemdto.ProblemDTO
	err    error
	gotCmd usecases.CreateProblemCommand
}

func (m *mockCreateProblemUC) Execute(ctx context.Context, cmd usecases.CreateProblemCommand) (*problemdto.ProblemDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetProblemUC struct {
	result *problemdto.ProblemDTO
	err    error
}

func (m *mockGetProblemUC) Execute(ctx context.Context, id uint) (*problemdto.ProblemDTO, error) {
	return m.result, m.err
}

type mockListProblemsUC struct {
	result   *usecases.ListProblemsResult
	err      error
	gotQuery usecases.ListProblemsQuery
}

func (m *mockListProblemsUC) Execute(ctx context.Context, query usecases.ListProblemsQuery) (*usecases.ListProblemsResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockUpdateProblemUC struct {
	result *problemdto.ProblemDTO
	err    error
}

func (m *mockUpdateProblemUC) Execute(ctx context.Context, cmd usecases.UpdateProblemCommand) (*problemdto.ProblemDTO, error) {
	return m.result, m.err
}

type mockDeleteProblemUC struct {
	err error
}

func (m *mockDeleteProblemUC) Execute(ctx context.Context, id uint) error {
	return m.err
}

type mockGetRandomProblemUC struct {
	result *problemdto.ProblemDTO
	err    error
}

func (m *mockGetRandomProblemUC) Execute(ctx context.Context, query usecases.GetRandomProblemQuery) (*problemdto.ProblemDTO, error) {
	return m.result, m.err
}

// =====================================================================
// Helpers
// =====================================================================

func testProblemDTO() *problemdto.ProblemDTO {
	return &problemdto.ProblemDTO{
		ID:          1,
		Level:       3,
		Type:        "VOCAB",
		SubType:     "KANJI_READING",
		Content:     "彼は毎朝新聞を読みます。",
		Question:    "「新聞」の読み方はどれですか。",
		Options:     []string{"しんぶん", "しんもん", "にいぶん", "しんふん"},
		AnswerIndex: 0,
		Explanation: problemdto.ExplanationDTO{Ko: "신문은 しんぶん으로 읽습니다."},
	}
}

func testProblemRequest() problemRequest {
	return problemRequest{
		Level:         3,
		Type:          "VOCAB",
		SubType:       "KANJI_READING",
		Content:       "彼は毎朝新聞を読みます。",
		Question:      "「新聞」の読み方はどれですか。",
		Options:       []string{"しんぶん", "しんもん", "にいぶん", "しんふん"},
		AnswerIndex:   0,
		ExplanationKo: "신문은 しんぶん으로 읽습니다.",
	}
}

func newTestProblemHandler(
	createUC createProblemUseCase,
	getUC getProblemUseCase,
	listUC listProblemsUseCase,
	updateUC updateProblemUseCase,
	deleteUC deleteProblemUseCase,
	randomUC getRandomProblemUseCase,
) *ProblemHandler {
	return NewProblemHandler(createUC, getUC, listUC, updateUC, deleteUC, randomUC, testutil.NewMockLogger())
}

// =====================================================================
// Tests
// =====================================================================

func TestProblemHandler_CreateProblem_Success(t *testing.T) {
	mockUC := &mockCreateProblemUC{result: testProblemDTO()}
	handler := newTestProblemHandler(mockUC, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/problems", testProblemRequest())

	handler.CreateProblem(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 3, mockUC.gotCmd.Level)
	assert.Equal(t, "VOCAB", mockUC.gotCmd.Type)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestProblemHandler_CreateProblem_MissingFields(t *testing.T) {
	handler := newTestProblemHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/problems", map[string]any{"level": 3})

	handler.CreateProblem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProblemHandler_CreateProblem_WrongOptionCount(t *testing.T) {
	handler := newTestProblemHandler(nil, nil, nil, nil, nil, nil)

	req := testProblemRequest()
	req.Options = req.Options[:3]
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/problems", req)

	handler.CreateProblem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code, "binding enforces exactly four options")
}

func TestProblemHandler_CreateProblem_UseCaseError(t *testing.T) {
	mockUC := &mockCreateProblemUC{err: errors.NewValidationError("subtype GRAMMAR_FORM is not valid for type VOCAB", "")}
	handler := newTestProblemHandler(mockUC, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/problems", testProblemRequest())

	handler.CreateProblem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestProblemHandler_GetProblem_Success(t *testing.T) {
	handler := newTestProblemHandler(nil, &mockGetProblemUC{result: testProblemDTO()}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/problems/1", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.GetProblem(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProblemHandler_GetProblem_InvalidID(t *testing.T) {
	handler := newTestProblemHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/problems/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetProblem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProblemHandler_GetProblem_NotFound(t *testing.T) {
	handler := newTestProblemHandler(nil, &mockGetProblemUC{err: errors.NewNotFoundError("problem not found")}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/problems/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.GetProblem(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProblemHandler_ListProblems_Filters(t *testing.T) {
	mockUC := &mockListProblemsUC{result: &usecases.ListProblemsResult{
		Problems: []*problemdto.ProblemDTO{testProblemDTO()},
		Total:    1,
		Page:     2,
		PageSize: 50,
	}}
	handler := newTestProblemHandler(nil, nil, mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/problems", nil)
	testutil.SetQueryParams(c, map[string]string{
		"page":       "2",
		"level":      "3",
		"type":       "VOCAB",
		"unassigned": "true",
	})

	handler.ListProblems(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, mockUC.gotQuery.Page)
	require.NotNil(t, mockUC.gotQuery.Level)
	assert.Equal(t, 3, *mockUC.gotQuery.Level)
	require.NotNil(t, mockUC.gotQuery.Type)
	assert.Equal(t, "VOCAB", *mockUC.gotQuery.Type)
	assert.True(t, mockUC.gotQuery.ExcludeAssigned)
}

func TestProblemHandler_ListProblems_BadPage(t *testing.T) {
	handler := newTestProblemHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/problems", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "0"})

	handler.ListProblems(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProblemHandler_UpdateProblem_Success(t *testing.T) {
	handler := newTestProblemHandler(nil, nil, nil, &mockUpdateProblemUC{result: testProblemDTO()}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPut, "/admin/problems/1", testProblemRequest())
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateProblem(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProblemHandler_DeleteProblem_Success(t *testing.T) {
	handler := newTestProblemHandler(nil, nil, nil, nil, &mockDeleteProblemUC{}, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/admin/problems/1", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.DeleteProblem(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProblemHandler_GetRandomProblem_Success(t *testing.T) {
	handler := newTestProblemHandler(nil, nil, nil, nil, nil, &mockGetRandomProblemUC{result: testProblemDTO()})

	c, w := testutil.NewTestContext(http.MethodGet, "/problems/random", nil)
	testutil.SetQueryParams(c, map[string]string{"level": "3", "type": "VOCAB"})

	handler.GetRandomProblem(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProblemHandler_GetRandomProblem_MissingLevel(t *testing.T) {
	handler := newTestProblemHandler(nil, nil, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/problems/random", nil)
	testutil.SetQueryParams(c, map[string]string{"type": "VOCAB"})

	handler.GetRandomProblem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
