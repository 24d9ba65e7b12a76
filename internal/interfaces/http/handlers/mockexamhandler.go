package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shiken-app/shiken/internal/application/exam/usecases"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/utils"
)

// MockExamHandler serves both the admin exam builder and the learner-facing
// exam listings.
type MockExamHandler struct {
	createUseCase createMockExamUseCase
	getUseCase    getMockExamUseCase
	listUseCase   listMockExamsUseCase
	updateUseCase updateMockExamUseCase
	deleteUseCase deleteMockExamUseCase
	assignUseCase assignProblemsUseCase
	solveUseCase  getExamForSolvingUseCase
	logger        logger.Interface
}

func NewMockExamHandler(
	createUseCase createMockExamUseCase,
	getUseCase getMockExamUseCase,
	listUseCase listMockExamsUseCase,
	updateUseCase updateMockExamUseCase,
	deleteUseCase deleteMockExamUseCase,
	assignUseCase assignProblemsUseCase,
	solveUseCase getExamForSolvingUseCase,
	logger logger.Interface,
) *MockExamHandler {
	return &MockExamHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		assignUseCase: assignUseCase,
		solveUseCase:  solveUseCase,
		logger:        logger,
	}
}

type mockExamRequest struct {
	Title string `json:"title" binding:"required"`
	Level int    `json:"level" binding:"required,min=1,max=5"`
}

type assignProblemsRequest struct {
	Add    []uint `json:"add"`
	Remove []uint `json:"remove"`
}

// CreateMockExam handles POST /admin/mock-exams
func (h *MockExamHandler) CreateMockExam(c *gin.Context) {
	var req mockExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create mock exam request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateMockExamCommand{
		Title: req.Title,
		Level: req.Level,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "mock exam created successfully")
}

// GetMockExam handles GET /admin/mock-exams/:id
func (h *MockExamHandler) GetMockExam(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMockExams handles GET /admin/mock-exams
func (h *MockExamHandler) ListMockExams(c *gin.Context) {
	query, ok := h.parseListQuery(c)
	if !ok {
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateMockExam handles PUT /admin/mock-exams/:id
func (h *MockExamHandler) UpdateMockExam(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req mockExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update mock exam request", "id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateMockExamCommand{
		ID:    id,
		Title: req.Title,
		Level: req.Level,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "mock exam updated successfully", result)
}

// DeleteMockExam handles DELETE /admin/mock-exams/:id
func (h *MockExamHandler) DeleteMockExam(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "mock exam deleted successfully", nil)
}

// AssignProblems handles POST /admin/mock-exams/:id/problems
func (h *MockExamHandler) AssignProblems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req assignProblemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid assign problems request", "id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.assignUseCase.Execute(c.Request.Context(), usecases.AssignProblemsCommand{
		MockExamID: id,
		Add:        req.Add,
		Remove:     req.Remove,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "exam membership updated successfully", nil)
}

// ListPublicMockExams handles GET /mock-exams. Empty exams are hidden.
func (h *MockExamHandler) ListPublicMockExams(c *gin.Context) {
	query, ok := h.parseListQuery(c)
	if !ok {
		return
	}
	query.PublicOnly = true

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetMockExamForSolving handles GET /mock-exams/:id. Answers are withheld.
func (h *MockExamHandler) GetMockExamForSolving(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.solveUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *MockExamHandler) parseListQuery(c *gin.Context) (usecases.ListMockExamsQuery, bool) {
	var query usecases.ListMockExamsQuery
	if raw := c.Query("level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid level")
			return query, false
		}
		query.Level = &level
	}
	return query, true
}
