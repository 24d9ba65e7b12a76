package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiken-app/shiken/internal/application/solve/usecases"
	"github.com/shiken-app/shiken/internal/interfaces/http/middleware"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/utils"
)

// SolveHandler drives exam sittings and practice runs.
type SolveHandler struct {
	startExamUseCase     startExamSessionUseCase
	startPracticeUseCase startPracticeSessionUseCase
	getUseCase           getSessionUseCase
	selectUseCase        selectOptionUseCase
	submitUseCase        submitAnswerUseCase
	navigateUseCase      navigateUseCase
	nextUseCase          nextProblemUseCase
	logger               logger.Interface
}

func NewSolveHandler(
	startExamUseCase startExamSessionUseCase,
	startPracticeUseCase startPracticeSessionUseCase,
	getUseCase getSessionUseCase,
	selectUseCase selectOptionUseCase,
	submitUseCase submitAnswerUseCase,
	navigateUseCase navigateUseCase,
	nextUseCase nextProblemUseCase,
	logger logger.Interface,
) *SolveHandler {
	return &SolveHandler{
		startExamUseCase:     startExamUseCase,
		startPracticeUseCase: startPracticeUseCase,
		getUseCase:           getUseCase,
		selectUseCase:        selectUseCase,
		submitUseCase:        submitUseCase,
		navigateUseCase:      navigateUseCase,
		nextUseCase:          nextUseCase,
		logger:               logger,
	}
}

type startExamRequest struct {
	MockExamID uint `json:"mock_exam_id" binding:"required"`
}

type startPracticeRequest struct {
	Level int    `json:"level" binding:"required,min=1,max=5"`
	Type  string `json:"type" binding:"required"`
}

type selectOptionRequest struct {
	OptionIndex *int `json:"option_index" binding:"required"`
}

type navigateRequest struct {
	Index *int `json:"index" binding:"required"`
}

// StartExamSession handles POST /sessions/exam
func (h *SolveHandler) StartExamSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req startExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid start exam request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.startExamUseCase.Execute(c.Request.Context(), usecases.StartExamSessionCommand{
		UserID:     userID,
		MockExamID: req.MockExamID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "exam session started")
}

// StartPracticeSession handles POST /sessions/practice
func (h *SolveHandler) StartPracticeSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req startPracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid start practice request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.startPracticeUseCase.Execute(c.Request.Context(), usecases.StartPracticeSessionCommand{
		UserID: userID,
		Level:  req.Level,
		Type:   req.Type,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "practice session started")
}

// GetSession handles GET /sessions/:sessionId
func (h *SolveHandler) GetSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), c.Param("sessionId"), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SelectOption handles POST /sessions/:sessionId/select
func (h *SolveHandler) SelectOption(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req selectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid select option request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.selectUseCase.Execute(c.Request.Context(), usecases.SelectOptionCommand{
		UserID:      userID,
		SessionID:   c.Param("sessionId"),
		OptionIndex: *req.OptionIndex,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SubmitAnswer handles POST /sessions/:sessionId/submit
func (h *SolveHandler) SubmitAnswer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.submitUseCase.Execute(c.Request.Context(), usecases.SubmitAnswerCommand{
		UserID:    userID,
		SessionID: c.Param("sessionId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Navigate handles POST /sessions/:sessionId/goto
func (h *SolveHandler) Navigate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid navigate request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.navigateUseCase.Execute(c.Request.Context(), usecases.NavigateCommand{
		UserID:    userID,
		SessionID: c.Param("sessionId"),
		Index:     *req.Index,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// NextProblem handles POST /sessions/:sessionId/next
func (h *SolveHandler) NextProblem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.nextUseCase.Execute(c.Request.Context(), usecases.NextProblemCommand{
		UserID:    userID,
		SessionID: c.Param("sessionId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// requireUserID pulls the authenticated user from the context.
func requireUserID(c *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	return userID, true
}
