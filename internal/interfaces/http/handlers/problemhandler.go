package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shiken-app/shiken/internal/application/problem/usecases"
	"github.com/shiken-app/shiken/internal/shared/constants"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/utils"
)

// ProblemHandler serves the admin problem catalog.
type ProblemHandler struct {
	createUseCase createProblemUseCase
	getUseCase    getProblemUseCase
	listUseCase   listProblemsUseCase
	updateUseCase updateProblemUseCase
	deleteUseCase deleteProblemUseCase
	randomUseCase getRandomProblemUseCase
	logger        logger.Interface
}

func NewProblemHandler(
	createUseCase createProblemUseCase,
	getUseCase getProblemUseCase,
	listUseCase listProblemsUseCase,
	updateUseCase updateProblemUseCase,
	deleteUseCase deleteProblemUseCase,
	randomUseCase getRandomProblemUseCase,
	logger logger.Interface,
) *ProblemHandler {
	return &ProblemHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		randomUseCase: randomUseCase,
		logger:        logger,
	}
}

type vocabRequest struct {
	Word      string `json:"word" binding:"required"`
	Reading   string `json:"reading"`
	MeaningKo string `json:"meaning_ko" binding:"required"`
	MeaningEn string `json:"meaning_en"`
}

type problemRequest struct {
	Level             int            `json:"level" binding:"required,min=1,max=5"`
	Type              string         `json:"type" binding:"required"`
	SubType           string         `json:"sub_type" binding:"required"`
	Content           string         `json:"content" binding:"required"`
	Question          string         `json:"question" binding:"required"`
	Options           []string       `json:"options" binding:"required,len=4"`
	AnswerIndex       int            `json:"answer_index" binding:"min=0,max=3"`
	ExplanationKo     string         `json:"explanation_ko" binding:"required"`
	ExplanationEn     string         `json:"explanation_en"`
	Vocab             []vocabRequest `json:"vocab"`
	ReasoningForLevel *string        `json:"reasoning_for_level"`
}

func (r problemRequest) toInput() usecases.AttributesInput {
	input := usecases.AttributesInput{
		Level:             r.Level,
		Type:              r.Type,
		SubType:           r.SubType,
		Content:           r.Content,
		Question:          r.Question,
		Options:           r.Options,
		AnswerIndex:       r.AnswerIndex,
		ExplanationKo:     r.ExplanationKo,
		ExplanationEn:     r.ExplanationEn,
		ReasoningForLevel: r.ReasoningForLevel,
	}
	for _, v := range r.Vocab {
		input.Vocab = append(input.Vocab, usecases.VocabInput{
			Word:      v.Word,
			Reading:   v.Reading,
			MeaningKo: v.MeaningKo,
			MeaningEn: v.MeaningEn,
		})
	}
	return input
}

// CreateProblem handles POST /admin/problems
func (h *ProblemHandler) CreateProblem(c *gin.Context) {
	var req problemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create problem request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateProblemCommand{AttributesInput: req.toInput()})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "problem created successfully")
}

// GetProblem handles GET /admin/problems/:id
func (h *ProblemHandler) GetProblem(c *gin.Context) {
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

// ListProblems handles GET /admin/problems
func (h *ProblemHandler) ListProblems(c *gin.Context) {
	query := usecases.ListProblemsQuery{
		Page:     1,
		PageSize: constants.AdminPageSize,
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid page")
			return
		}
		query.Page = page
	}
	if raw := c.Query("level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid level")
			return
		}
		query.Level = &level
	}
	if raw := c.Query("type"); raw != "" {
		query.Type = &raw
	}
	query.ExcludeAssigned = c.Query("unassigned") == "true"

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Problems, result.Total, result.Page, result.PageSize)
}

// UpdateProblem handles PUT /admin/problems/:id
func (h *ProblemHandler) UpdateProblem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req problemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update problem request", "id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateProblemCommand{
		ID:              id,
		AttributesInput: req.toInput(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "problem updated successfully", result)
}

// DeleteProblem handles DELETE /admin/problems/:id
func (h *ProblemHandler) DeleteProblem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "problem deleted successfully", nil)
}

// GetRandomProblem handles GET /problems/random
func (h *ProblemHandler) GetRandomProblem(c *gin.Context) {
	level, err := strconv.Atoi(c.Query("level"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid level")
		return
	}

	result, err := h.randomUseCase.Execute(c.Request.Context(), usecases.GetRandomProblemQuery{
		Level: level,
		Type:  c.Query("type"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// parseIDParam reads the :id path parameter.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid ID")
		return 0, false
	}
	return uint(id), true
}
