package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/utils"
)

// StatsHandler serves per-learner accuracy breakdowns.
type StatsHandler struct {
	getUseCase getStatsUseCase
	logger     logger.Interface
}

func NewStatsHandler(getUseCase getStatsUseCase, logger logger.Interface) *StatsHandler {
	return &StatsHandler{
		getUseCase: getUseCase,
		logger:     logger,
	}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetLevelStats handles GET /stats/:level
func (h *StatsHandler) GetLevelStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid level")
		return
	}

	result, err := h.getUseCase.ExecuteForLevel(c.Request.Context(), userID, level)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
