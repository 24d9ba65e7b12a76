package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiken-app/shiken/internal/application/auth/usecases"
	"github.com/shiken-app/shiken/internal/interfaces/http/middleware"
	"github.com/shiken-app/shiken/internal/shared/config"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/utils"
)

const (
	oauthStateCookie  = "oauth_state"
	stateCookieMaxAge = 600
)

// AuthHandler runs the external sign-in flow and serves the profile.
type AuthHandler struct {
	loginUseCase        googleLoginUseCase
	callbackUseCase     googleCallbackUseCase
	profileUseCase      getProfileUseCase
	targetLevelUseCase  updateTargetLevelUseCase
	cookieCfg           config.CookieConfig
	tokenMaxAge         int
	frontendCallbackURL string
	logger              logger.Interface
}

func NewAuthHandler(
	loginUseCase googleLoginUseCase,
	callbackUseCase googleCallbackUseCase,
	profileUseCase getProfileUseCase,
	targetLevelUseCase updateTargetLevelUseCase,
	authCfg config.AuthConfig,
	frontendCallbackURL string,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:        loginUseCase,
		callbackUseCase:     callbackUseCase,
		profileUseCase:      profileUseCase,
		targetLevelUseCase:  targetLevelUseCase,
		cookieCfg:           authCfg.Cookie,
		tokenMaxAge:         authCfg.JWT.AccessExpMinutes * 60,
		frontendCallbackURL: frontendCallbackURL,
		logger:              logger,
	}
}

type updateTargetLevelRequest struct {
	Level int `json:"level" binding:"required,min=1,max=5"`
}

// GoogleLogin handles GET /auth/google/login
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	result, err := h.loginUseCase.Execute()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.SetCookie(oauthStateCookie, result.State, stateCookieMaxAge, h.cookieCfg.Path, h.cookieCfg.Domain, h.cookieCfg.Secure, true)
	c.Redirect(http.StatusTemporaryRedirect, result.AuthURL)
}

// GoogleCallback handles GET /auth/google/callback
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	storedState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != storedState {
		h.logger.Warnw("oauth state mismatch", "client_ip", c.ClientIP())
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid oauth state")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, h.cookieCfg.Path, h.cookieCfg.Domain, h.cookieCfg.Secure, true)

	code := c.Query("code")
	if code == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing authorization code")
		return
	}

	result, err := h.callbackUseCase.Execute(c.Request.Context(), usecases.GoogleCallbackCommand{Code: code})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.SetCookie(middleware.AccessTokenCookie, result.AccessToken, h.tokenMaxAge, h.cookieCfg.Path, h.cookieCfg.Domain, h.cookieCfg.Secure, true)

	if h.frontendCallbackURL != "" {
		c.Redirect(http.StatusTemporaryRedirect, h.frontendCallbackURL)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "signed in", result)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, h.cookieCfg.Path, h.cookieCfg.Domain, h.cookieCfg.Secure, true)
	utils.SuccessResponse(c, http.StatusOK, "signed out", nil)
}

// GetProfile handles GET /users/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.profileUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTargetLevel handles PATCH /users/me/target-level
func (h *AuthHandler) UpdateTargetLevel(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req updateTargetLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid target level request", "user_id", userID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.targetLevelUseCase.Execute(c.Request.Context(), usecases.UpdateTargetLevelCommand{
		UserID: userID,
		Level:  req.Level,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "target level updated", result)
}
