package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shiken-app/shiken/internal/interfaces/http/handlers"
	"github.com/shiken-app/shiken/internal/interfaces/http/middleware"
)

type routeHandlers struct {
	auth         *handlers.AuthHandler
	problem      *handlers.ProblemHandler
	mockExam     *handlers.MockExamHandler
	solve        *handlers.SolveHandler
	stats        *handlers.StatsHandler
	subscription *handlers.SubscriptionHandler
	webhook      *handlers.WebhookHandler
}

func registerRoutes(engine *gin.Engine, authMW *middleware.AuthMiddleware, h routeHandlers) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	// Public
	api.GET("/auth/google/login", h.auth.GoogleLogin)
	api.GET("/auth/google/callback", h.auth.GoogleCallback)
	api.POST("/webhooks/billing", h.webhook.HandleBillingWebhook)

	// Authenticated
	authed := api.Group("")
	authed.Use(authMW.RequireAuth())
	{
		authed.POST("/auth/logout", h.auth.Logout)
		authed.GET("/users/me", h.auth.GetProfile)
		authed.PATCH("/users/me/target-level", h.auth.UpdateTargetLevel)

		authed.GET("/problems/random", h.problem.GetRandomProblem)

		authed.GET("/mock-exams", h.mockExam.ListPublicMockExams)
		authed.GET("/mock-exams/:id", h.mockExam.GetMockExamForSolving)

		authed.POST("/sessions/exam", h.solve.StartExamSession)
		authed.POST("/sessions/practice", h.solve.StartPracticeSession)
		authed.GET("/sessions/:sessionId", h.solve.GetSession)
		authed.POST("/sessions/:sessionId/select", h.solve.SelectOption)
		authed.POST("/sessions/:sessionId/submit", h.solve.SubmitAnswer)
		authed.POST("/sessions/:sessionId/goto", h.solve.Navigate)
		authed.POST("/sessions/:sessionId/next", h.solve.NextProblem)

		authed.GET("/stats", h.stats.GetStats)
		authed.GET("/stats/:level", h.stats.GetLevelStats)

		authed.POST("/subscriptions/checkout", h.subscription.CreateCheckout)
		authed.POST("/subscriptions/cancel", h.subscription.CancelSubscription)
		authed.GET("/subscriptions/current", h.subscription.GetCurrentSubscription)
	}

	// Admin
	admin := api.Group("/admin")
	admin.Use(authMW.RequireAuth(), authMW.RequireAdmin())
	{
		admin.POST("/problems", h.problem.CreateProblem)
		admin.GET("/problems", h.problem.ListProblems)
		admin.GET("/problems/:id", h.problem.GetProblem)
		admin.PUT("/problems/:id", h.problem.UpdateProblem)
		admin.DELETE("/problems/:id", h.problem.DeleteProblem)

		admin.POST("/mock-exams", h.mockExam.CreateMockExam)
		admin.GET("/mock-exams", h.mockExam.ListMockExams)
		admin.GET("/mock-exams/:id", h.mockExam.GetMockExam)
		admin.PUT("/mock-exams/:id", h.mockExam.UpdateMockExam)
		admin.DELETE("/mock-exams/:id", h.mockExam.DeleteMockExam)
		admin.POST("/mock-exams/:id/problems", h.mockExam.AssignProblems)
	}
}
