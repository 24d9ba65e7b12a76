// Package http wires repositories, usecases, handlers and routes into one
// gin engine.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "github.com/shiken-app/shiken/internal/application/auth/usecases"
	examusecases "github.com/shiken-app/shiken/internal/application/exam/usecases"
	problemusecases "github.com/shiken-app/shiken/internal/application/problem/usecases"
	"github.com/shiken-app/shiken/internal/application/solve"
	solveusecases "github.com/shiken-app/shiken/internal/application/solve/usecases"
	statsusecases "github.com/shiken-app/shiken/internal/application/stats/usecases"
	subusecases "github.com/shiken-app/shiken/internal/application/subscription/usecases"
	"github.com/shiken-app/shiken/internal/infrastructure/auth"
	"github.com/shiken-app/shiken/internal/infrastructure/billing"
	"github.com/shiken-app/shiken/internal/infrastructure/cache"
	"github.com/shiken-app/shiken/internal/infrastructure/config"
	"github.com/shiken-app/shiken/internal/infrastructure/repository"
	"github.com/shiken-app/shiken/internal/interfaces/http/handlers"
	"github.com/shiken-app/shiken/internal/interfaces/http/middleware"
	"github.com/shiken-app/shiken/internal/shared/logger"
	"github.com/shiken-app/shiken/internal/shared/services/markdown"
)

const (
	sessionSweepInterval = 10 * time.Minute
	sessionMaxIdle       = 3 * time.Hour
)

// Router owns the gin engine and the session janitor.
type Router struct {
	engine      *gin.Engine
	stopJanitor func()
}

// NewRouter builds the full dependency graph and registers every route.
func NewRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) *Router {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositories
	problemRepo := repository.NewProblemRepository(db, log)
	examRepo := repository.NewMockExamRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	historyRepo := repository.NewSubscriptionHistoryRepository(db, log)
	statsRepo := cache.NewStatsStore(redisClient, log)

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	oauthClient := auth.NewGoogleOAuthClient(cfg.OAuth.Google)
	billingClient := billing.NewLemonSqueezyClient(cfg.Billing, log)
	renderer := markdown.NewService()
	sessions := solve.NewSessionManager()
	stopJanitor := sessions.StartJanitor(sessionSweepInterval, sessionMaxIdle)

	// Handlers
	problemHandler := handlers.NewProblemHandler(
		problemusecases.NewCreateProblemUseCase(problemRepo, log),
		problemusecases.NewGetProblemUseCase(problemRepo, log),
		problemusecases.NewListProblemsUseCase(problemRepo, log),
		problemusecases.NewUpdateProblemUseCase(problemRepo, log),
		problemusecases.NewDeleteProblemUseCase(problemRepo, log),
		problemusecases.NewGetRandomProblemUseCase(problemRepo, log),
		log,
	)

	mockExamHandler := handlers.NewMockExamHandler(
		examusecases.NewCreateMockExamUseCase(examRepo, log),
		examusecases.NewGetMockExamUseCase(examRepo, problemRepo, log),
		examusecases.NewListMockExamsUseCase(examRepo, log),
		examusecases.NewUpdateMockExamUseCase(examRepo, log),
		examusecases.NewDeleteMockExamUseCase(examRepo, problemRepo, log),
		examusecases.NewAssignProblemsUseCase(examRepo, problemRepo, log),
		examusecases.NewGetExamForSolvingUseCase(examRepo, problemRepo, log),
		log,
	)

	solveHandler := handlers.NewSolveHandler(
		solveusecases.NewStartExamSessionUseCase(examRepo, problemRepo, sessions, log),
		solveusecases.NewStartPracticeSessionUseCase(problemRepo, sessions, log),
		solveusecases.NewGetSessionUseCase(sessions, log),
		solveusecases.NewSelectOptionUseCase(sessions, log),
		solveusecases.NewSubmitAnswerUseCase(sessions, statsRepo, renderer, log),
		solveusecases.NewNavigateUseCase(sessions, log),
		solveusecases.NewNextProblemUseCase(problemRepo, sessions, log),
		log,
	)

	statsHandler := handlers.NewStatsHandler(
		statsusecases.NewGetStatsUseCase(statsRepo, log),
		log,
	)

	subscriptionHandler := handlers.NewSubscriptionHandler(
		subusecases.NewCreateCheckoutUseCase(subscriptionRepo, userRepo, billingClient, log),
		subusecases.NewCancelSubscriptionUseCase(subscriptionRepo, historyRepo, billingClient, log),
		subusecases.NewGetCurrentSubscriptionUseCase(subscriptionRepo, log),
		log,
	)

	webhookHandler := handlers.NewWebhookHandler(
		subusecases.NewProcessWebhookUseCase(subscriptionRepo, historyRepo, userRepo, log),
		cfg.Billing.WebhookSecret,
		log,
	)

	authHandler := handlers.NewAuthHandler(
		authusecases.NewGoogleLoginUseCase(oauthClient, log),
		authusecases.NewGoogleCallbackUseCase(oauthClient, userRepo, jwtService, log),
		authusecases.NewGetProfileUseCase(userRepo, log),
		authusecases.NewUpdateTargetLevelUseCase(userRepo, log),
		cfg.Auth,
		cfg.Server.FrontendCallbackURL,
		log,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, log)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogging(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	registerRoutes(engine, authMiddleware, routeHandlers{
		auth:         authHandler,
		problem:      problemHandler,
		mockExam:     mockExamHandler,
		solve:        solveHandler,
		stats:        statsHandler,
		subscription: subscriptionHandler,
		webhook:      webhookHandler,
	})

	return &Router{engine: engine, stopJanitor: stopJanitor}
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Shutdown stops background work owned by the router.
func (r *Router) Shutdown() {
	if r.stopJanitor != nil {
		r.stopJanitor()
	}
}
