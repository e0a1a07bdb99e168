package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/college/skillbridge/internal/auth"
	"github.com/college/skillbridge/internal/config"
	"github.com/college/skillbridge/internal/database"
	"github.com/college/skillbridge/internal/handlers"
	"github.com/college/skillbridge/internal/logger"
	"github.com/college/skillbridge/internal/middleware"
	"github.com/college/skillbridge/internal/models"
	"github.com/college/skillbridge/internal/repositories"
	"github.com/college/skillbridge/internal/routes"
	"github.com/college/skillbridge/internal/services"
	"github.com/college/skillbridge/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	logger.Info("database connected")

	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}

	if err := database.SeedFirstAdmin(db, cfg); err != nil {
		logger.Fatal("failed to seed bootstrap admin", "error", err)
	}
	if cfg.Seed.DemoData {
		if err := database.SeedDemoData(db); err != nil {
			logger.Fatal("failed to seed demo data", "error", err)
		}
	}

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers into a gin engine.
// Tests reuse it against an in-memory database.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	userRepo := repositories.NewUserRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	trainerRepo := repositories.NewTrainerRepository(db)
	collegeRepo := repositories.NewCollegeRepository(db)
	batchRepo := repositories.NewBatchRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)

	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.AccessTTL())
	attempts := services.NewLoginAttemptTracker(
		cfg.LoginThrottle.MaxAttempts,
		time.Duration(cfg.LoginThrottle.BlockMinutes)*time.Minute,
	)

	authService := services.NewAuthService(
		userRepo, studentRepo, trainerRepo, collegeRepo,
		issuer, cfg.RefreshTTL(), attempts,
	)

	eligible := make([]models.BatchStatus, 0, len(cfg.Recommendation.EligibleStatuses))
	for _, s := range cfg.Recommendation.EligibleStatuses {
		eligible = append(eligible, models.BatchStatus(s))
	}
	recommendationService := services.NewRecommendationService(
		studentRepo, batchRepo, eligible,
		cfg.Recommendation.Limit,
		time.Duration(cfg.Recommendation.CacheTTLMinutes)*time.Minute,
	)

	studentService := services.NewStudentService(studentRepo, batchRepo, recommendationService)
	batchService := services.NewBatchService(batchRepo, trainerRepo, companyRepo)
	companyService := services.NewCompanyService(companyRepo)
	trainerService := services.NewTrainerService(trainerRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo, studentRepo, trainerRepo)

	v := validator.New()
	base := handlers.NewBaseHandler(v)
	cookies := handlers.NewCookieWriter(cfg.Cookies)

	appHandlers := &routes.AppHandlers{
		Auth:     handlers.NewAuthHandler(base, authService, cookies),
		Student:  handlers.NewStudentHandler(base, studentService, recommendationService),
		Batch:    handlers.NewBatchHandler(base, batchService),
		Company:  handlers.NewCompanyHandler(base, companyService),
		Trainer:  handlers.NewTrainerHandler(base, trainerService, feedbackService),
		Feedback: handlers.NewFeedbackHandler(base, feedbackService),
	}

	authRequired := middleware.AuthMiddleware(issuer, cookies.AccessCookieName())
	mw := routes.NewMiddlewares(authRequired, middleware.RequireRoles)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.RegisterRoutes(router, appHandlers, mw)

	return router
}
