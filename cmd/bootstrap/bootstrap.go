package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oncall-roster/config"
	deliveryHttp "oncall-roster/internal/delivery/http"
	"oncall-roster/internal/delivery/http/handler"
	"oncall-roster/internal/delivery/http/middleware"
	"oncall-roster/internal/infrastructure/cache"
	"oncall-roster/internal/infrastructure/database"
	"oncall-roster/internal/repository"
	"oncall-roster/internal/service"
	"oncall-roster/internal/usecase"
	"oncall-roster/pkg/jwt"
	"oncall-roster/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	PeriodCron  *service.PeriodCronService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, periodCron := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.PeriodCron = periodCron

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server plus the
// background period cron.
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.PeriodCronService) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	periodRepo := repository.NewPeriodRepository()
	slotRepo := repository.NewSlotRepository()
	availabilityRepo := repository.NewAvailabilityRepository()
	preferenceRepo := repository.NewPreferenceRepository()
	assignmentRepo := repository.NewAssignmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	mailer := service.NewSMTPMailer(cfg.SMTP)
	notifier := service.NewRosterNotifier(log, mailer)
	lockService := service.NewRosterLockService(redisClient)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient)
	periodUsecase := usecase.NewPeriodUsecase(db, log, periodRepo, slotRepo, availabilityRepo, preferenceRepo, assignmentRepo, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, periodRepo, slotRepo, availabilityRepo)
	preferenceUsecase := usecase.NewPreferenceUsecase(db, log, periodRepo, preferenceRepo)
	rosterUsecase := usecase.NewRosterUsecase(db, log, cfg.Roster, periodRepo, slotRepo, availabilityRepo, preferenceRepo, assignmentRepo, userRepo, lockService, notifier, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize period cron
	periodCron := service.NewPeriodCronService(log, periodUsecase, cfg.Roster.PeriodCronSpec)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	periodHandler := handler.NewPeriodHandler(periodUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase, customValidator)
	preferenceHandler := handler.NewPreferenceHandler(preferenceUsecase, customValidator)
	rosterHandler := handler.NewRosterHandler(rosterUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, periodHandler, availabilityHandler, preferenceHandler, rosterHandler, auditLogHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, periodCron
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start period cron
	if err := app.PeriodCron.Start(); err != nil {
		logrus.Fatalf("Failed to start period cron: %v", err)
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Stop background cron first so no new periods are created during
	// shutdown.
	app.PeriodCron.Stop()

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
