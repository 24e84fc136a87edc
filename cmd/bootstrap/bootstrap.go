package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crisislink/config"
	deliveryHttp "crisislink/internal/delivery/http"
	"crisislink/internal/delivery/http/handler"
	"crisislink/internal/delivery/http/middleware"
	"crisislink/internal/infrastructure/cache"
	"crisislink/internal/infrastructure/database"
	"crisislink/internal/repository"
	"crisislink/internal/service"
	"crisislink/internal/usecase"
	"crisislink/pkg/cipher"
	"crisislink/pkg/jwt"
	"crisislink/pkg/validator"

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

	// Apply schema migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize field cipher
	fieldCipher, err := cipher.NewCipher(cfg.Cipher)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	profileRepo := repository.NewMedicalProfileRepository()
	contactRepo := repository.NewEmergencyContactRepository()
	accessLogRepo := repository.NewAccessLogRepository()
	referenceRepo := repository.NewReferenceDataRepository()

	// Initialize notification fan-out
	smsSender := service.NewSMSSender(cfg.Twilio, log)
	notifier := service.NewNotificationService(log, smsSender)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, doctorProfileRepo, jwtService, redisClient)
	profileUsecase := usecase.NewMedicalProfileUsecase(db, log, fieldCipher, userRepo, profileRepo, cfg.App.EmergencyDomain)
	contactUsecase := usecase.NewEmergencyContactUsecase(db, log, userRepo, contactRepo)
	emergencyUsecase := usecase.NewEmergencyAccessUsecase(db, log, fieldCipher, userRepo, profileRepo, contactRepo, accessLogRepo, notifier)
	qrUsecase := usecase.NewQRUsecase(db, log, cfg.App.EmergencyDomain, userRepo, profileRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, userRepo, profileRepo, doctorProfileRepo, accessLogRepo)
	referenceUsecase := usecase.NewReferenceUsecase(db, log, referenceRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	profileHandler := handler.NewMedicalProfileHandler(profileUsecase, customValidator)
	contactHandler := handler.NewEmergencyContactHandler(contactUsecase, customValidator)
	emergencyHandler := handler.NewEmergencyHandler(emergencyUsecase)
	qrHandler := handler.NewQRHandler(qrUsecase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	referenceHandler := handler.NewReferenceHandler(referenceUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		profileHandler,
		contactHandler,
		emergencyHandler,
		qrHandler,
		dashboardHandler,
		referenceHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
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
