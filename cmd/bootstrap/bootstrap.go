package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-appointment-api/config"
	deliveryHttp "hospital-appointment-api/internal/delivery/http"
	"hospital-appointment-api/internal/delivery/http/handler"
	"hospital-appointment-api/internal/delivery/http/middleware"
	"hospital-appointment-api/internal/infrastructure/cache"
	"hospital-appointment-api/internal/infrastructure/database"
	"hospital-appointment-api/internal/repository"
	"hospital-appointment-api/internal/service"
	"hospital-appointment-api/internal/usecase"
	"hospital-appointment-api/pkg/jwt"
	"hospital-appointment-api/pkg/validator"

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
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
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
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	appointmentRepo := repository.NewAppointmentRepository()
	windowRepo := repository.NewAvailabilityWindowRepository()
	patientRepo := repository.NewPatientRepository()
	physicianRepo := repository.NewPhysicianRepository()
	roomRepo := repository.NewRoomRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize booking lock
	bookingLocker := service.NewBookingLockService(redisClient, cfg.Booking.LockTTL)

	// Initialize usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, windowRepo, patientRepo, physicianRepo, roomRepo, bookingLocker)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, windowRepo, physicianRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	physicianUsecase := usecase.NewPhysicianUsecase(db, log, physicianRepo)
	roomUsecase := usecase.NewRoomUsecase(db, log, roomRepo)

	// Initialize handlers
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	physicianHandler := handler.NewPhysicianHandler(physicianUsecase, customValidator)
	roomHandler := handler.NewRoomHandler(roomUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(appointmentHandler, availabilityHandler, patientHandler, physicianHandler, roomHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
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
