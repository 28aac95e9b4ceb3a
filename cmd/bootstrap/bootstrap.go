package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-portal/config"
	deliveryHttp "clinic-portal/internal/delivery/http"
	"clinic-portal/internal/delivery/http/handler"
	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/internal/infrastructure/cache"
	"clinic-portal/internal/infrastructure/database"
	"clinic-portal/internal/infrastructure/storage"
	"clinic-portal/internal/infrastructure/view"
	"clinic-portal/internal/repository"
	"clinic-portal/internal/service"
	"clinic-portal/internal/usecase"
	"clinic-portal/pkg/jwt"
	"clinic-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	connectTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// Connect opens the database and Redis connections without building the HTTP
// stack. CLI commands use it directly.
func Connect(cfg *config.Config, log *logrus.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	db, err := database.NewPostgresConnection(cfg, log)
	if err != nil {
		return nil, err
	}
	app.DB = db

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	return app, nil
}

// New connects every backing service and wires the HTTP server.
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	app, err := Connect(cfg, log)
	if err != nil {
		return nil, err
	}

	server, err := initializeServer(cfg, log, app.DB, app.RedisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// NewLogger writes JSON to stdout at LOG_LEVEL, falling back to info.
func NewLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	exposeErrors := !cfg.IsProduction()

	// Infrastructure
	urls := storage.NewURLResolver(cfg.Storage.PublicURL)
	cardRenderer, err := view.NewDoctorCardRenderer()
	if err != nil {
		return nil, err
	}

	// Repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	availabilityRepo := repository.NewDoctorAvailabilityRepository()
	catalogRepo := repository.NewCatalogRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)
	catalogCache := service.NewCatalogCache(redisClient, cfg.Cache.CatalogTTL)
	tokenStore := service.NewTokenStore(redisClient)

	// Usecases
	scheduleUsecase := usecase.NewDoctorScheduleUsecase(db, log, customValidator, doctorRepo, availabilityRepo, auditService)
	searchUsecase := usecase.NewDoctorSearchUsecase(db, log, customValidator, doctorRepo, cardRenderer, urls)
	profileUsecase := usecase.NewDoctorProfileUsecase(db, log, customValidator, userRepo, doctorRepo, catalogRepo, auditService, urls)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, catalogRepo, catalogCache)

	// Handlers
	searchHandler := handler.NewDoctorSearchHandler(searchUsecase, exposeErrors)
	scheduleHandler := handler.NewDoctorScheduleHandler(scheduleUsecase, exposeErrors)
	profileHandler := handler.NewDoctorProfileHandler(profileUsecase, exposeErrors)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase, exposeErrors)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowOrigin)

	router := deliveryHttp.NewRouter(log, searchHandler, scheduleHandler, profileHandler, catalogHandler, authMiddleware, corsMiddleware)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run serves until SIGINT or SIGTERM, then shuts down gracefully.
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.WithFields(logrus.Fields{
			"port": app.Config.App.Port,
			"env":  app.Config.App.Env,
		}).Info("Server starting")
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var serveErr error
	select {
	case serveErr = <-errCh:
		app.Log.Errorf("Failed to start server: %v", serveErr)
	case <-quit:
		app.Log.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()
	app.Log.Info("Server shutdown complete")

	return serveErr
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				app.Log.Warnf("Failed to close database: %+v", err)
			}
		}
	}

	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			app.Log.Warnf("Failed to close Redis: %+v", err)
		}
	}
}
