package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddinghub_backend/internal/auth"
	"weddinghub_backend/internal/config"
	"weddinghub_backend/internal/database"
	"weddinghub_backend/internal/email"
	"weddinghub_backend/internal/handlers"
	"weddinghub_backend/internal/logger"
	"weddinghub_backend/internal/middleware"
	"weddinghub_backend/internal/models"
	"weddinghub_backend/internal/repositories"
	"weddinghub_backend/internal/routes"
	"weddinghub_backend/internal/services"
	"weddinghub_backend/internal/storage"
	"weddinghub_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run wires every component and serves until interrupted.
func Run() error {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is not configured")
	}
	auth.InitJWT(cfg.JWT.Secret,
		time.Duration(cfg.JWT.TTLHours)*time.Hour,
		time.Duration(cfg.JWT.RenewAfterHours)*time.Hour)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return err
	}

	store, err := storage.NewStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return err
	}

	provider, err := buildEmailProvider(cfg)
	if err != nil {
		return err
	}
	defer provider.Close()

	sc := services.NewServiceContainer(db, store)

	if err := seedFirstAdmin(db, cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := workers.NewEmailWorker(
		sc.OutboxRepo,
		provider,
		time.Duration(cfg.Outbox.PollSeconds)*time.Second,
		cfg.Outbox.MaxAttempts,
		cfg.Outbox.BatchSize,
	)
	go worker.Run(ctx)

	router := SetupRouter(cfg.Server.Env, handlers.NewAppHandlers(sc))
	router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// SetupRouter builds the gin engine with the standard middleware chain.
func SetupRouter(env string, h *handlers.AppHandlers) *gin.Engine {
	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	routes.Setup(router, h)
	return router
}

func buildEmailProvider(cfg *config.Config) (email.Provider, error) {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("smtp not configured, emails will only be logged")
		return email.NewLogProvider()
	}
	return email.NewGomailProvider(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
}

// seedFirstAdmin bootstraps the first administrator account from config.
// Authorization everywhere else is the role claim, never an email match.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	userRepo := repositories.NewUserRepository(db)
	if _, err := userRepo.FindByEmail(cfg.FirstAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}

	logger.Info("first admin account created", "email", cfg.FirstAdminEmail)
	return nil
}
