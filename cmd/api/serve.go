package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/geradores-backend/internal/config"
	"github.com/sefazor/geradores-backend/internal/handler"
	"github.com/sefazor/geradores-backend/internal/middleware"
	"github.com/sefazor/geradores-backend/internal/repository"
	"github.com/sefazor/geradores-backend/internal/router"
	"github.com/sefazor/geradores-backend/internal/service"
	"github.com/sefazor/geradores-backend/pkg/bcrypt"
	"github.com/sefazor/geradores-backend/pkg/database"
	"github.com/sefazor/geradores-backend/pkg/jwt"
	"github.com/sefazor/geradores-backend/pkg/metrics"
	"github.com/sefazor/geradores-backend/pkg/qrcode"
	"github.com/sefazor/geradores-backend/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer shutdown(log, db)

			// Schema is initialised once here, never per request
			if err := database.RunMigrations(db); err != nil {
				return err
			}

			app, err := buildApp(cfg, db, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("server listening", zap.String("addr", cfg.Addr()))
				errCh <- app.Listen(cfg.Addr())
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
				log.Info("shutting down")
				return app.ShutdownWithTimeout(shutdownTimeout)
			}
		},
	}
}

func buildApp(cfg *config.Config, db *gorm.DB, log *zap.Logger) (*fiber.App, error) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	generatorRepo := repository.NewGeneratorRepository(db)
	eventRepo := repository.NewEventRepository(db)

	tokens, err := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	if err != nil {
		return nil, err
	}

	// Services
	authService := service.NewAuthService(userRepo, bcrypt.NewHasher(cfg.BcryptCost), tokens, log)
	userService := service.NewUserService(userRepo)
	generatorService := service.NewGeneratorService(generatorRepo, eventRepo, log)
	eventService := service.NewEventService(eventRepo, generatorRepo, service.NewIntegrityGuard(generatorRepo), log)

	validator := utils.NewValidator()

	// Handlers
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authService, validator, log),
		User:      handler.NewUserHandler(userService, validator, log),
		Generator: handler.NewGeneratorHandler(generatorService, validator, log),
		Event:     handler.NewEventHandler(eventService, validator, log),
		Health: handler.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}, log),
		Label: handler.NewLabelHandler(generatorService, qrcode.NewLabeler(cfg.LabelBaseURL), log),
	}

	return router.NewRouter(handlers, router.Options{
		CORSOrigins:    cfg.CORSOrigins,
		LoginRateLimit: cfg.LoginRateLimit,
		AccessLog:      true,
		Metrics:        metrics.New(),
		RequireAuth:    middleware.AuthMiddleware(authService, log),
	}, log), nil
}
