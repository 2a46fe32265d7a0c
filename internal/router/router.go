package router

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sefazor/geradores-backend/internal/handler"
	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/pkg/metrics"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Generator *handler.GeneratorHandler
	Event     *handler.EventHandler
	Health    *handler.HealthHandler
	Label     *handler.LabelHandler
}

type Options struct {
	CORSOrigins    string
	LoginRateLimit int
	AccessLog      bool
	Metrics        *metrics.Metrics
	// RequireAuth guards the routes that need a logged-in user.
	RequireAuth fiber.Handler
}

func NewRouter(h Handlers, opts Options, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "geradores-backend",
		ErrorHandler: errorHandler(log),
	})

	// Global middleware first
	app.Use(recover.New())
	app.Use(requestid.New())
	// Credentials are only allowed for explicit origins
	app.Use(cors.New(cors.Config{
		AllowOrigins:     opts.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: !wildcardOrigin(opts.CORSOrigins),
	}))
	if opts.AccessLog {
		app.Use(logger.New())
	}
	if opts.Metrics != nil {
		app.Use(opts.Metrics.Middleware())
		app.Get("/metrics", opts.Metrics.Handler())
	}

	app.Get("/", h.Health.Root)
	app.Get("/health", h.Health.Health)

	// Auth
	login := []fiber.Handler{}
	if opts.LoginRateLimit > 0 {
		login = append(login, limiter.New(limiter.Config{
			Max:        opts.LoginRateLimit,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse("Muitas tentativas de login, tente novamente em instantes"))
			},
		}))
	}
	app.Post("/login", append(login, h.Auth.Login)...)

	users := app.Group("/users")
	users.Post("/", h.Auth.Register)
	users.Get("/", h.User.ListUsers)
	users.Get("/me", opts.RequireAuth, h.User.GetMyProfile)
	users.Get("/:id", h.User.GetUser)

	geradores := app.Group("/geradores")
	geradores.Post("/", h.Generator.CreateGenerator)
	geradores.Get("/", h.Generator.ListGenerators)
	geradores.Get("/:id", h.Generator.GetGenerator)
	geradores.Get("/:id/eventos", h.Generator.ListGeneratorEvents)
	geradores.Get("/:id/qrcode", h.Label.GeneratorQRCode)
	geradores.Put("/:id", h.Generator.UpdateGenerator)
	geradores.Delete("/:id", h.Generator.DeleteGenerator)

	eventos := app.Group("/eventos")
	eventos.Post("/", h.Event.CreateEvent)
	eventos.Get("/", h.Event.ListEvents)
	eventos.Get("/:id", h.Event.GetEvent)
	eventos.Put("/:id", h.Event.UpdateEvent)
	eventos.Delete("/:id", h.Event.DeleteEvent)

	return app
}

func wildcardOrigin(origins string) bool {
	for _, origin := range strings.Split(origins, ",") {
		if strings.TrimSpace(origin) == "*" {
			return true
		}
	}
	return false
}

// errorHandler answers errors that escape the handlers (unknown routes,
// recovered panics) with the same {"detail": ...} body.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(models.ErrorResponse(fe.Message))
		}

		log.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(handler.MsgInternalError))
	}
}
