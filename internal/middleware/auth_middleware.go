package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/service"
	"go.uber.org/zap"
)

const currentUserKey = "currentUser"

// UserResolver is implemented by service.AuthService.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware requires an "Authorization: Bearer <token>" header and
// stores the resolved user in the request locals.
func AuthMiddleware(resolver UserResolver, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return reject(c, "Não autenticado")
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return reject(c, "Formato do cabeçalho Authorization inválido")
		}

		user, err := resolver.CurrentUser(c.UserContext(), strings.TrimSpace(token))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				return reject(c, "Token expirado")
			case errors.Is(err, service.ErrUnauthorized):
				return reject(c, "Não foi possível validar as credenciais")
			}
			log.Error("failed to resolve current user", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Erro interno do servidor"))
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(currentUserKey).(*models.User)
	return user, ok && user != nil
}

func reject(c *fiber.Ctx, detail string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(detail))
}
