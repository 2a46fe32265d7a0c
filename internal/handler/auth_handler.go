package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/service"
	"github.com/sefazor/geradores-backend/pkg/utils"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
	log         *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		log:         log,
	}
}

// Register creates a user account. The response never carries the hash.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(MsgInvalidBody))
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, h.log, err)
	}

	user, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(user)
}

// Login accepts the OAuth2 password form (username = email) or JSON.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(MsgInvalidBody))
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, h.log, err)
	}

	token, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(token)
}
