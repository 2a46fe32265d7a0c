package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/geradores-backend/internal/middleware"
	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/service"
	"github.com/sefazor/geradores-backend/pkg/utils"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	validator   *utils.Validator
	log         *zap.Logger
}

func NewUserHandler(userService *service.UserService, validator *utils.Validator, log *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
		log:         log,
	}
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	page, err := parsePage(c, h.validator)
	if err != nil {
		return invalidQuery(c, err)
	}

	users, err := h.userService.ListUsers(c.UserContext(), page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(users)
}

// GetMyProfile returns the user resolved by the auth middleware.
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c, MsgNotAuthenticated)
	}
	return c.JSON(user)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgInvalidID))
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, MsgUserNotFound)
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(user)
}
