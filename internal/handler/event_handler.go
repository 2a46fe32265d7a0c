package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/service"
	"github.com/sefazor/geradores-backend/pkg/utils"
	"go.uber.org/zap"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
	log          *zap.Logger
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator, log *zap.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
		log:          log,
	}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(MsgInvalidBody))
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, h.log, err)
	}

	event, err := h.eventService.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(event)
}

func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	page, err := parsePage(c, h.validator)
	if err != nil {
		return invalidQuery(c, err)
	}

	events, err := h.eventService.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(events)
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgInvalidID))
	}

	event, err := h.eventService.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, MsgEventNotFound)
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(event)
}

// UpdateEvent answers 400 rather than 404 when the new generator reference
// does not resolve, so clients can tell it apart from a missing event.
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgInvalidID))
	}

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(MsgInvalidBody))
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, h.log, err)
	}

	event, err := h.eventService.Update(c.UserContext(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return notFound(c, MsgEventNotFound)
		case errors.Is(err, service.ErrGeneratorNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(MsgGeneratorNotFound))
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(event)
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgInvalidID))
	}

	deleted, err := h.eventService.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return notFound(c, MsgEventNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
