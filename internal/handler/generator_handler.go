package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/service"
	"github.com/sefazor/geradores-backend/pkg/utils"
	"go.uber.org/zap"
)

type GeneratorHandler struct {
	generatorService *service.GeneratorService
	validator        *utils.Validator
	log              *zap.Logger
}

func NewGeneratorHandler(generatorService *service.GeneratorService, validator *utils.Validator, log *zap.Logger) *GeneratorHandler {
	return &GeneratorHandler{
		generatorService: generatorService,
		validator:        validator,
		log:              log,
	}
}

func (h *GeneratorHandler) CreateGenerator(c *fiber.Ctx) error {
	var req models.CreateGeneratorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(MsgInvalidBody))
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, h.log, err)
	}

	generator, err := h.generatorService.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(generator)
}

func (h *GeneratorHandler) ListGenerators(c *fiber.Ctx) error {
	page, err := parsePage(c, h.validator)
	if err != nil {
		return invalidQuery(c, err)
	}

	generators, err := h.generatorService.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(generators)
}

func (h *GeneratorHandler) GetGenerator(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgInvalidID))
	}

	generator, err := h.generatorService.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, MsgGeneratorNotFound)
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(generator)
}

func (h *GeneratorHandler) ListGeneratorEvents(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgInvalidID))
	}
	page, err := parsePage(c, h.validator)
	if err != nil {
		return invalidQuery(c, err)
	}

	events, err := h.generatorService.ListEvents(c.UserContext(), id, page)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, MsgGeneratorNotFound)
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(events)
}

func (h *GeneratorHandler) UpdateGenerator(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgInvalidID))
	}

	var req models.UpdateGeneratorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(MsgInvalidBody))
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, h.log, err)
	}

	generator, err := h.generatorService.Update(c.UserContext(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, MsgGeneratorNotFound)
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(generator)
}

func (h *GeneratorHandler) DeleteGenerator(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgInvalidID))
	}

	deleted, err := h.generatorService.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return notFound(c, MsgGeneratorNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
