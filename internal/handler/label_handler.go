package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/service"
	"github.com/sefazor/geradores-backend/pkg/qrcode"
	"go.uber.org/zap"
)

type LabelHandler struct {
	generatorService *service.GeneratorService
	labeler          *qrcode.Labeler
	log              *zap.Logger
}

func NewLabelHandler(generatorService *service.GeneratorService, labeler *qrcode.Labeler, log *zap.Logger) *LabelHandler {
	return &LabelHandler{
		generatorService: generatorService,
		labeler:          labeler,
		log:              log,
	}
}

// GeneratorQRCode serves the PNG label of an existing generator.
func (h *LabelHandler) GeneratorQRCode(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgInvalidID))
	}

	if _, err := h.generatorService.Get(c.UserContext(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return notFound(c, MsgGeneratorNotFound)
		}
		return respondError(c, h.log, err)
	}

	size := qrcode.DefaultSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgInvalidLabelSize))
		}
		size = parsed
	}

	png, err := h.labeler.GeneratorLabel(id, size)
	if err != nil {
		if errors.Is(err, qrcode.ErrInvalidSize) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgInvalidLabelSize))
		}
		return respondError(c, h.log, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
