package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/pkg/utils"
)

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func parsePage(c *fiber.Ctx, v *utils.Validator) (models.Page, error) {
	var page models.Page
	if err := c.QueryParser(&page); err != nil {
		return page, err
	}
	if err := v.Struct(page); err != nil {
		return page, err
	}
	return page, nil
}

func invalidQuery(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse("Parâmetros de paginação inválidos: " + err.Error()))
}
