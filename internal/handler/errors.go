package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/service"
	"go.uber.org/zap"
)

const (
	MsgInvalidBody        = "Corpo da requisição inválido"
	MsgInvalidID          = "ID inválido"
	MsgInternalError      = "Erro interno do servidor"
	MsgEmailTaken         = "E-mail já cadastrado"
	MsgBadCredentials     = "E-mail ou senha incorretos"
	MsgNotAuthenticated   = "Não foi possível validar as credenciais"
	MsgTokenExpired       = "Token expirado"
	MsgGeneratorNotFound  = "Gerador não encontrado"
	MsgEventNotFound      = "Evento não encontrado"
	MsgUserNotFound       = "Usuário não encontrado"
	MsgGeneratorHasEvents = "Gerador possui eventos vinculados"
	MsgPasswordTooLong    = "password: deve ter no máximo 72 bytes"
	MsgInvalidLabelSize   = "size: deve ser um inteiro entre 64 e 1024"
)

// respondError maps service errors onto status codes. Unexpected errors are
// logged and answered with a generic 500.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(validationMessage(verrs)))
	case errors.Is(err, service.ErrPasswordTooLong):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse(MsgPasswordTooLong))
	case errors.Is(err, service.ErrGeneratorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(MsgGeneratorNotFound))
	case errors.Is(err, service.ErrGeneratorInUse):
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse(MsgGeneratorHasEvents))
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(MsgEmailTaken))
	case errors.Is(err, service.ErrAuthenticationFailed):
		return unauthorized(c, MsgBadCredentials)
	case errors.Is(err, service.ErrTokenExpired):
		return unauthorized(c, MsgTokenExpired)
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorized(c, MsgNotAuthenticated)
	}

	log.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(MsgInternalError))
}

func unauthorized(c *fiber.Ctx, detail string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(detail))
}

func notFound(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(detail))
}

func validationMessage(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			parts = append(parts, fmt.Sprintf("%s: campo obrigatório", fe.Field()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s: e-mail inválido", fe.Field()))
		case "min", "max":
			parts = append(parts, fmt.Sprintf("%s: deve respeitar %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s: valor inválido", fe.Field()))
		}
	}
	return strings.Join(parts, "; ")
}
