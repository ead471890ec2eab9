package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/internal/domain"
	"github.com/carta-digital/carta-api/pkg/logger"
)

// Mensajes de error del API. Los textos son contrato con los clientes:
// no cambiarlos sin coordinar.
const (
	msgMenuNotFound     = "Menu not found!"
	msgCategoryNotFound = "Category not found!"
	msgProductNotFound  = "Product not found!"
	msgUserNotFound     = "User not found!"
	msgForbidden        = "You do not have permission to perform this action."
	msgInvalidData      = "Invalid Data!"
	msgBadCredentials   = "No active account found with the given credentials"
	msgInternal         = "Something went wrong..."
)

// fail responde un error con el cuerpo {"detail": "..."}.
func fail(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Detail: detail})
}

// failDomain traduce un error de dominio a su respuesta HTTP. Los errores no
// mapeados se loggean y salen como 500 genérico, sin filtrar la causa.
func failDomain(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrMenuNotFound):
		return fail(c, fiber.StatusNotFound, msgMenuNotFound)
	case errors.Is(err, domain.ErrCategoryNotFound):
		return fail(c, fiber.StatusNotFound, msgCategoryNotFound)
	case errors.Is(err, domain.ErrProductNotFound):
		return fail(c, fiber.StatusNotFound, msgProductNotFound)
	case errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, msgUserNotFound)
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, msgForbidden)
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInactiveAccount):
		return fail(c, fiber.StatusUnauthorized, msgBadCredentials)
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, msgInvalidData)
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
		return fail(c, fiber.StatusInternalServerError, msgInternal)
	}
}
