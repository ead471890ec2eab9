package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carta-digital/carta-api/internal/application/usecase"
	"github.com/carta-digital/carta-api/pkg/logger"
)

// UserHandler expone el perfil del usuario autenticado.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /users/me/ [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	principal := GetPrincipal(c)
	out, err := h.uc.Me(c.UserContext(), principal.ID)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}
