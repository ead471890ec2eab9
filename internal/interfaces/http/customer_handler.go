package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carta-digital/carta-api/internal/application/usecase"
	"github.com/carta-digital/carta-api/pkg/logger"
)

// CustomerHandler familia pública: la carta que ve el comensal. Sin auth;
// solo entidades activas son visibles.
type CustomerHandler struct {
	uc  *usecase.CustomerUseCase
	log *logger.Logger
}

// NewCustomerHandler construye el handler público.
func NewCustomerHandler(uc *usecase.CustomerUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// ListCategories godoc
// @Summary      Categorías activas de una carta publicada
// @Tags         public
// @Produce      json
// @Param        menu_slug  path  string  true  "Slug de la carta"
// @Success      200  {array}   dto.CustomerCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /menus/{menu_slug}/ [get]
func (h *CustomerHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext(), c.Params("menu_slug"))
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}

// GetCategory godoc
// @Summary      Detalle público de una categoría con sus productos activos
// @Tags         public
// @Produce      json
// @Param        menu_slug    path  string  true  "Slug de la carta"
// @Param        category_id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CustomerCategoryDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /menus/{menu_slug}/{category_id}/ [get]
func (h *CustomerHandler) GetCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetCategory(c.UserContext(), c.Params("menu_slug"), c.Params("category_id"))
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}
