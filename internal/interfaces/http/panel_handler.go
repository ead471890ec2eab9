package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/internal/application/usecase"
	"github.com/carta-digital/carta-api/pkg/logger"
	"github.com/carta-digital/carta-api/pkg/validation"
)

// PanelHandler familia de administración: direccionada por slug de carta.
// La lectura es para todo el staff; la escritura exige dueño o superusuario y
// ese chequeo corre DESPUÉS de resolver la jerarquía, así un recurso
// inexistente responde 404 y no 403.
type PanelHandler struct {
	uc  *usecase.PanelUseCase
	log *logger.Logger
}

// NewPanelHandler construye el handler del panel.
func NewPanelHandler(uc *usecase.PanelUseCase, log *logger.Logger) *PanelHandler {
	return &PanelHandler{uc: uc, log: log}
}

// ListCategories godoc
// @Summary      Categorías activas de una carta (panel)
// @Tags         panel
// @Produce      json
// @Security     BearerAuth
// @Param        menu_slug  path  string  true  "Slug de la carta"
// @Success      200  {array}   dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /panel/{menu_slug}/categories/ [get]
func (h *PanelHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext(), c.Params("menu_slug"))
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateCategory godoc
// @Summary      Crear categoría en una carta (panel)
// @Tags         panel
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        menu_slug  path  string  true  "Slug de la carta"
// @Success      201  {object}  dto.CategoryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /panel/{menu_slug}/categories/ [post]
func (h *PanelHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	if err := validation.Struct(in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	icon, err := formIcon(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	out, err := h.uc.CreateCategory(c.UserContext(), GetPrincipal(c), c.Params("menu_slug"), in, icon)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetCategory godoc
// @Summary      Detalle de una categoría (panel, cualquier estado)
// @Tags         panel
// @Produce      json
// @Security     BearerAuth
// @Param        menu_slug    path  string  true  "Slug de la carta"
// @Param        category_id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /panel/{menu_slug}/categories/{category_id}/ [get]
func (h *PanelHandler) GetCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetCategory(c.UserContext(), c.Params("menu_slug"), c.Params("category_id"))
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateCategory godoc
// @Summary      PATCH parcial de una categoría (panel)
// @Tags         panel
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        menu_slug    path  string  true  "Slug de la carta"
// @Param        category_id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /panel/{menu_slug}/categories/{category_id}/ [patch]
func (h *PanelHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	if err := validation.Struct(in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	icon, err := formIcon(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	out, err := h.uc.UpdateCategory(c.UserContext(), GetPrincipal(c), c.Params("menu_slug"), c.Params("category_id"), in, icon)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}
