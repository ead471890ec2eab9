package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/internal/application/usecase"
	"github.com/carta-digital/carta-api/pkg/logger"
	"github.com/carta-digital/carta-api/pkg/validation"
)

// CategoryHandler familia del dueño: categorías de "mi carta activa".
// La carta nunca viaja en la ruta; se resuelve por el usuario autenticado.
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log *logger.Logger
}

// NewCategoryHandler construye el handler de categorías del dueño.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Categorías de mi carta (todos los estados)
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.OwnerCategoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/ [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.UserContext(), GetPrincipal(c).ID)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría en mi carta
// @Tags         categories
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/ [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
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
	out, err := h.uc.CreateMine(c.UserContext(), GetPrincipal(c).ID, in, icon)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Detalle de una categoría de mi carta
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        category_id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{category_id}/ [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetMine(c.UserContext(), GetPrincipal(c).ID, c.Params("category_id"))
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      PATCH parcial de una categoría de mi carta
// @Tags         categories
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        category_id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{category_id}/ [patch]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
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
	out, err := h.uc.UpdateMine(c.UserContext(), GetPrincipal(c).ID, c.Params("category_id"), in, icon)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}
