package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/internal/application/usecase"
	"github.com/carta-digital/carta-api/pkg/logger"
	"github.com/carta-digital/carta-api/pkg/validation"
)

// ProductHandler familia del dueño: productos bajo una categoría de "mi carta".
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler de productos del dueño.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Productos de una categoría de mi carta (todos los estados)
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        category_id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.OwnerProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{category_id}/products/ [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.UserContext(), GetPrincipal(c).ID, c.Params("category_id"))
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto bajo una categoría de mi carta
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        category_id  path  string  true  "ID de la categoría"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{category_id}/products/ [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
	out, err := h.uc.CreateMine(c.UserContext(), GetPrincipal(c).ID, c.Params("category_id"), in, icon)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Detalle de un producto de mi carta
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        category_id  path  string  true  "ID de la categoría"
// @Param        product_id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{category_id}/products/{product_id}/ [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetMine(c.UserContext(), GetPrincipal(c).ID, c.Params("category_id"), c.Params("product_id"))
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      PATCH parcial de un producto de mi carta
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        category_id  path  string  true  "ID de la categoría"
// @Param        product_id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/{category_id}/products/{product_id}/ [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
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
	out, err := h.uc.UpdateMine(c.UserContext(), GetPrincipal(c).ID, c.Params("category_id"), c.Params("product_id"), in, icon)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}
