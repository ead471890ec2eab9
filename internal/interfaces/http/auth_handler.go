package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carta-digital/carta-api/internal/application/auth"
	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/pkg/logger"
	"github.com/carta-digital/carta-api/pkg/validation"
)

// AuthHandler maneja tokens, login y registro.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Token godoc
// @Summary      Obtener par de tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "username, password"
// @Success      200   {object}  dto.TokenPairResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/token/ [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	if err := validation.Struct(in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	out, err := h.uc.ObtainPair(c.UserContext(), in)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Renovar access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "refresh"
// @Success      200   {object}  dto.RefreshResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/token/refresh/ [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	if in.Refresh == "" {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	out, err := h.uc.Refresh(c.UserContext(), in.Refresh)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Login alterno (username, email o teléfono)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username (o email o teléfono), password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login/ [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	if in.Username == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Alta de dueño con su carta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "datos del dueño y su carta"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/register/ [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	if err := validation.Struct(in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidData)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return failDomain(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
