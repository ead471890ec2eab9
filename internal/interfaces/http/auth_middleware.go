package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/carta-digital/carta-api/internal/domain/authz"
	"github.com/carta-digital/carta-api/internal/domain/entity"
	"github.com/carta-digital/carta-api/internal/domain/repository"
	"github.com/carta-digital/carta-api/pkg/jwt"
)

// LocalPrincipal key del usuario autenticado en c.Locals.
const LocalPrincipal = "principal"

// AuthMiddleware valida el Bearer Token de acceso y carga el usuario completo
// a c.Locals. Un token válido de un usuario inexistente o inactivo se rechaza
// igual que un token inválido.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "Authentication credentials were not provided.")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "Invalid token header.")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "Invalid token header.")
		}
		claims, err := jwt.ParseAccess(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "Given token not valid for any token type")
		}
		user, err := users.GetByID(c.UserContext(), claims.UserID)
		if err != nil {
			return fail(c, fiber.StatusInternalServerError, msgInternal)
		}
		if user == nil || !user.IsActive {
			return fail(c, fiber.StatusUnauthorized, "User not found")
		}
		c.Locals(LocalPrincipal, user)
		return c.Next()
	}
}

// PanelMiddleware exige personal autorizado (staff o superusuario) después de
// AuthMiddleware. Las escrituras del panel hacen además su propio chequeo de
// propiedad sobre la carta resuelta.
func PanelMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetPrincipal(c)
		if user == nil || !authz.CanReadPanel(user) {
			return fail(c, fiber.StatusForbidden, msgForbidden)
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el usuario autenticado (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
