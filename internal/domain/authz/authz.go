// Package authz concentra las decisiones de autorización y visibilidad que
// antes vivían dispersas en cada endpoint: predicados puros (principal, entidad)
// y la política de qué estados is_active ve cada familia de endpoints.
package authz

import "github.com/carta-digital/carta-api/internal/domain/entity"

// Scope identifica la familia de endpoints que origina una consulta.
type Scope int

const (
	// ScopeOwner gestión del dueño sobre su propia carta ("mi carta activa").
	ScopeOwner Scope = iota
	// ScopeStaff panel elevado direccionado por slug (solo staff).
	ScopeStaff
	// ScopeCustomer consulta pública anónima por slug.
	ScopeCustomer
)

// CategoryListActiveOnly indica si el listado de categorías filtra is_active.
// El dueño ve todos los estados para poder reactivar lo deshabilitado;
// el cliente nunca ve lo inactivo.
func (s Scope) CategoryListActiveOnly() bool {
	return s == ScopeStaff || s == ScopeCustomer
}

// CategoryDetailActiveOnly indica si el detalle de categoría filtra is_active.
// El panel staff lee cualquier estado en el detalle.
func (s Scope) CategoryDetailActiveOnly() bool {
	return s == ScopeCustomer
}

// ProductsActiveOnly indica si los productos se filtran por is_active.
// Solo la familia pública los filtra (llegan vía el detalle anidado).
func (s Scope) ProductsActiveOnly() bool {
	return s == ScopeCustomer
}

// CanManageMenu decide si el principal puede mutar la carta: es su dueño o superusuario.
func CanManageMenu(u *entity.User, m *entity.Menu) bool {
	if u == nil || m == nil {
		return false
	}
	return u.IsSuperuser || u.ID == m.OwnerID
}

// CanReadPanel decide si el principal puede leer el panel elevado.
func CanReadPanel(u *entity.User) bool {
	if u == nil {
		return false
	}
	return u.IsStaff || u.IsSuperuser
}

// CanOwnMenu decide si el usuario puede ser dueño de una carta.
// Se valida en la capa de aplicación, no en la base de datos: una escritura
// directa que salte esta validación puede violar el invariante.
func CanOwnMenu(u *entity.User) bool {
	if u == nil {
		return false
	}
	return u.UserType == entity.UserTypeOwner || u.IsSuperuser
}
