package entity

import (
	"strings"
	"time"
)

// Tipos de usuario válidos.
const (
	UserTypeAdmin    = "admin"
	UserTypeOwner    = "owner"
	UserTypeCustomer = "customer"
)

// User representa una cuenta del sistema. Un usuario de tipo owner posee a lo
// sumo una carta (relación uno a uno con Menu).
type User struct {
	ID           string
	Username     string // único, siempre en minúsculas
	Email        string // único
	PhoneNumber  string // opcional, único, normalizado a +98...
	FirstName    string
	LastName     string
	UserType     string // admin, owner, customer
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve nombre y apellido separados por espacio, sin bordes.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
