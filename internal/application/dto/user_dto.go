package dto

import (
	"time"

	"github.com/carta-digital/carta-api/internal/domain/entity"
)

// UserResponse perfil del usuario autenticado. Los nombres de campo van en
// camelCase en el wire (phoneNumber, firstName...), sin password.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	PhoneNumber *string   `json:"phoneNumber"`
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	IsStaff     bool      `json:"isStaff"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewUserResponse construye el perfil camelCase a partir de la entidad.
// Es el único mapeo del contrato de perfil: lo comparten auth y usecase.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		PhoneNumber: optionalString(u.PhoneNumber),
		FirstName:   optionalString(u.FirstName),
		LastName:    optionalString(u.LastName),
		IsStaff:     u.IsStaff,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
