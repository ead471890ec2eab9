package entity

import "time"

// Menu representa la carta publicada de un restaurante. El slug se deriva del
// nombre al crearla y no se regenera nunca, aunque el nombre cambie.
type Menu struct {
	ID          string
	OwnerID     string // relación uno a uno con User (restrict-delete)
	Name        string
	Slug        string // único global, direccionamiento público
	Description string
	Address     string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
