package entity

import "time"

// Category agrupa productos dentro de una carta. El slug es opcional y único
// solo dentro de su carta, no globalmente.
type Category struct {
	ID        string
	MenuID    string // restrict-delete
	Name      string
	Slug      string // opcional; único por (menu, slug) cuando no está vacío
	IconPath  string // ruta relativa en el almacenamiento de media, vacío si no hay
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
