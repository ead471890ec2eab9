package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un plato o ítem dentro de una categoría de la carta.
type Product struct {
	ID         string
	CategoryID string // restrict-delete
	Name       string
	Price      decimal.Decimal // decimal fijo (10,2)
	IconPath   string          // ruta relativa en media, vacío si no hay
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
