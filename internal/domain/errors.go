package domain

import "errors"

// Errores de dominio (sin dependencias externas). La resolución jerárquica
// carta → categoría → producto corta en el primer nivel que falla y reporta
// el error de ESE nivel, nunca uno más profundo.
var (
	ErrMenuNotFound     = errors.New("carta no encontrada")
	ErrCategoryNotFound = errors.New("categoría no encontrada")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrInactiveAccount  = errors.New("cuenta inactiva")
	ErrConflict         = errors.New("conflicto con el estado actual")
)
