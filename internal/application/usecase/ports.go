package usecase

import "context"

// IconStore define el almacenamiento de íconos. El resize es un paso
// post-commit explícito y secuenciado: lo invoca el caso de uso después de
// persistir, reporta su error y el caller decide (acá: se loggea y no se
// revierte la escritura).
type IconStore interface {
	Save(ctx context.Context, path string, data []byte) error
	ResizeToFit(ctx context.Context, path string, maxWidth, maxHeight int) error
	Remove(ctx context.Context, path string) error
	// URL construye la URL pública absoluta de un ícono almacenado.
	URL(path string) string
}

// Dimensión máxima de un ícono almacenado; por encima se reduce conservando
// la relación de aspecto.
const iconMaxDimension = 512
