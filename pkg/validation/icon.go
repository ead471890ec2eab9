package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Límites para íconos subidos (categorías y productos).
const (
	IconMaxBytes = 1 * 1024 * 1024 // 1 MiB exacto; 1.048.576 bytes pasa, un byte más no
)

var iconExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateIcon verifica extensión y tamaño de un ícono antes de persistirlo.
// La extensión se compara en minúsculas; el contenido no se inspecciona.
func ValidateIcon(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !iconExtensions[ext] {
		return fmt.Errorf("extensión no soportada %q: se acepta jpg, jpeg o png", ext)
	}
	if size > IconMaxBytes {
		return fmt.Errorf("ícono demasiado grande (%d bytes, máximo %d)", size, IconMaxBytes)
	}
	return nil
}
