package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/pkg/validation"
)

// formIcon extrae el archivo "icon" de una petición multipart. Devuelve
// (nil, nil) cuando la petición no es multipart o no trae el archivo; el
// campo es siempre opcional. El tamaño se valida antes de leer el contenido
// para no copiar archivos fuera de límite a memoria.
func formIcon(c *fiber.Ctx) (*dto.IconUpload, error) {
	header, err := c.FormFile("icon")
	if err != nil {
		return nil, nil
	}
	if err := validation.ValidateIcon(header.Filename, header.Size); err != nil {
		return nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &dto.IconUpload{Filename: header.Filename, Size: header.Size, Data: data}, nil
}
