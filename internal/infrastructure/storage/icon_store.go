// Package storage implementa el almacenamiento de íconos sobre un
// filesystem abstracto (afero): disco en producción, memoria en tests.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"

	"github.com/carta-digital/carta-api/internal/application/usecase"
)

var _ usecase.IconStore = (*IconStore)(nil)

// IconStore guarda íconos bajo un directorio raíz y construye sus URLs públicas.
type IconStore struct {
	fs      afero.Fs
	baseURL string
}

// New construye el store sobre el filesystem dado.
// baseURL es el prefijo público (ej. https://api.example.com/media).
func New(fs afero.Fs, baseURL string) *IconStore {
	return &IconStore{fs: fs, baseURL: strings.TrimRight(baseURL, "/")}
}

// NewOnDisk construye el store sobre disco, enraizado en dir.
func NewOnDisk(dir, baseURL string) *IconStore {
	base := afero.NewBasePathFs(afero.NewOsFs(), dir)
	return New(base, baseURL)
}

// Save escribe el archivo del ícono, creando los directorios intermedios.
func (s *IconStore) Save(ctx context.Context, p string, data []byte) error {
	if err := s.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return fmt.Errorf("mkdir icono: %w", err)
	}
	if err := afero.WriteFile(s.fs, p, data, 0o644); err != nil {
		return fmt.Errorf("guardar icono: %w", err)
	}
	return nil
}

// ResizeToFit reduce el ícono in place si alguna dimensión supera el máximo,
// conservando la relación de aspecto. Si ya cabe, no toca el archivo.
func (s *IconStore) ResizeToFit(ctx context.Context, p string, maxWidth, maxHeight int) error {
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return fmt.Errorf("leer icono: %w", err)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decodificar icono: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth && bounds.Dy() <= maxHeight {
		return nil
	}

	resized := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	var buf bytes.Buffer
	switch format {
	case "png":
		err = imaging.Encode(&buf, resized, imaging.PNG)
	default:
		err = imaging.Encode(&buf, resized, imaging.JPEG)
	}
	if err != nil {
		return fmt.Errorf("codificar icono: %w", err)
	}
	if err := afero.WriteFile(s.fs, p, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("reescribir icono: %w", err)
	}
	return nil
}

// Remove borra el archivo de un ícono reemplazado. Ignorar que no exista.
func (s *IconStore) Remove(ctx context.Context, p string) error {
	err := s.fs.Remove(p)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("borrar icono: %w", err)
	}
	return nil
}

// URL construye la URL pública absoluta del ícono.
func (s *IconStore) URL(p string) string {
	return s.baseURL + "/" + strings.TrimLeft(p, "/")
}
