package storage_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carta-digital/carta-api/internal/infrastructure/storage"
)

// pngBytes genera un PNG sólido de las dimensiones pedidas.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeStored(t *testing.T, fs afero.Fs, path string) image.Image {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestSave_CreaDirectoriosIntermedios(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := storage.New(fs, "http://test/media")

	err := store.Save(context.Background(), "cafe-del-centro/category_icons/cat-1/icono.png", pngBytes(t, 10, 10))
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "cafe-del-centro/category_icons/cat-1/icono.png")
	require.NoError(t, err)
	assert.True(t, exists)
}

// Una imagen 1024×768 debe quedar dentro de 512×512 conservando la relación
// de aspecto (512×384).
func TestResizeToFit_ReduceConservandoAspecto(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := storage.New(fs, "http://test/media")
	ctx := context.Background()

	path := "carta/product_icons/p1/grande.png"
	require.NoError(t, store.Save(ctx, path, pngBytes(t, 1024, 768)))
	require.NoError(t, store.ResizeToFit(ctx, path, 512, 512))

	img := decodeStored(t, fs, path)
	bounds := img.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 512)
	assert.LessOrEqual(t, bounds.Dy(), 512)
	// relación de aspecto 4:3 con tolerancia de redondeo de 1px
	assert.InDelta(t, 384, bounds.Dy(), 1)
	assert.Equal(t, 512, bounds.Dx())
}

// Una imagen que ya cabe no se reescribe.
func TestResizeToFit_ImagenPequenaQuedaIntacta(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := storage.New(fs, "http://test/media")
	ctx := context.Background()

	path := "carta/category_icons/c1/chico.png"
	original := pngBytes(t, 300, 200)
	require.NoError(t, store.Save(ctx, path, original))
	require.NoError(t, store.ResizeToFit(ctx, path, 512, 512))

	stored, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, original, stored, "una imagen dentro del límite no debe tocarse")
}

func TestResizeToFit_ArchivoCorrupto_RetornaError(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := storage.New(fs, "http://test/media")
	ctx := context.Background()

	path := "carta/category_icons/c1/roto.png"
	require.NoError(t, store.Save(ctx, path, []byte("esto no es un png")))
	assert.Error(t, store.ResizeToFit(ctx, path, 512, 512))
}

func TestRemove_ToleraInexistente(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := storage.New(fs, "http://test/media")
	assert.NoError(t, store.Remove(context.Background(), "no/existe.png"))
}

func TestURL_ConstruyeAbsoluta(t *testing.T) {
	store := storage.New(afero.NewMemMapFs(), "http://test/media/")
	assert.Equal(t, "http://test/media/carta/icono.png", store.URL("carta/icono.png"))
	assert.Equal(t, "http://test/media/carta/icono.png", store.URL("/carta/icono.png"))
}
