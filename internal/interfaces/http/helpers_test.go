package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/carta-digital/carta-api/internal/application/auth"
	"github.com/carta-digital/carta-api/internal/application/resolve"
	"github.com/carta-digital/carta-api/internal/application/usecase"
	"github.com/carta-digital/carta-api/internal/domain/entity"
	"github.com/carta-digital/carta-api/internal/infrastructure/memory"
	"github.com/carta-digital/carta-api/internal/infrastructure/storage"
	apphttp "github.com/carta-digital/carta-api/internal/interfaces/http"
	pkgjwt "github.com/carta-digital/carta-api/pkg/jwt"
	"github.com/carta-digital/carta-api/pkg/logger"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func testJWTOpts() pkgjwt.Options {
	return pkgjwt.Options{Secret: testJWTSecret, Issuer: "carta-api-test", AccessMinutes: 30, RefreshMinutes: 1440}
}

// env arma la aplicación completa sobre repos en memoria y un filesystem de
// media en memoria, igual que main pero sin PostgreSQL ni disco.
type env struct {
	app   *fiber.App
	store *memory.Store
	fs    afero.Fs
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	fs := afero.NewMemMapFs()
	icons := storage.New(fs, "http://test/media")
	log := logger.Nop()

	resolver := resolve.New(store.Menus(), store.Categories(), store.Products())
	authUC := auth.NewAuthUseCase(store.Users(), store.Menus(), store, testJWTOpts(), log)
	userUC := usecase.NewUserUseCase(store.Users())
	categoryUC := usecase.NewCategoryUseCase(resolver, store.Categories(), icons, log)
	productUC := usecase.NewProductUseCase(resolver, store.Products(), icons, log)
	panelUC := usecase.NewPanelUseCase(resolver, store.Categories(), categoryUC, icons)
	customerUC := usecase.NewCustomerUseCase(resolver, store.Categories(), store.Products(), icons)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		PanelUC:    panelUC,
		CustomerUC: customerUC,
		Users:      store.Users(),
		JWTSecret:  testJWTSecret,
		Log:        log,
	})
	return &env{app: app, store: store, fs: fs}
}

// seedUser crea un usuario activo con password "secreta123" (bcrypt MinCost
// para no encarecer los tests).
const seededPassword = "secreta123"

var seededHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(seededPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

func (e *env) seedUser(t *testing.T, id, username string, mutate func(*entity.User)) *entity.User {
	t.Helper()
	now := time.Now()
	user := &entity.User{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		UserType:     entity.UserTypeOwner,
		PasswordHash: seededHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if mutate != nil {
		mutate(user)
	}
	require.NoError(t, e.store.Users().Create(context.Background(), user))
	return user
}

func (e *env) seedMenu(t *testing.T, id, ownerID, name, slug string, active bool) *entity.Menu {
	t.Helper()
	now := time.Now()
	menu := &entity.Menu{ID: id, OwnerID: ownerID, Name: name, Slug: slug, IsActive: active, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, e.store.Menus().Create(context.Background(), menu))
	return menu
}

func (e *env) seedCategory(t *testing.T, id, menuID, name, slug string, active bool) *entity.Category {
	t.Helper()
	now := time.Now()
	category := &entity.Category{ID: id, MenuID: menuID, Name: name, Slug: slug, IsActive: active, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, e.store.Categories().Create(context.Background(), category))
	return category
}

func (e *env) seedProduct(t *testing.T, id, categoryID, name string, price string, active bool) *entity.Product {
	t.Helper()
	now := time.Now()
	product := &entity.Product{
		ID: id, CategoryID: categoryID, Name: name,
		Price:    decimal.RequireFromString(price),
		IsActive: active, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, e.store.Products().Create(context.Background(), product))
	return product
}

// bearerFor emite un access token válido para el usuario.
func bearerFor(t *testing.T, user *entity.User) string {
	t.Helper()
	tok, err := pkgjwt.GenerateAccess(testJWTOpts(), user.ID, user.Username)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func (e *env) doJSON(t *testing.T, method, path, bearer string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doMultipart lanza una petición multipart con campos de formulario y un
// archivo "icon" opcional.
func (e *env) doMultipart(t *testing.T, method, path, bearer string, fields map[string]string, iconName string, iconData []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if iconName != "" {
		part, err := w.CreateFormFile("icon", iconName)
		require.NoError(t, err)
		_, err = part.Write(iconData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON de la respuesta en out.
func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// bodyDetail devuelve el campo detail de un cuerpo de error.
func bodyDetail(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, resp, &body)
	return body.Detail
}
