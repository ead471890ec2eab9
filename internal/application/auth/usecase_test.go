package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/carta-digital/carta-api/internal/application/auth"
	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/internal/domain"
	"github.com/carta-digital/carta-api/internal/domain/entity"
	"github.com/carta-digital/carta-api/internal/infrastructure/memory"
	pkgjwt "github.com/carta-digital/carta-api/pkg/jwt"
	"github.com/carta-digital/carta-api/pkg/logger"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "contrasena-segura"
)

func testOpts() pkgjwt.Options {
	return pkgjwt.Options{Secret: testSecret, Issuer: "carta-api-test", AccessMinutes: 30, RefreshMinutes: 1440}
}

func newUseCase(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := auth.NewAuthUseCase(store.Users(), store.Menus(), store, testOpts(), logger.Nop())
	return uc, store
}

// seedOwner crea un dueño activo con password conocido.
func seedOwner(t *testing.T, store *memory.Store) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	user := &entity.User{
		ID:           "owner-1",
		Username:     "chef_ramin",
		Email:        "ramin@example.com",
		PhoneNumber:  "+989123456789",
		UserType:     entity.UserTypeOwner,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return user
}

// ──────────────────────────────────────────────────────────────────────────────
// ObtainPair / Login / Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestObtainPair_CredencialesValidas(t *testing.T) {
	uc, store := newUseCase(t)
	seedOwner(t, store)

	out, err := uc.ObtainPair(context.Background(), dto.TokenRequest{Username: "chef_ramin", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Access)
	assert.NotEmpty(t, out.Refresh)

	claims, err := pkgjwt.ParseAccess(testSecret, out.Access)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.UserID)
}

// El username se normaliza a minúsculas antes de autenticar.
func TestObtainPair_UsernameEnMayusculas(t *testing.T) {
	uc, store := newUseCase(t)
	seedOwner(t, store)

	_, err := uc.ObtainPair(context.Background(), dto.TokenRequest{Username: "Chef_Ramin", Password: testPassword})
	assert.NoError(t, err)
}

func TestObtainPair_PasswordIncorrecto(t *testing.T) {
	uc, store := newUseCase(t)
	seedOwner(t, store)

	_, err := uc.ObtainPair(context.Background(), dto.TokenRequest{Username: "chef_ramin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestObtainPair_CuentaInactiva(t *testing.T) {
	uc, store := newUseCase(t)
	user := seedOwner(t, store)
	user.IsActive = false
	require.NoError(t, store.Users().Update(context.Background(), user))

	_, err := uc.ObtainPair(context.Background(), dto.TokenRequest{Username: "chef_ramin", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
}

// El login alterno acepta username, email o teléfono como identificador y
// responde con los campos históricos cct/rft.
func TestLogin_PorEmailYTelefono(t *testing.T) {
	uc, store := newUseCase(t)
	seedOwner(t, store)
	ctx := context.Background()

	for _, identifier := range []string{"chef_ramin", "ramin@example.com", "+989123456789"} {
		out, err := uc.Login(ctx, dto.LoginRequest{Username: identifier, Password: testPassword})
		require.NoError(t, err, "identificador %q", identifier)
		assert.NotEmpty(t, out.CCT)
		assert.NotEmpty(t, out.RFT)
		assert.Equal(t, "Login successful!", out.Message)
	}
}

func TestRefresh_EmiteNuevoAccess(t *testing.T) {
	uc, store := newUseCase(t)
	seedOwner(t, store)
	ctx := context.Background()

	pair, err := uc.ObtainPair(ctx, dto.TokenRequest{Username: "chef_ramin", Password: testPassword})
	require.NoError(t, err)

	out, err := uc.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)

	claims, err := pkgjwt.ParseAccess(testSecret, out.Access)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.UserID)
}

// Un access token no sirve para refrescar.
func TestRefresh_ConAccessToken_Rechazado(t *testing.T) {
	uc, store := newUseCase(t)
	seedOwner(t, store)
	ctx := context.Background()

	pair, err := uc.ObtainPair(ctx, dto.TokenRequest{Username: "chef_ramin", Password: testPassword})
	require.NoError(t, err)

	_, err = uc.Refresh(ctx, pair.Access)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Un refresh válido de un usuario desactivado después de emitirse se rechaza.
func TestRefresh_UsuarioDesactivado_Rechazado(t *testing.T) {
	uc, store := newUseCase(t)
	user := seedOwner(t, store)
	ctx := context.Background()

	pair, err := uc.ObtainPair(ctx, dto.TokenRequest{Username: "chef_ramin", Password: testPassword})
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, store.Users().Update(ctx, user))

	_, err = uc.Refresh(ctx, pair.Refresh)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register: alta atómica de dueño + carta
// ──────────────────────────────────────────────────────────────────────────────

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:    "nuevo_dueno",
		Email:       "nuevo@example.com",
		Password:    "contrasena-segura",
		PhoneNumber: "09123456789",
		MenuName:    "Café del Centro",
	}
}

func TestRegister_CreaDuenoYCarta(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	out, err := uc.Register(ctx, validRegister())
	require.NoError(t, err)

	assert.Equal(t, "nuevo_dueno", out.User.Username)
	require.NotNil(t, out.User.PhoneNumber)
	assert.Equal(t, "+989123456789", *out.User.PhoneNumber, "el teléfono se normaliza a +98")
	assert.Equal(t, "cafe-del-centro", out.Menu.Slug, "el slug se deriva del nombre")

	// ambos persistidos
	user, err := store.Users().GetByUsername(ctx, "nuevo_dueno")
	require.NoError(t, err)
	require.NotNil(t, user)
	menu, err := store.Menus().GetActiveByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, menu)
}

// El teléfono sin prefijo también persiste en la forma canónica +98, de modo
// que un mismo número no pueda existir bajo dos representaciones.
func TestRegister_TelefonoSinPrefijoSeNormaliza(t *testing.T) {
	uc, store := newUseCase(t)
	ctx := context.Background()

	in := validRegister()
	in.PhoneNumber = "9123456789"

	out, err := uc.Register(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, out.User.PhoneNumber)
	assert.Equal(t, "+989123456789", *out.User.PhoneNumber)

	user, err := store.Users().GetByIdentifier(ctx, "+989123456789")
	require.NoError(t, err)
	require.NotNil(t, user, "el número persiste normalizado")
}

func TestRegister_UsernameSeNormaliza(t *testing.T) {
	uc, _ := newUseCase(t)
	in := validRegister()
	in.Username = "Nuevo_Dueno"

	out, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "nuevo_dueno", out.User.Username)
}

func TestRegister_UsernameInvalido(t *testing.T) {
	uc, _ := newUseCase(t)
	in := validRegister()
	in.Username = "con espacio"

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_TelefonoInvalido(t *testing.T) {
	uc, _ := newUseCase(t)
	in := validRegister()
	in.PhoneNumber = "12345"

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, store := newUseCase(t)
	seedOwner(t, store)
	in := validRegister()
	in.Username = "chef_ramin"

	_, err := uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_SlugDeCartaDuplicado(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, validRegister())
	require.NoError(t, err)

	in := validRegister()
	in.Username = "otro_dueno"
	in.Email = "otro@example.com"
	in.PhoneNumber = ""
	// mismo MenuName → mismo slug derivado
	_, err = uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
