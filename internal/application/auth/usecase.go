package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/carta-digital/carta-api/internal/application/dto"
	"github.com/carta-digital/carta-api/internal/domain"
	"github.com/carta-digital/carta-api/internal/domain/authz"
	"github.com/carta-digital/carta-api/internal/domain/entity"
	"github.com/carta-digital/carta-api/internal/domain/repository"
	"github.com/carta-digital/carta-api/pkg/jwt"
	"github.com/carta-digital/carta-api/pkg/logger"
	"github.com/carta-digital/carta-api/pkg/validation"
)

// AuthUseCase casos de uso de autenticación: emisión de tokens, login alterno,
// refresh y alta de dueño con su carta.
type AuthUseCase struct {
	users  repository.UserRepository
	menus  repository.MenuRepository
	tx     TxRunner
	jwtOpt jwt.Options
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, menus repository.MenuRepository, tx TxRunner, jwtOpt jwt.Options, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, menus: menus, tx: tx, jwtOpt: jwtOpt, log: log}
}

// ObtainPair verifica username/password y emite el par access/refresh.
func (uc *AuthUseCase) ObtainPair(ctx context.Context, in dto.TokenRequest) (*dto.TokenPairResponse, error) {
	user, err := uc.authenticate(ctx, strings.ToLower(in.Username), in.Password)
	if err != nil {
		return nil, err
	}
	access, refresh, err := jwt.GeneratePair(uc.jwtOpt, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

// Login alterno: el identificador puede ser username, email o teléfono.
// Devuelve los campos históricos cct/rft que espera el cliente.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.authenticateByIdentifier(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	access, refresh, err := jwt.GeneratePair(uc.jwtOpt, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{CCT: access, RFT: refresh, Message: "Login successful!"}, nil
}

// Refresh valida el refresh token y emite un nuevo access. Exige que el
// usuario siga existiendo y activo.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := jwt.ParseRefresh(uc.jwtOpt.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.GenerateAccess(uc.jwtOpt, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Access: access}, nil
}

// Register crea un dueño y su carta en una sola transacción. El slug de la
// carta se deriva del nombre si no viene y no se regenera después.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	username := strings.ToLower(in.Username)
	if !validation.ValidUsername(username) {
		return nil, domain.ErrInvalidInput
	}
	phone := in.PhoneNumber
	if phone != "" {
		if !validation.ValidPhone(phone) {
			return nil, domain.ErrInvalidInput
		}
		phone = validation.NormalizePhone(phone)
	}

	if existing, err := uc.users.GetByIdentifier(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.users.GetByIdentifier(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	menuSlug := in.MenuSlug
	if menuSlug == "" {
		menuSlug = validation.MakeSlug(in.MenuName)
	}
	if existing, err := uc.menus.GetBySlug(ctx, menuSlug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        in.Email,
		PhoneNumber:  phone,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		UserType:     entity.UserTypeOwner,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Invariante de propiedad de carta: se valida acá, en la capa de
	// aplicación; la base no lo impone.
	if !authz.CanOwnMenu(user) {
		return nil, domain.ErrForbidden
	}
	menu := &entity.Menu{
		ID:          uuid.New().String(),
		OwnerID:     user.ID,
		Name:        in.MenuName,
		Slug:        menuSlug,
		Description: in.MenuDescription,
		Address:     in.MenuAddress,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.tx.RunOwnerSignup(ctx, func(users repository.UserRepository, menus repository.MenuRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return menus.Create(ctx, menu)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("username", user.Username).Str("menu_slug", menu.Slug).Msg("dueño registrado con su carta")
	return &dto.RegisterResponse{User: *dto.NewUserResponse(user), Menu: *toMenuResponse(menu)}, nil
}

// authenticate verifica credenciales por username exacto.
func (uc *AuthUseCase) authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return uc.checkCredentials(user, username, password)
}

// authenticateByIdentifier verifica credenciales por username, email o teléfono.
func (uc *AuthUseCase) authenticateByIdentifier(ctx context.Context, identifier, password string) (*entity.User, error) {
	user, err := uc.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return uc.checkCredentials(user, identifier, password)
}

func (uc *AuthUseCase) checkCredentials(user *entity.User, identifier, password string) (*entity.User, error) {
	if user == nil {
		uc.log.Warn().Str("identifier", identifier).Msg("intento de login fallido")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		uc.log.Warn().Str("identifier", identifier).Msg("intento de login fallido")
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveAccount
	}
	uc.log.Info().Str("username", user.Username).Msg("login exitoso")
	return user, nil
}

func toMenuResponse(m *entity.Menu) *dto.MenuResponse {
	if m == nil {
		return nil
	}
	return &dto.MenuResponse{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Address:     m.Address,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
