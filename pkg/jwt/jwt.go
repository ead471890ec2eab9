package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos. El refresh solo sirve para obtener un nuevo access.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añade TokenType para distinguir access de refresh sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"` // "access" | "refresh"
}

// Options parámetros de emisión de tokens.
type Options struct {
	Secret         string
	Issuer         string
	AccessMinutes  int
	RefreshMinutes int
}

// GeneratePair genera el par access/refresh firmado para un usuario.
func GeneratePair(opts Options, userID, username string) (access, refresh string, err error) {
	access, err = generate(opts, userID, username, TokenTypeAccess, opts.AccessMinutes)
	if err != nil {
		return "", "", err
	}
	refresh, err = generate(opts, userID, username, TokenTypeRefresh, opts.RefreshMinutes)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// GenerateAccess genera solo un access token (usado en el refresh).
func GenerateAccess(opts Options, userID, username string) (string, error) {
	return generate(opts, userID, username, TokenTypeAccess, opts.AccessMinutes)
}

func generate(opts Options, userID, username, tokenType string, expMinutes int) (string, error) {
	if opts.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    opts.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(opts.Secret))
}

// Parse valida la firma y expiración del token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// ParseAccess valida el token y exige que sea de tipo access.
func ParseAccess(secret, tokenString string) (*Claims, error) {
	return parseTyped(secret, tokenString, TokenTypeAccess)
}

// ParseRefresh valida el token y exige que sea de tipo refresh.
func ParseRefresh(secret, tokenString string) (*Claims, error) {
	return parseTyped(secret, tokenString, TokenTypeRefresh)
}

func parseTyped(secret, tokenString, wantType string) (*Claims, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("se esperaba token %s, llegó %s", wantType, claims.TokenType)
	}
	return claims, nil
}
