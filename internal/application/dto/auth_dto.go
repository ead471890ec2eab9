package dto

// TokenRequest entrada para obtener el par de tokens (username + password estrictos).
type TokenRequest struct {
	Username string `json:"username" validate:"required,min=1,max=25"`
	Password string `json:"password" validate:"required,min=1"`
}

// TokenPairResponse salida del endpoint de tokens.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest entrada para renovar el access token.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshResponse salida con el nuevo access token.
type RefreshResponse struct {
	Access string `json:"access"`
}

// LoginRequest entrada del login alterno: el username acepta también email o teléfono.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=30"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginResponse salida del login alterno. cct/rft son los nombres de campo
// históricos del cliente (access y refresh).
type LoginResponse struct {
	CCT     string `json:"cct"`
	RFT     string `json:"rft"`
	Message string `json:"message"`
}

// RegisterRequest alta de un dueño con su carta en una sola operación atómica.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,username"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,iranphone"`
	FirstName   string `json:"firstName" validate:"omitempty,max=30"`
	LastName    string `json:"lastName" validate:"omitempty,max=30"`

	MenuName        string `json:"menuName" validate:"required,min=1,max=255"`
	MenuSlug        string `json:"menuSlug" validate:"omitempty,max=255"`
	MenuDescription string `json:"menuDescription" validate:"omitempty,max=255"`
	MenuAddress     string `json:"menuAddress" validate:"omitempty,max=255"`
}

// RegisterResponse salida del alta: usuario y carta creados.
type RegisterResponse struct {
	User UserResponse `json:"user"`
	Menu MenuResponse `json:"menu"`
}
