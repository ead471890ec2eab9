package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

// Reglas de formato para campos de usuario. El username va siempre en minúsculas;
// el teléfono acepta el formato iraní local (09...) o internacional (+989...).
var (
	usernameRe = regexp.MustCompile(`^[a-z0-9_]{1,25}$`)
	phoneRe    = regexp.MustCompile(`^(?:\+98|0)?9\d{9}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Validadores propios registrados sobre go-playground/validator.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("iranphone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || phoneRe.MatchString(s)
	})
	return v
}

// Struct valida un DTO según sus tags `validate`.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// ValidUsername indica si el username cumple el formato permitido (ya en minúsculas).
func ValidUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// ValidPhone indica si el teléfono cumple el formato iraní aceptado.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// NormalizePhone normaliza el teléfono al formato internacional +98...
// Acepta las tres variantes válidas: "09123456789", "9123456789" y la que
// ya viene con prefijo "+98". Todas persisten como "+989123456789".
func NormalizePhone(phone string) string {
	switch {
	case strings.HasPrefix(phone, "0"):
		return "+98" + phone[1:]
	case strings.HasPrefix(phone, "9"):
		return "+98" + phone
	}
	return phone
}

// MakeSlug deriva un slug URL-safe a partir de un nombre.
func MakeSlug(name string) string {
	return slug.Make(name)
}
