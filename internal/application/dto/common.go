package dto

// ErrorResponse cuerpo de error HTTP. Todos los errores del API usan esta
// forma: {"detail": "<mensaje>"}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// IconUpload ícono recibido por multipart, ya leído en memoria.
// Size va aparte porque la validación de tamaño se hace antes de copiar.
type IconUpload struct {
	Filename string
	Size     int64
	Data     []byte
}
