package dto

// LoginRequest credenciales de entrada.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioPublico perfil que viaja en la respuesta de login (sin credenciales).
type UsuarioPublico struct {
	ID             int64  `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
	Email          string `json:"email"`
	RolNombre      string `json:"rol_nombre"`
}

// LoginResponse token firmado + perfil público.
type LoginResponse struct {
	Token string         `json:"token"`
	User  UsuarioPublico `json:"user"`
}
