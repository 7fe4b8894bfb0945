package entity

import "time"

// Usuario del sistema. PasswordHash es bcrypt salvo en bases antiguas, donde
// puede ser texto plano pendiente de migración (ver application/auth).
type Usuario struct {
	ID             int64
	NombreCompleto string
	Email          string
	PasswordHash   string
	IDRol          int64
	Estado         string // Activo, Inactivo
	FechaCreacion  time.Time
}

// Rol con su payload de permisos (JSON opaco para el backend).
type Rol struct {
	ID          int64
	Nombre      string
	Descripcion string
	Permisos    []byte // JSON
	Activo      bool
}

// CredencialUsuario proyección usuario+rol usada por el login.
type CredencialUsuario struct {
	ID             int64
	NombreCompleto string
	Email          string
	PasswordHash   string
	Estado         string
	NombreRol      string
	Permisos       []byte
}

// UsuarioListado fila del listado de usuarios con datos de rol.
type UsuarioListado struct {
	ID             int64
	NombreCompleto string
	Email          string
	IDRol          int64
	NombreRol      string
	Estado         string
	FechaCreacion  time.Time
	PermisosRol    []byte
}
