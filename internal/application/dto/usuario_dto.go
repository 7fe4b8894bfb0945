package dto

import (
	"encoding/json"
	"time"
)

// UsuarioResponse fila de GET /api/usuarios (con datos de rol).
type UsuarioResponse struct {
	ID             int64           `json:"id"`
	NombreCompleto string          `json:"nombre_completo"`
	Email          string          `json:"email"`
	IDRol          int64           `json:"id_rol"`
	RolNombre      string          `json:"rol_nombre"`
	Estado         int             `json:"estado"` // 1 = Activo, 0 = Inactivo
	FechaCreacion  time.Time       `json:"fecha_creacion"`
	RolPermisos    json.RawMessage `json:"rol_permisos,omitempty"`
}

// RolResponse fila de GET /api/usuarios/roles.
type RolResponse struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Permisos    json.RawMessage `json:"permisos,omitempty"`
	Activo      bool            `json:"activo"`
}

// CrearUsuarioRequest cuerpo de POST /api/usuarios. Todos los campos obligatorios.
type CrearUsuarioRequest struct {
	NombreCompleto string `json:"nombre_completo"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	IDRol          int64  `json:"id_rol"`
}

// ActualizarUsuarioRequest actualización parcial: los campos ausentes no se tocan.
type ActualizarUsuarioRequest struct {
	NombreCompleto *string `json:"nombre_completo,omitempty"`
	Email          *string `json:"email,omitempty"`
	IDRol          *int64  `json:"id_rol,omitempty"`
	Estado         *string `json:"estado,omitempty"`
	Password       *string `json:"password,omitempty"`
}
