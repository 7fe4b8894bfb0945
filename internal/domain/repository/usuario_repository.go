package repository

import "github.com/yerbsoft/inventario-api/internal/domain/entity"

// UsuarioUpdate actualización parcial estructurada: los campos nil no se tocan.
// Reemplaza la construcción dinámica de queries por campo.
type UsuarioUpdate struct {
	NombreCompleto *string
	Email          *string
	IDRol          *int64
	Estado         *string
	PasswordHash   *string
}

// UsuarioRepository puerto de persistencia para usuarios y roles.
type UsuarioRepository interface {
	ListarActivos() ([]*entity.UsuarioListado, error)
	ListarRolesActivos() ([]*entity.Rol, error)
	GetByID(id int64) (*entity.Usuario, error)
	// GetCredencialesPorEmail devuelve el usuario Activo con su rol (nil si no hay).
	GetCredencialesPorEmail(email string) (*entity.CredencialUsuario, error)
	// EmailEnUso indica si otro usuario (distinto de exceptoID) ya registró el email.
	// exceptoID = 0 consulta sin exclusión.
	EmailEnUso(email string, exceptoID int64) (bool, error)
	Crear(u *entity.Usuario) (int64, error)
	ActualizarParcial(id int64, campos UsuarioUpdate) (bool, error)
	// ActualizarPasswordHash persiste el hash migrado (usado por el login legacy).
	ActualizarPasswordHash(id int64, hash string) error
	// TocarUltimoAcceso fija fecha_ultimo_acceso = now().
	TocarUltimoAcceso(id int64) error
	SoftDelete(id int64) (bool, error)
}
