package usecase

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// UsuarioUseCase reglas de negocio para usuarios y roles.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Listar devuelve los usuarios activos con su rol.
func (uc *UsuarioUseCase) Listar() ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.repo.ListarActivos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		estado := 0
		if u.Estado == entity.EstadoActivo {
			estado = 1
		}
		out = append(out, dto.UsuarioResponse{
			ID:             u.ID,
			NombreCompleto: u.NombreCompleto,
			Email:          u.Email,
			IDRol:          u.IDRol,
			RolNombre:      u.NombreRol,
			Estado:         estado,
			FechaCreacion:  u.FechaCreacion,
			RolPermisos:    u.PermisosRol,
		})
	}
	return out, nil
}

// ListarRoles devuelve los roles activos para el selector del formulario.
func (uc *UsuarioUseCase) ListarRoles() ([]dto.RolResponse, error) {
	roles, err := uc.repo.ListarRolesActivos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RolResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RolResponse{
			ID:          r.ID,
			Nombre:      r.Nombre,
			Descripcion: r.Descripcion,
			Permisos:    r.Permisos,
			Activo:      r.Activo,
		})
	}
	return out, nil
}

// Crear registra un usuario con la contraseña hasheada con bcrypt.
// El email es único entre todos los usuarios, activos o no.
func (uc *UsuarioUseCase) Crear(in dto.CrearUsuarioRequest) (int64, error) {
	if in.NombreCompleto == "" || in.Email == "" || in.Password == "" || in.IDRol == 0 {
		return 0, domain.ErrEntradaInvalida
	}
	enUso, err := uc.repo.EmailEnUso(in.Email, 0)
	if err != nil {
		return 0, err
	}
	if enUso {
		return 0, domain.ErrEmailYaRegistrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("usuario: hashear password: %w", err)
	}
	return uc.repo.Crear(&entity.Usuario{
		NombreCompleto: in.NombreCompleto,
		Email:          in.Email,
		PasswordHash:   string(hash),
		IDRol:          in.IDRol,
		Estado:         entity.EstadoActivo,
	})
}

// Actualizar aplica una actualización parcial: solo los campos presentes en el
// cuerpo cambian. Si llega password se rehashea; si llega email se valida la
// unicidad excluyendo al propio usuario.
func (uc *UsuarioUseCase) Actualizar(id int64, in dto.ActualizarUsuarioRequest) error {
	if in.NombreCompleto == nil && in.Email == nil && in.IDRol == nil && in.Estado == nil && in.Password == nil {
		return domain.ErrEntradaInvalida
	}
	if in.Estado != nil && *in.Estado != entity.EstadoActivo && *in.Estado != entity.EstadoInactivo {
		return domain.ErrEntradaInvalida
	}
	if in.Email != nil {
		enUso, err := uc.repo.EmailEnUso(*in.Email, id)
		if err != nil {
			return err
		}
		if enUso {
			return domain.ErrEmailYaRegistrado
		}
	}
	campos := repository.UsuarioUpdate{
		NombreCompleto: in.NombreCompleto,
		Email:          in.Email,
		IDRol:          in.IDRol,
		Estado:         in.Estado,
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("usuario: hashear password: %w", err)
		}
		h := string(hash)
		campos.PasswordHash = &h
	}
	ok, err := uc.repo.ActualizarParcial(id, campos)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}

// Eliminar marca el usuario como Inactivo.
func (uc *UsuarioUseCase) Eliminar(id int64) error {
	ok, err := uc.repo.SoftDelete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}
