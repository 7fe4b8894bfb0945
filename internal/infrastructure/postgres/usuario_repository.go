package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios y roles.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// ListarActivos lista los usuarios activos con datos de su rol.
func (r *UsuarioRepo) ListarActivos() ([]*entity.UsuarioListado, error) {
	query := `
		SELECT u.id_usuario, u.nombre_completo, u.email, u.id_rol, r.nombre_rol,
		       u.estado, u.fecha_creacion, r.permisos
		FROM usuarios u
		INNER JOIN roles r ON u.id_rol = r.id_rol
		WHERE u.estado = 'Activo'
		ORDER BY u.fecha_creacion DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.UsuarioListado
	for rows.Next() {
		var u entity.UsuarioListado
		if err := rows.Scan(&u.ID, &u.NombreCompleto, &u.Email, &u.IDRol, &u.NombreRol,
			&u.Estado, &u.FechaCreacion, &u.PermisosRol); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ListarRolesActivos lista los roles con activo = TRUE.
func (r *UsuarioRepo) ListarRolesActivos() ([]*entity.Rol, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_rol, nombre_rol, COALESCE(descripcion, ''), permisos, activo
		 FROM roles WHERE activo = TRUE ORDER BY id_rol`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rol
	for rows.Next() {
		var rol entity.Rol
		if err := rows.Scan(&rol.ID, &rol.Nombre, &rol.Descripcion, &rol.Permisos, &rol.Activo); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		list = append(list, &rol)
	}
	return list, rows.Err()
}

// GetByID obtiene un usuario por ID (nil si no existe).
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(),
		`SELECT id_usuario, nombre_completo, email, password_hash, id_rol, estado, fecha_creacion
		 FROM usuarios WHERE id_usuario = $1`, id).Scan(
		&u.ID, &u.NombreCompleto, &u.Email, &u.PasswordHash, &u.IDRol, &u.Estado, &u.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// GetCredencialesPorEmail devuelve el usuario Activo con su rol (nil si no hay).
func (r *UsuarioRepo) GetCredencialesPorEmail(email string) (*entity.CredencialUsuario, error) {
	query := `
		SELECT u.id_usuario, u.nombre_completo, u.email, u.password_hash, u.estado,
		       r.nombre_rol, r.permisos
		FROM usuarios u
		INNER JOIN roles r ON u.id_rol = r.id_rol
		WHERE u.email = $1 AND u.estado = 'Activo'
		LIMIT 1`
	var c entity.CredencialUsuario
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&c.ID, &c.NombreCompleto, &c.Email, &c.PasswordHash, &c.Estado, &c.NombreRol, &c.Permisos)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credenciales: %w", err)
	}
	return &c, nil
}

// EmailEnUso indica si otro usuario (distinto de exceptoID) ya registró el email.
func (r *UsuarioRepo) EmailEnUso(email string, exceptoID int64) (bool, error) {
	var enUso bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1 AND ($2 = 0 OR id_usuario <> $2))`,
		email, exceptoID).Scan(&enUso)
	if err != nil {
		return false, fmt.Errorf("check email en uso: %w", err)
	}
	return enUso, nil
}

// Crear persiste un usuario nuevo y devuelve su id.
func (r *UsuarioRepo) Crear(u *entity.Usuario) (int64, error) {
	query := `
		INSERT INTO usuarios (nombre_completo, email, password_hash, id_rol, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id_usuario`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		u.NombreCompleto, u.Email, u.PasswordHash, u.IDRol, u.Estado).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailYaRegistrado
		}
		return 0, fmt.Errorf("insert usuario: %w", err)
	}
	return id, nil
}

// ActualizarParcial aplica solo los campos no nil, con un statement fijo de
// COALESCE en lugar de armar el SQL por campo.
func (r *UsuarioRepo) ActualizarParcial(id int64, campos repository.UsuarioUpdate) (bool, error) {
	query := `
		UPDATE usuarios SET
			nombre_completo = COALESCE($2, nombre_completo),
			email = COALESCE($3, email),
			id_rol = COALESCE($4, id_rol),
			estado = COALESCE($5, estado),
			password_hash = COALESCE($6, password_hash)
		WHERE id_usuario = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		id, campos.NombreCompleto, campos.Email, campos.IDRol, campos.Estado, campos.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrEmailYaRegistrado
		}
		return false, fmt.Errorf("update usuario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ActualizarPasswordHash persiste el hash migrado (login legacy).
func (r *UsuarioRepo) ActualizarPasswordHash(id int64, hash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET password_hash = $2 WHERE id_usuario = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	return nil
}

// TocarUltimoAcceso fija fecha_ultimo_acceso = now().
func (r *UsuarioRepo) TocarUltimoAcceso(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET fecha_ultimo_acceso = now() WHERE id_usuario = $1`, id)
	if err != nil {
		return fmt.Errorf("update ultimo acceso: %w", err)
	}
	return nil
}

// SoftDelete marca el usuario como Inactivo.
func (r *UsuarioRepo) SoftDelete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET estado = 'Inactivo' WHERE id_usuario = $1`, id)
	if err != nil {
		return false, fmt.Errorf("soft delete usuario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
