package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

var _ repository.MarcaRepository = (*MarcaRepo)(nil)

// MarcaRepo implementación del puerto MarcaRepository sobre PostgreSQL.
type MarcaRepo struct {
	q Querier
}

// NewMarcaRepository construye el adaptador de persistencia para marcas.
func NewMarcaRepository(q Querier) *MarcaRepo {
	return &MarcaRepo{q: q}
}

const marcaColumns = `id_marca, nombre_marca, COALESCE(contacto, ''), COALESCE(telefono, ''),
	COALESCE(email, ''), COALESCE(direccion, ''), activo`

// ListarActivas lista las marcas con activo = TRUE.
func (r *MarcaRepo) ListarActivas() ([]*entity.Marca, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+marcaColumns+` FROM marcas WHERE activo = TRUE ORDER BY id_marca`)
	if err != nil {
		return nil, fmt.Errorf("list marcas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Marca
	for rows.Next() {
		var m entity.Marca
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Contacto, &m.Telefono, &m.Email, &m.Direccion, &m.Activo); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// GetActivaPorNombre busca una marca activa por nombre exacto (nil si no existe).
func (r *MarcaRepo) GetActivaPorNombre(nombre string) (*entity.Marca, error) {
	var m entity.Marca
	err := r.q.QueryRow(context.Background(),
		`SELECT `+marcaColumns+` FROM marcas WHERE nombre_marca = $1 AND activo = TRUE`, nombre).Scan(
		&m.ID, &m.Nombre, &m.Contacto, &m.Telefono, &m.Email, &m.Direccion, &m.Activo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get marca por nombre: %w", err)
	}
	return &m, nil
}

// Crear persiste una marca nueva y devuelve su id.
func (r *MarcaRepo) Crear(m *entity.Marca) (int64, error) {
	var id int64
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO marcas (nombre_marca, contacto, telefono, email, direccion)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id_marca`,
		m.Nombre, nullIfEmpty(m.Contacto), nullIfEmpty(m.Telefono),
		nullIfEmpty(m.Email), nullIfEmpty(m.Direccion)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert marca: %w", err)
	}
	return id, nil
}

// Actualizar modifica una marca mientras activo = TRUE.
func (r *MarcaRepo) Actualizar(m *entity.Marca) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE marcas SET nombre_marca = $2, contacto = $3, telefono = $4, email = $5, direccion = $6
		 WHERE id_marca = $1 AND activo = TRUE`,
		m.ID, m.Nombre, nullIfEmpty(m.Contacto), nullIfEmpty(m.Telefono),
		nullIfEmpty(m.Email), nullIfEmpty(m.Direccion))
	if err != nil {
		return false, fmt.Errorf("update marca: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// SoftDelete pone activo = FALSE.
func (r *MarcaRepo) SoftDelete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE marcas SET activo = FALSE WHERE id_marca = $1`, id)
	if err != nil {
		return false, fmt.Errorf("soft delete marca: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
