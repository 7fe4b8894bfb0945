package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

var _ repository.IncidenciaRepository = (*IncidenciaRepo)(nil)

// IncidenciaRepo implementación del puerto IncidenciaRepository sobre PostgreSQL (usable con pool o tx).
type IncidenciaRepo struct {
	q Querier
}

// NewIncidenciaRepository construye el adaptador de persistencia para incidencias.
func NewIncidenciaRepository(q Querier) *IncidenciaRepo {
	return &IncidenciaRepo{q: q}
}

// ListarTipos lista los tipos de incidencia activos, ordenados por nombre.
func (r *IncidenciaRepo) ListarTipos() ([]*entity.TipoIncidencia, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_tipo_incidencia, nombre_tipo, COALESCE(descripcion, ''), activo
		 FROM tipos_incidencia WHERE activo = TRUE ORDER BY nombre_tipo`)
	if err != nil {
		return nil, fmt.Errorf("list tipos incidencia: %w", err)
	}
	defer rows.Close()
	var list []*entity.TipoIncidencia
	for rows.Next() {
		var t entity.TipoIncidencia
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Descripcion, &t.Activo); err != nil {
			return nil, fmt.Errorf("scan tipo incidencia: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// GetTipoActivo devuelve el tipo con activo = TRUE (nil si no existe o está desactivado).
func (r *IncidenciaRepo) GetTipoActivo(id int64) (*entity.TipoIncidencia, error) {
	var t entity.TipoIncidencia
	err := r.q.QueryRow(context.Background(),
		`SELECT id_tipo_incidencia, nombre_tipo, COALESCE(descripcion, ''), activo
		 FROM tipos_incidencia WHERE id_tipo_incidencia = $1 AND activo = TRUE`, id).Scan(
		&t.ID, &t.Nombre, &t.Descripcion, &t.Activo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo incidencia: %w", err)
	}
	return &t, nil
}

// Listar devuelve el historial con producto y tipo, más recientes primero.
func (r *IncidenciaRepo) Listar(limit int) ([]*entity.IncidenciaListado, error) {
	query := `
		SELECT i.id_incidencia, i.id_producto, p.codigo_producto, p.nombre_producto,
		       COALESCE(p.lote, ''), i.id_tipo_incidencia, t.nombre_tipo, i.cantidad_afectada,
		       i.fecha_incidencia, i.id_usuario_registro, i.descripcion_detallada,
		       COALESCE(i.accion_tomada, ''), i.fecha_registro
		FROM incidencias i
		INNER JOIN productos p ON i.id_producto = p.id_producto
		INNER JOIN tipos_incidencia t ON i.id_tipo_incidencia = t.id_tipo_incidencia
		ORDER BY i.fecha_registro DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list incidencias: %w", err)
	}
	defer rows.Close()
	var list []*entity.IncidenciaListado
	for rows.Next() {
		var i entity.IncidenciaListado
		if err := rows.Scan(&i.ID, &i.IDProducto, &i.CodigoProducto, &i.NombreProducto,
			&i.Lote, &i.IDTipoIncidencia, &i.NombreTipo, &i.CantidadAfectada,
			&i.FechaIncidencia, &i.IDUsuarioRegistro, &i.DescripcionDetallada,
			&i.AccionTomada, &i.FechaRegistro); err != nil {
			return nil, fmt.Errorf("scan incidencia: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Crear inserta la incidencia y devuelve su id. No toca stock.
func (r *IncidenciaRepo) Crear(i *entity.Incidencia) (int64, error) {
	query := `
		INSERT INTO incidencias (id_producto, id_tipo_incidencia, cantidad_afectada,
			fecha_incidencia, id_usuario_registro, descripcion_detallada, accion_tomada)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_incidencia`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		i.IDProducto, i.IDTipoIncidencia, i.CantidadAfectada, i.FechaIncidencia,
		i.IDUsuarioRegistro, i.DescripcionDetallada, nullIfEmpty(i.AccionTomada)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert incidencia: %w", err)
	}
	return id, nil
}
