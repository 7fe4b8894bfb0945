package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)
var _ repository.TipoMovimientoRepository = (*TipoMovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador de persistencia para movimientos. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Crear inserta el registro del movimiento. Los movimientos son inmutables.
func (r *MovimientoRepo) Crear(m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos_inventario (id_producto, id_tipo_movimiento, cantidad,
			fecha_movimiento, id_usuario_responsable, motivo, lote_afectado, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.IDProducto, m.IDTipoMovimiento, m.Cantidad, m.FechaMovimiento, m.IDUsuarioResponsable,
		nullIfEmpty(m.Motivo), nullIfEmpty(m.LoteAfectado), nullIfEmpty(m.Observaciones))
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// Listar devuelve el historial completo, más recientes primero. afectaStock != ""
// filtra por el efecto del tipo (Incrementa, Decrementa, No_Afecta).
func (r *MovimientoRepo) Listar(afectaStock string) ([]*entity.MovimientoListado, error) {
	query := `
		SELECT m.id_movimiento, m.id_producto, p.nombre_producto, p.codigo_producto,
		       m.id_tipo_movimiento, tm.nombre_tipo, m.cantidad, m.fecha_movimiento,
		       m.id_usuario_responsable, u.nombre_completo,
		       COALESCE(m.motivo, ''), COALESCE(m.lote_afectado, ''), COALESCE(m.observaciones, ''),
		       m.fecha_registro
		FROM movimientos_inventario m
		INNER JOIN productos p ON m.id_producto = p.id_producto
		INNER JOIN tipos_movimiento tm ON m.id_tipo_movimiento = tm.id_tipo_movimiento
		INNER JOIN usuarios u ON m.id_usuario_responsable = u.id_usuario`
	args := []any{}
	if afectaStock != "" {
		query += ` WHERE tm.afecta_stock = $1`
		args = append(args, afectaStock)
	}
	query += ` ORDER BY m.fecha_registro DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoListado
	for rows.Next() {
		var m entity.MovimientoListado
		if err := rows.Scan(&m.ID, &m.IDProducto, &m.NombreProducto, &m.CodigoProducto,
			&m.IDTipoMovimiento, &m.NombreTipo, &m.Cantidad, &m.FechaMovimiento,
			&m.IDUsuarioResponsable, &m.Responsable, &m.Motivo, &m.LoteAfectado,
			&m.Observaciones, &m.FechaRegistro); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// TopSalidas productos con mayor cantidad acumulada en movimientos Decrementa.
// El rango de fechas solo aplica cuando llegan ambos extremos.
func (r *MovimientoRepo) TopSalidas(limit int, desde, hasta *time.Time) ([]*entity.TopSalida, error) {
	query := `
		SELECT p.id_producto, p.codigo_producto, p.nombre_producto, SUM(m.cantidad) AS total_salidas
		FROM movimientos_inventario m
		INNER JOIN productos p ON m.id_producto = p.id_producto
		INNER JOIN tipos_movimiento tm ON m.id_tipo_movimiento = tm.id_tipo_movimiento
		WHERE tm.afecta_stock = 'Decrementa'`
	args := []any{}
	if desde != nil && hasta != nil {
		query += ` AND m.fecha_movimiento BETWEEN $1 AND $2`
		args = append(args, *desde, *hasta)
	}
	query += fmt.Sprintf(`
		GROUP BY p.id_producto, p.codigo_producto, p.nombre_producto
		ORDER BY total_salidas DESC
		LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("top salidas: %w", err)
	}
	defer rows.Close()
	var list []*entity.TopSalida
	for rows.Next() {
		var t entity.TopSalida
		if err := rows.Scan(&t.IDProducto, &t.CodigoProducto, &t.NombreProducto, &t.TotalSalidas); err != nil {
			return nil, fmt.Errorf("scan top salida: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// TipoMovimientoRepo implementación del puerto TipoMovimientoRepository sobre PostgreSQL.
type TipoMovimientoRepo struct {
	q Querier
}

// NewTipoMovimientoRepository construye el adaptador de lectura para tipos de movimiento.
func NewTipoMovimientoRepository(q Querier) *TipoMovimientoRepo {
	return &TipoMovimientoRepo{q: q}
}

// ListarActivos lista los tipos con activo = TRUE, ordenados por nombre.
func (r *TipoMovimientoRepo) ListarActivos() ([]*entity.TipoMovimiento, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id_tipo_movimiento, nombre_tipo, COALESCE(descripcion, ''), afecta_stock, activo
		 FROM tipos_movimiento WHERE activo = TRUE ORDER BY nombre_tipo`)
	if err != nil {
		return nil, fmt.Errorf("list tipos movimiento: %w", err)
	}
	defer rows.Close()
	var list []*entity.TipoMovimiento
	for rows.Next() {
		var t entity.TipoMovimiento
		if err := rows.Scan(&t.ID, &t.Nombre, &t.Descripcion, &t.AfectaStock, &t.Activo); err != nil {
			return nil, fmt.Errorf("scan tipo movimiento: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// GetActivo devuelve el tipo con activo = TRUE (nil si no existe o está desactivado).
func (r *TipoMovimientoRepo) GetActivo(id int64) (*entity.TipoMovimiento, error) {
	var t entity.TipoMovimiento
	err := r.q.QueryRow(context.Background(),
		`SELECT id_tipo_movimiento, nombre_tipo, COALESCE(descripcion, ''), afecta_stock, activo
		 FROM tipos_movimiento WHERE id_tipo_movimiento = $1 AND activo = TRUE`, id).Scan(
		&t.ID, &t.Nombre, &t.Descripcion, &t.AfectaStock, &t.Activo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo movimiento: %w", err)
	}
	return &t, nil
}
