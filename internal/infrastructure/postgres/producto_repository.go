package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// ListarActivos lista los productos activos con su categoría y marca.
func (r *ProductoRepo) ListarActivos() ([]*entity.ProductoListado, error) {
	query := `
		SELECT p.id_producto, p.codigo_producto, p.nombre_producto, COALESCE(p.descripcion, ''),
		       p.precio_unitario, p.stock_actual, p.stock_minimo, p.id_categoria, p.id_marca,
		       COALESCE(p.lote, ''), p.estado, p.fecha_creacion,
		       c.nombre_categoria, m.nombre_marca
		FROM productos p
		INNER JOIN categorias c ON p.id_categoria = c.id_categoria
		INNER JOIN marcas m ON p.id_marca = m.id_marca
		WHERE p.estado = 'Activo'
		ORDER BY p.id_producto`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductoListado
	for rows.Next() {
		var p entity.ProductoListado
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.PrecioUnitario,
			&p.StockActual, &p.StockMinimo, &p.IDCategoria, &p.IDMarca, &p.Lote, &p.Estado,
			&p.FechaCreacion, &p.NombreCategoria, &p.NombreMarca); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID (nil si no existe).
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `
		SELECT id_producto, codigo_producto, nombre_producto, COALESCE(descripcion, ''),
		       precio_unitario, stock_actual, stock_minimo, id_categoria, id_marca,
		       COALESCE(lote, ''), estado, fecha_creacion
		FROM productos WHERE id_producto = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.PrecioUnitario, &p.StockActual,
		&p.StockMinimo, &p.IDCategoria, &p.IDMarca, &p.Lote, &p.Estado, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Crear persiste un producto nuevo y devuelve su id.
func (r *ProductoRepo) Crear(p *entity.Producto) (int64, error) {
	query := `
		INSERT INTO productos (codigo_producto, nombre_producto, descripcion, precio_unitario,
			stock_actual, stock_minimo, id_categoria, id_marca, estado, lote)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id_producto`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		p.Codigo, p.Nombre, nullIfEmpty(p.Descripcion), p.PrecioUnitario,
		p.StockActual, p.StockMinimo, p.IDCategoria, p.IDMarca, p.Estado, p.Lote,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert producto: %w", err)
	}
	return id, nil
}

// Actualizar modifica los campos editables mientras el producto no esté Inactivo.
// No toca estado ni fecha_creacion; la baja va por SoftDelete.
func (r *ProductoRepo) Actualizar(p *entity.Producto) (bool, error) {
	query := `
		UPDATE productos SET codigo_producto = $2, nombre_producto = $3, descripcion = $4,
			precio_unitario = $5, stock_actual = $6, stock_minimo = $7, id_categoria = $8, id_marca = $9
		WHERE id_producto = $1 AND estado <> 'Inactivo'`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, nullIfEmpty(p.Descripcion), p.PrecioUnitario,
		p.StockActual, p.StockMinimo, p.IDCategoria, p.IDMarca,
	)
	if err != nil {
		return false, fmt.Errorf("update producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// SoftDelete marca el producto como Inactivo.
func (r *ProductoRepo) SoftDelete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET estado = 'Inactivo' WHERE id_producto = $1`, id)
	if err != nil {
		return false, fmt.Errorf("soft delete producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// GetStockForUpdate bloquea la fila del producto dentro de la tx y devuelve su stock.
func (r *ProductoRepo) GetStockForUpdate(id int64) (decimal.Decimal, bool, error) {
	var stock decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT stock_actual FROM productos WHERE id_producto = $1 FOR UPDATE`, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("lock stock producto: %w", err)
	}
	return stock, true, nil
}

// AjustarStock aplica el delta sobre stock_actual (positivo o negativo).
func (r *ProductoRepo) AjustarStock(id int64, delta decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = stock_actual + $2 WHERE id_producto = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("ajustar stock producto: %w", err)
	}
	return nil
}
