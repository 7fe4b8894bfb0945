package repository

import (
	"github.com/shopspring/decimal"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
)

// ProductoRepository puerto de persistencia para productos.
// La columna stock_actual solo se toca vía GetStockForUpdate + AjustarStock
// dentro de la transacción de movimientos.
type ProductoRepository interface {
	ListarActivos() ([]*entity.ProductoListado, error)
	GetByID(id int64) (*entity.Producto, error)
	Crear(p *entity.Producto) (int64, error)
	// Actualizar modifica los campos editables mientras el producto no esté
	// Inactivo. Devuelve false si no hubo fila afectada. Nunca cambia Estado.
	Actualizar(p *entity.Producto) (bool, error)
	SoftDelete(id int64) (bool, error)
	// GetStockForUpdate bloquea la fila del producto (SELECT FOR UPDATE) y
	// devuelve su stock actual. found=false si el producto no existe.
	GetStockForUpdate(id int64) (stock decimal.Decimal, found bool, err error)
	// AjustarStock aplica stock_actual = stock_actual + delta (delta puede ser negativo).
	AjustarStock(id int64, delta decimal.Decimal) error
}
