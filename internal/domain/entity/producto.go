package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Producto y Usuario.
const (
	EstadoActivo   = "Activo"
	EstadoInactivo = "Inactivo"
)

// Producto representa un producto del inventario. StockActual se modifica
// únicamente dentro de la transacción de movimientos; Estado pasa a Inactivo
// solo por soft delete explícito, nunca automáticamente por quedarse en cero.
type Producto struct {
	ID             int64
	Codigo         string // código único del producto (SKU)
	Nombre         string
	Descripcion    string
	PrecioUnitario decimal.Decimal
	StockActual    decimal.Decimal
	StockMinimo    decimal.Decimal
	IDCategoria    int64
	IDMarca        int64
	Lote           string
	Estado         string // Activo, Inactivo
	FechaCreacion  time.Time
}

// ProductoListado fila del listado de productos con datos de categoría y marca.
type ProductoListado struct {
	Producto
	NombreCategoria string
	NombreMarca     string
}

// EstadoStockDisplay etiqueta de disponibilidad que muestra el dashboard.
func (p *Producto) EstadoStockDisplay() string {
	diez := decimal.NewFromInt(10)
	switch {
	case p.StockActual.GreaterThan(diez):
		return "Disponible"
	case p.StockActual.IsPositive():
		return "Pocas unidades"
	default:
		return "Sin Stock"
	}
}
