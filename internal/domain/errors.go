package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado           = errors.New("recurso no encontrado")
	ErrEntradaInvalida        = errors.New("entrada inválida")
	ErrEmailYaRegistrado      = errors.New("el email ya está registrado")
	ErrCredencialesInvalidas  = errors.New("credenciales inválidas")
	ErrTipoMovimientoInvalido = errors.New("tipo de movimiento no válido")
	ErrDetalleInvalido        = errors.New("detalle de movimiento inválido")
	ErrMarcaNoEncontrada      = errors.New("marca no encontrada o inactiva")
	ErrTipoIncidenciaInvalido = errors.New("tipo de incidencia no válido")
	ErrUsuarioInvalido        = errors.New("usuario no válido")
)

// ProductoNoEncontradoError identifica qué producto de un movimiento no existe.
type ProductoNoEncontradoError struct {
	ProductoID int64
}

func (e *ProductoNoEncontradoError) Error() string {
	return fmt.Sprintf("Producto %d no encontrado", e.ProductoID)
}

// StockInsuficienteError identifica qué producto no tiene stock suficiente
// para la cantidad solicitada.
type StockInsuficienteError struct {
	ProductoID int64
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("Stock insuficiente para el producto %d", e.ProductoID)
}
