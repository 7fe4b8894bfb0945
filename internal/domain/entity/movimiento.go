package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores de TipoMovimiento.AfectaStock.
const (
	AfectaIncrementa = "Incrementa"
	AfectaDecrementa = "Decrementa"
	AfectaNoAfecta   = "No_Afecta"
)

// TipoMovimiento datos de referencia inmutables (desactivables por soft delete).
type TipoMovimiento struct {
	ID          int64
	Nombre      string
	Descripcion string
	AfectaStock string // Incrementa, Decrementa, No_Afecta
	Activo      bool
}

// Movimiento registro inmutable de un cambio de stock. Se crea únicamente
// dentro de la transacción de inventario; nunca se actualiza ni se borra.
type Movimiento struct {
	ID                   int64
	IDProducto           int64
	IDTipoMovimiento     int64
	Cantidad             decimal.Decimal
	FechaMovimiento      time.Time
	IDUsuarioResponsable int64
	Motivo               string
	LoteAfectado         string
	Observaciones        string
	FechaRegistro        time.Time
}

// MovimientoListado fila del historial con producto, tipo y responsable.
type MovimientoListado struct {
	Movimiento
	NombreProducto string
	CodigoProducto string
	NombreTipo     string
	Responsable    string
}

// TopSalida producto con mayor cantidad acumulada de salidas.
type TopSalida struct {
	IDProducto     int64
	CodigoProducto string
	NombreProducto string
	TotalSalidas   decimal.Decimal
}
