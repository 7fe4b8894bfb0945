package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleMovimiento renglón (producto, cantidad) de un movimiento.
type DetalleMovimiento struct {
	IDProducto   int64           `json:"id_producto"`
	Cantidad     decimal.Decimal `json:"cantidad"`
	LoteAfectado string          `json:"lote_afectado,omitempty"`
}

// RegistrarMovimientoRequest cuerpo de POST /api/movimientos.
type RegistrarMovimientoRequest struct {
	IDTipoMovimiento     int64               `json:"id_tipo_movimiento"`
	FechaMovimiento      string              `json:"fecha_movimiento"`
	IDUsuarioResponsable int64               `json:"id_usuario_responsable"`
	Motivo               string              `json:"motivo"`
	Observaciones        string              `json:"observaciones,omitempty"`
	Detalles             []DetalleMovimiento `json:"detalles"`
}

// MovimientoRegistradoResponse respuesta 201 del registro de movimiento.
type MovimientoRegistradoResponse struct {
	Mensaje            string `json:"mensaje"`
	ProductosAfectados int    `json:"productos_afectados"`
}

// TipoMovimientoResponse fila de GET /api/movimientos/tipos.
type TipoMovimientoResponse struct {
	ID          int64  `json:"id"`
	NombreTipo  string `json:"nombre_tipo"`
	Descripcion string `json:"descripcion"`
	AfectaStock string `json:"afecta_stock"`
}

// MovimientoResponse fila del historial de movimientos.
type MovimientoResponse struct {
	IDMovimiento         int64           `json:"id_movimiento"`
	IDProducto           int64           `json:"id_producto"`
	NombreProducto       string          `json:"nombre_producto"`
	CodigoProducto       string          `json:"codigo_producto"`
	IDTipoMovimiento     int64           `json:"id_tipo_movimiento"`
	TipoMovimiento       string          `json:"tipo_movimiento"`
	Cantidad             decimal.Decimal `json:"cantidad"`
	FechaMovimiento      time.Time       `json:"fecha_movimiento"`
	IDUsuarioResponsable int64           `json:"id_usuario_responsable"`
	Responsable          string          `json:"responsable"`
	Motivo               string          `json:"motivo,omitempty"`
	LoteAfectado         string          `json:"lote_afectado,omitempty"`
	Observaciones        string          `json:"observaciones,omitempty"`
	FechaRegistro        time.Time       `json:"fecha_registro"`
}

// TopSalidaResponse fila de GET /api/movimientos/top-salidas.
type TopSalidaResponse struct {
	IDProducto     int64           `json:"id_producto"`
	CodigoProducto string          `json:"codigo_producto"`
	NombreProducto string          `json:"nombre_producto"`
	TotalSalidas   decimal.Decimal `json:"total_salidas"`
}
