package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoIncidencia datos de referencia (soft delete vía Activo).
type TipoIncidencia struct {
	ID          int64
	Nombre      string
	Descripcion string
	Activo      bool
}

// Incidencia registro append-only sobre un producto. No afecta stock.
type Incidencia struct {
	ID                   int64
	IDProducto           int64
	IDTipoIncidencia     int64
	CantidadAfectada     decimal.Decimal
	FechaIncidencia      time.Time
	IDUsuarioRegistro    int64
	DescripcionDetallada string
	AccionTomada         string
	FechaRegistro        time.Time
}

// IncidenciaListado fila del historial con producto y tipo.
type IncidenciaListado struct {
	Incidencia
	CodigoProducto string
	NombreProducto string
	Lote           string
	NombreTipo     string
}
