package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoIncidenciaResponse fila de GET /api/incidencias/tipos.
type TipoIncidenciaResponse struct {
	ID          int64  `json:"id"`
	NombreTipo  string `json:"nombre_tipo"`
	Descripcion string `json:"descripcion"`
}

// IncidenciaResponse fila del historial de incidencias.
type IncidenciaResponse struct {
	IDIncidencia         int64           `json:"id_incidencia"`
	IDProducto           int64           `json:"id_producto"`
	CodigoProducto       string          `json:"codigo_producto"`
	NombreProducto       string          `json:"nombre_producto"`
	Lote                 string          `json:"lote,omitempty"`
	IDTipoIncidencia     int64           `json:"id_tipo_incidencia"`
	TipoIncidencia       string          `json:"tipo_incidencia"`
	CantidadAfectada     decimal.Decimal `json:"cantidad_afectada"`
	FechaIncidencia      time.Time       `json:"fecha_incidencia"`
	IDUsuarioRegistro    int64           `json:"id_usuario_registro"`
	DescripcionDetallada string          `json:"descripcion_detallada"`
	AccionTomada         string          `json:"accion_tomada,omitempty"`
	FechaRegistro        time.Time       `json:"fecha_registro"`
}

// RegistrarIncidenciaRequest cuerpo de POST /api/incidencias.
type RegistrarIncidenciaRequest struct {
	IDProducto           int64           `json:"id_producto"`
	IDTipoIncidencia     int64           `json:"id_tipo_incidencia"`
	CantidadAfectada     decimal.Decimal `json:"cantidad_afectada"`
	FechaIncidencia      string          `json:"fecha_incidencia"`
	IDUsuarioRegistro    int64           `json:"id_usuario_registro"`
	DescripcionDetallada string          `json:"descripcion_detallada"`
	AccionTomada         string          `json:"accion_tomada,omitempty"`
}
