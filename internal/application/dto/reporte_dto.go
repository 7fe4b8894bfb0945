package dto

import (
	"encoding/json"
	"time"
)

// SubirReporteRequest cuerpo de POST /api/reportes/upload: PDF generado por
// el SPA, codificado en base64.
type SubirReporteRequest struct {
	Filename           string          `json:"filename"`
	DataBase64         string          `json:"dataBase64"`
	TipoReporte        string          `json:"tipo_reporte,omitempty"`
	IDUsuarioGenerador int64           `json:"id_usuario_generador,omitempty"`
	Parametros         json.RawMessage `json:"parametros,omitempty"`
}

// GenerarReporteRequest cuerpo de POST /api/reportes/generar: el servidor
// renderiza el PDF (listado de inventario o top de salidas) y lo archiva.
type GenerarReporteRequest struct {
	Tipo               string          `json:"tipo"`
	IDUsuarioGenerador int64           `json:"id_usuario_generador,omitempty"`
	Parametros         json.RawMessage `json:"parametros,omitempty"`
}

// ReporteGuardadoResponse respuesta 201 del archivo de reportes.
type ReporteGuardadoResponse struct {
	Mensaje   string `json:"mensaje"`
	IDReporte int64  `json:"id_reporte"`
}

// ReporteResponse metadatos de un reporte archivado (sin el BLOB).
type ReporteResponse struct {
	IDReporte          int64           `json:"id_reporte"`
	TipoReporte        string          `json:"tipo_reporte"`
	IDUsuarioGenerador int64           `json:"id_usuario_generador"`
	Parametros         json.RawMessage `json:"parametros,omitempty"`
	FechaGeneracion    time.Time       `json:"fecha_generacion"`
	NombreArchivo      string          `json:"nombre_archivo"`
	TamanoBytes        int64           `json:"tamaño_bytes"`
}
