package entity

import "time"

// Tipos de reporte permitidos (enum en DB).
const (
	ReporteProductos            = "Reporte_Productos"
	ReporteIncidencia           = "Reporte_Incidencia"
	ReporteProductosMayorSalida = "Reporte_Productos_Mayor_Salida"
)

// Reporte archivo PDF generado, registro archival append-only.
type Reporte struct {
	ID                 int64
	TipoReporte        string
	IDUsuarioGenerador int64
	Parametros         []byte // JSON
	FechaGeneracion    time.Time
	NombreArchivo      string
	ArchivoPDF         []byte
	TipoMIME           string
	TamanoBytes        int64
	HashArchivo        string // sha256 hex
	EstadoGeneracion   string // Completado
}

// ReporteListado metadatos de reporte sin el BLOB.
type ReporteListado struct {
	ID                 int64
	TipoReporte        string
	IDUsuarioGenerador int64
	Parametros         []byte
	FechaGeneracion    time.Time
	NombreArchivo      string
	TamanoBytes        int64
}

// ReportePDF contenido binario para descarga.
type ReportePDF struct {
	NombreArchivo string
	ArchivoPDF    []byte
	TipoMIME      string
	TamanoBytes   int64
}
