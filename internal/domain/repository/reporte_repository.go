package repository

import "github.com/yerbsoft/inventario-api/internal/domain/entity"

// ReporteRepository puerto de persistencia para el archivo de reportes PDF.
type ReporteRepository interface {
	Insertar(r *entity.Reporte) (int64, error)
	Listar(limit int) ([]*entity.ReporteListado, error)
	// ListarUltimos filtra opcionalmente por tipo_reporte y por parametros->>'subtipo'.
	ListarUltimos(limit int, tipo, subtipo string) ([]*entity.ReporteListado, error)
	// GetPDF devuelve el contenido binario para descarga (nil si no existe).
	GetPDF(id int64) (*entity.ReportePDF, error)
}
