package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo implementación del puerto ReporteRepository sobre PostgreSQL.
// El PDF vive como BYTEA en la misma tabla; los listados nunca lo traen.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador de persistencia para reportes.
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// Insertar archiva el reporte y devuelve su id.
func (r *ReporteRepo) Insertar(rep *entity.Reporte) (int64, error) {
	query := `
		INSERT INTO reportes (tipo_reporte, id_usuario_generador, parametros, nombre_archivo,
			archivo_pdf, tipo_mime, tamaño_bytes, hash_archivo, estado_generacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id_reporte`
	var parametros any
	if len(rep.Parametros) > 0 {
		parametros = rep.Parametros
	}
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		rep.TipoReporte, rep.IDUsuarioGenerador, parametros, rep.NombreArchivo,
		rep.ArchivoPDF, rep.TipoMIME, rep.TamanoBytes, rep.HashArchivo, rep.EstadoGeneracion).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert reporte: %w", err)
	}
	return id, nil
}

const reporteListColumns = `id_reporte, tipo_reporte, id_usuario_generador, parametros,
	fecha_generacion, nombre_archivo, tamaño_bytes`

// Listar devuelve los metadatos más recientes.
func (r *ReporteRepo) Listar(limit int) ([]*entity.ReporteListado, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+reporteListColumns+` FROM reportes ORDER BY fecha_generacion DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list reportes: %w", err)
	}
	defer rows.Close()
	return scanReportes(rows)
}

// ListarUltimos filtra opcionalmente por tipo_reporte y por parametros->>'subtipo'.
func (r *ReporteRepo) ListarUltimos(limit int, tipo, subtipo string) ([]*entity.ReporteListado, error) {
	query := `SELECT ` + reporteListColumns + ` FROM reportes WHERE 1=1`
	args := []any{}
	if tipo != "" {
		args = append(args, tipo)
		query += fmt.Sprintf(` AND tipo_reporte = $%d`, len(args))
	}
	if subtipo != "" {
		args = append(args, subtipo)
		query += fmt.Sprintf(` AND parametros->>'subtipo' = $%d`, len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY fecha_generacion DESC LIMIT $%d`, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ultimos reportes: %w", err)
	}
	defer rows.Close()
	return scanReportes(rows)
}

func scanReportes(rows pgx.Rows) ([]*entity.ReporteListado, error) {
	var list []*entity.ReporteListado
	for rows.Next() {
		var rep entity.ReporteListado
		if err := rows.Scan(&rep.ID, &rep.TipoReporte, &rep.IDUsuarioGenerador, &rep.Parametros,
			&rep.FechaGeneracion, &rep.NombreArchivo, &rep.TamanoBytes); err != nil {
			return nil, fmt.Errorf("scan reporte: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}

// GetPDF devuelve el contenido binario para descarga (nil si no existe).
func (r *ReporteRepo) GetPDF(id int64) (*entity.ReportePDF, error) {
	var pdf entity.ReportePDF
	err := r.q.QueryRow(context.Background(),
		`SELECT nombre_archivo, archivo_pdf, tipo_mime, tamaño_bytes FROM reportes WHERE id_reporte = $1`,
		id).Scan(&pdf.NombreArchivo, &pdf.ArchivoPDF, &pdf.TipoMIME, &pdf.TamanoBytes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reporte pdf: %w", err)
	}
	return &pdf, nil
}
