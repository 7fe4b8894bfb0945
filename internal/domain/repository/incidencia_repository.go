package repository

import "github.com/yerbsoft/inventario-api/internal/domain/entity"

// IncidenciaRepository puerto de persistencia para incidencias y sus tipos.
// Las incidencias son append-only y no afectan stock.
type IncidenciaRepository interface {
	ListarTipos() ([]*entity.TipoIncidencia, error)
	GetTipoActivo(id int64) (*entity.TipoIncidencia, error)
	Listar(limit int) ([]*entity.IncidenciaListado, error)
	Crear(i *entity.Incidencia) (int64, error)
}
