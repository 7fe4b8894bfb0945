package repository

import (
	"time"

	"github.com/yerbsoft/inventario-api/internal/domain/entity"
)

// TipoMovimientoRepository puerto de lectura para tipos de movimiento.
type TipoMovimientoRepository interface {
	ListarActivos() ([]*entity.TipoMovimiento, error)
	// GetActivo devuelve el tipo con activo = TRUE (nil si no existe o está desactivado).
	GetActivo(id int64) (*entity.TipoMovimiento, error)
}

// MovimientoRepository puerto de persistencia para movimientos de inventario.
// Los movimientos son inmutables: solo Crear y lecturas.
type MovimientoRepository interface {
	Crear(m *entity.Movimiento) error
	// Listar historial completo; afectaStock != "" filtra por tipo de efecto.
	Listar(afectaStock string) ([]*entity.MovimientoListado, error)
	// TopSalidas productos con mayor cantidad acumulada en movimientos Decrementa.
	TopSalidas(limit int, desde, hasta *time.Time) ([]*entity.TopSalida, error)
}
