package usecase

import (
	"time"

	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// MovimientoUseCase lado de lectura del historial de movimientos. El registro
// transaccional vive en application/inventario.
type MovimientoUseCase struct {
	movRepo  repository.MovimientoRepository
	tipoRepo repository.TipoMovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(movRepo repository.MovimientoRepository, tipoRepo repository.TipoMovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{movRepo: movRepo, tipoRepo: tipoRepo}
}

// ListarTipos devuelve los tipos de movimiento activos.
func (uc *MovimientoUseCase) ListarTipos() ([]dto.TipoMovimientoResponse, error) {
	tipos, err := uc.tipoRepo.ListarActivos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TipoMovimientoResponse, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, dto.TipoMovimientoResponse{
			ID:          t.ID,
			NombreTipo:  t.Nombre,
			Descripcion: t.Descripcion,
			AfectaStock: t.AfectaStock,
		})
	}
	return out, nil
}

// Listar devuelve el historial completo, con filtro opcional por efecto
// sobre el stock (Incrementa, Decrementa, No_Afecta).
func (uc *MovimientoUseCase) Listar(afectaStock string) ([]dto.MovimientoResponse, error) {
	filas, err := uc.movRepo.Listar(afectaStock)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.MovimientoResponse{
			IDMovimiento:         f.ID,
			IDProducto:           f.IDProducto,
			NombreProducto:       f.NombreProducto,
			CodigoProducto:       f.CodigoProducto,
			IDTipoMovimiento:     f.IDTipoMovimiento,
			TipoMovimiento:       f.NombreTipo,
			Cantidad:             f.Cantidad,
			FechaMovimiento:      f.FechaMovimiento,
			IDUsuarioResponsable: f.IDUsuarioResponsable,
			Responsable:          f.Responsable,
			Motivo:               f.Motivo,
			LoteAfectado:         f.LoteAfectado,
			Observaciones:        f.Observaciones,
			FechaRegistro:        f.FechaRegistro,
		})
	}
	return out, nil
}

// TopSalidas devuelve los productos con mayor salida acumulada. desde y hasta
// son fechas opcionales en formato 2006-01-02.
func (uc *MovimientoUseCase) TopSalidas(limit int, desde, hasta string) ([]dto.TopSalidaResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	var desdeT, hastaT *time.Time
	if desde != "" {
		t, err := time.Parse("2006-01-02", desde)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		desdeT = &t
	}
	if hasta != "" {
		t, err := time.Parse("2006-01-02", hasta)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		hastaT = &t
	}
	filas, err := uc.movRepo.TopSalidas(limit, desdeT, hastaT)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopSalidaResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.TopSalidaResponse{
			IDProducto:     f.IDProducto,
			CodigoProducto: f.CodigoProducto,
			NombreProducto: f.NombreProducto,
			TotalSalidas:   f.TotalSalidas,
		})
	}
	return out, nil
}
