package inventario

import (
	"context"

	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// RegistrarMovimientoUseCase registra movimientos de inventario de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) sobre los productos
// afectados y Commit/Rollback del lote completo.
type RegistrarMovimientoUseCase struct {
	txRunner TxRunner
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(txRunner TxRunner) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{txRunner: txRunner}
}

// Registrar valida el movimiento y lo aplica dentro de una única transacción:
//
//  1. Carga el tipo de movimiento activo; si no existe, ErrTipoMovimientoInvalido.
//  2. Si el tipo Decrementa: por cada detalle, en orden de envío, valida la
//     cantidad, bloquea la fila del producto y verifica stock suficiente.
//  3. Inserta cada registro de movimiento y ajusta el stock según el tipo
//     (suma si Incrementa, resta si Decrementa, nada si No_Afecta).
//  4. Commit; cualquier error revierte el lote completo sin ajuste parcial.
//
// Devuelve el número de productos afectados (detalles procesados).
func (uc *RegistrarMovimientoUseCase) Registrar(ctx context.Context, in dto.RegistrarMovimientoRequest) (int, error) {
	if in.IDTipoMovimiento == 0 || in.FechaMovimiento == "" || in.IDUsuarioResponsable == 0 || len(in.Detalles) == 0 {
		return 0, domain.ErrEntradaInvalida
	}
	fecha, err := dto.ParseFecha(in.FechaMovimiento)
	if err != nil {
		return 0, domain.ErrEntradaInvalida
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
		tipoRepo repository.TipoMovimientoRepository,
	) error {
		tipo, err := tipoRepo.GetActivo(in.IDTipoMovimiento)
		if err != nil {
			return err
		}
		if tipo == nil {
			return domain.ErrTipoMovimientoInvalido
		}

		// Verificación previa con bloqueo de fila para las salidas: el lock se
		// mantiene hasta el commit, serializando movimientos concurrentes
		// sobre el mismo producto.
		if tipo.AfectaStock == entity.AfectaDecrementa {
			for _, det := range in.Detalles {
				if det.IDProducto == 0 || !det.Cantidad.IsPositive() {
					return domain.ErrDetalleInvalido
				}
				stock, found, err := productoRepo.GetStockForUpdate(det.IDProducto)
				if err != nil {
					return err
				}
				if !found {
					return &domain.ProductoNoEncontradoError{ProductoID: det.IDProducto}
				}
				if stock.LessThan(det.Cantidad) {
					return &domain.StockInsuficienteError{ProductoID: det.IDProducto}
				}
			}
		}

		// Registro y ajuste, en el orden en que llegaron los detalles.
		for _, det := range in.Detalles {
			mov := &entity.Movimiento{
				IDProducto:           det.IDProducto,
				IDTipoMovimiento:     in.IDTipoMovimiento,
				Cantidad:             det.Cantidad,
				FechaMovimiento:      fecha,
				IDUsuarioResponsable: in.IDUsuarioResponsable,
				Motivo:               in.Motivo,
				LoteAfectado:         det.LoteAfectado,
				Observaciones:        in.Observaciones,
			}
			if err := movRepo.Crear(mov); err != nil {
				return err
			}
			switch tipo.AfectaStock {
			case entity.AfectaIncrementa:
				if err := productoRepo.AjustarStock(det.IDProducto, det.Cantidad); err != nil {
					return err
				}
			case entity.AfectaDecrementa:
				if err := productoRepo.AjustarStock(det.IDProducto, det.Cantidad.Neg()); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(in.Detalles), nil
}
