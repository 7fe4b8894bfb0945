package usecase

import (
	"context"

	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// IncidenciaTxRunner ejecuta el registro de una incidencia dentro de una
// transacción, con las validaciones de referencia leyendo sobre la misma tx.
type IncidenciaTxRunner interface {
	RunIncidencia(ctx context.Context, fn func(
		incRepo repository.IncidenciaRepository,
		productoRepo repository.ProductoRepository,
		usuarioRepo repository.UsuarioRepository,
	) error) error
}

// IncidenciaUseCase reglas de negocio para incidencias. Las incidencias
// documentan problemas sobre productos y nunca modifican stock; el ajuste,
// si corresponde, es un movimiento aparte.
type IncidenciaUseCase struct {
	repo     repository.IncidenciaRepository
	txRunner IncidenciaTxRunner
}

// NewIncidenciaUseCase construye el caso de uso.
func NewIncidenciaUseCase(repo repository.IncidenciaRepository, txRunner IncidenciaTxRunner) *IncidenciaUseCase {
	return &IncidenciaUseCase{repo: repo, txRunner: txRunner}
}

// ListarTipos devuelve los tipos de incidencia activos.
func (uc *IncidenciaUseCase) ListarTipos() ([]dto.TipoIncidenciaResponse, error) {
	tipos, err := uc.repo.ListarTipos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TipoIncidenciaResponse, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, dto.TipoIncidenciaResponse{ID: t.ID, NombreTipo: t.Nombre, Descripcion: t.Descripcion})
	}
	return out, nil
}

// Listar devuelve el historial de incidencias, más recientes primero.
func (uc *IncidenciaUseCase) Listar(limit int) ([]dto.IncidenciaResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	filas, err := uc.repo.Listar(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IncidenciaResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.IncidenciaResponse{
			IDIncidencia:         f.ID,
			IDProducto:           f.IDProducto,
			CodigoProducto:       f.CodigoProducto,
			NombreProducto:       f.NombreProducto,
			Lote:                 f.Lote,
			IDTipoIncidencia:     f.IDTipoIncidencia,
			TipoIncidencia:       f.NombreTipo,
			CantidadAfectada:     f.CantidadAfectada,
			FechaIncidencia:      f.FechaIncidencia,
			IDUsuarioRegistro:    f.IDUsuarioRegistro,
			DescripcionDetallada: f.DescripcionDetallada,
			AccionTomada:         f.AccionTomada,
			FechaRegistro:        f.FechaRegistro,
		})
	}
	return out, nil
}

// Registrar valida las referencias (producto, usuario, tipo activo) dentro de
// la misma transacción del INSERT y persiste la incidencia.
func (uc *IncidenciaUseCase) Registrar(ctx context.Context, in dto.RegistrarIncidenciaRequest) (int64, error) {
	if in.IDProducto == 0 || in.IDTipoIncidencia == 0 || in.IDUsuarioRegistro == 0 ||
		in.FechaIncidencia == "" || in.DescripcionDetallada == "" || !in.CantidadAfectada.IsPositive() {
		return 0, domain.ErrEntradaInvalida
	}
	fecha, err := dto.ParseFecha(in.FechaIncidencia)
	if err != nil {
		return 0, domain.ErrEntradaInvalida
	}

	var id int64
	err = uc.txRunner.RunIncidencia(ctx, func(
		incRepo repository.IncidenciaRepository,
		productoRepo repository.ProductoRepository,
		usuarioRepo repository.UsuarioRepository,
	) error {
		producto, err := productoRepo.GetByID(in.IDProducto)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNoEncontrado
		}
		usuario, err := usuarioRepo.GetByID(in.IDUsuarioRegistro)
		if err != nil {
			return err
		}
		if usuario == nil {
			return domain.ErrUsuarioInvalido
		}
		tipo, err := incRepo.GetTipoActivo(in.IDTipoIncidencia)
		if err != nil {
			return err
		}
		if tipo == nil {
			return domain.ErrTipoIncidenciaInvalido
		}
		id, err = incRepo.Crear(&entity.Incidencia{
			IDProducto:           in.IDProducto,
			IDTipoIncidencia:     in.IDTipoIncidencia,
			CantidadAfectada:     in.CantidadAfectada,
			FechaIncidencia:      fecha,
			IDUsuarioRegistro:    in.IDUsuarioRegistro,
			DescripcionDetallada: in.DescripcionDetallada,
			AccionTomada:         in.AccionTomada,
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
