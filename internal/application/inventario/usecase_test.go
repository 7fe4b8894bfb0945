package inventario_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/application/inventario"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: los cambios de stock y los
// movimientos insertados solo se conservan si la función de la tx retorna nil.
// ──────────────────────────────────────────────────────────────────────────────

type fakeTipoRepo struct {
	tipos map[int64]*entity.TipoMovimiento
}

func (f *fakeTipoRepo) ListarActivos() ([]*entity.TipoMovimiento, error) { return nil, nil }

func (f *fakeTipoRepo) GetActivo(id int64) (*entity.TipoMovimiento, error) {
	return f.tipos[id], nil
}

type fakeProductoRepo struct {
	stock map[int64]decimal.Decimal
}

func (f *fakeProductoRepo) ListarActivos() ([]*entity.ProductoListado, error) { return nil, nil }
func (f *fakeProductoRepo) GetByID(int64) (*entity.Producto, error) { return nil, nil }
func (f *fakeProductoRepo) Crear(*entity.Producto) (int64, error) { return 0, nil }
func (f *fakeProductoRepo) Actualizar(*entity.Producto) (bool, error) { return false, nil }
func (f *fakeProductoRepo) SoftDelete(int64) (bool, error) { return false, nil }

func (f *fakeProductoRepo) GetStockForUpdate(id int64) (decimal.Decimal, bool, error) {
	s, ok := f.stock[id]
	if !ok {
		return decimal.Zero, false, nil
	}
	return s, true, nil
}

func (f *fakeProductoRepo) AjustarStock(id int64, delta decimal.Decimal) error {
	f.stock[id] = f.stock[id].Add(delta)
	return nil
}

type fakeMovRepo struct {
	creados []*entity.Movimiento
}

func (f *fakeMovRepo) Crear(m *entity.Movimiento) error {
	f.creados = append(f.creados, m)
	return nil
}

func (f *fakeMovRepo) Listar(string) ([]*entity.MovimientoListado, error) { return nil, nil }
func (f *fakeMovRepo) TopSalidas(int, *time.Time, *time.Time) ([]*entity.TopSalida, error) {
	return nil, nil
}

// fakeTxRunner ejecuta fn contra copias; solo aplica los cambios al estado
// visible cuando fn retorna nil, imitando Commit/Rollback.
type fakeTxRunner struct {
	tipos     *fakeTipoRepo
	productos *fakeProductoRepo
	movs      *fakeMovRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	tipoRepo repository.TipoMovimientoRepository,
) error) error {
	stockTx := make(map[int64]decimal.Decimal, len(f.productos.stock))
	for k, v := range f.productos.stock {
		stockTx[k] = v
	}
	productosTx := &fakeProductoRepo{stock: stockTx}
	movsTx := &fakeMovRepo{creados: append([]*entity.Movimiento(nil), f.movs.creados...)}

	if err := fn(movsTx, productosTx, f.tipos); err != nil {
		return err
	}
	f.productos.stock = productosTx.stock
	f.movs.creados = movsTx.creados
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	tipoEntrada int64 = 1
	tipoSalida  int64 = 2
	tipoConteo  int64 = 3
	productoUno int64 = 10
	productoDos int64 = 20
	usuarioResp int64 = 7
)

func buildRunner(stock map[int64]decimal.Decimal) *fakeTxRunner {
	return &fakeTxRunner{
		tipos: &fakeTipoRepo{tipos: map[int64]*entity.TipoMovimiento{
			tipoEntrada: {ID: tipoEntrada, Nombre: "Entrada por compra", AfectaStock: entity.AfectaIncrementa, Activo: true},
			tipoSalida:  {ID: tipoSalida, Nombre: "Salida por venta", AfectaStock: entity.AfectaDecrementa, Activo: true},
			tipoConteo:  {ID: tipoConteo, Nombre: "Ajuste de conteo", AfectaStock: entity.AfectaNoAfecta, Activo: true},
		}},
		productos: &fakeProductoRepo{stock: stock},
		movs:      &fakeMovRepo{},
	}
}

func requestConDetalles(idTipo int64, detalles ...dto.DetalleMovimiento) dto.RegistrarMovimientoRequest {
	return dto.RegistrarMovimientoRequest{
		IDTipoMovimiento:     idTipo,
		FechaMovimiento:      "2026-03-15",
		IDUsuarioResponsable: usuarioResp,
		Motivo:               "test",
		Detalles:             detalles,
	}
}

func det(idProducto int64, cantidad int64) dto.DetalleMovimiento {
	return dto.DetalleMovimiento{IDProducto: idProducto, Cantidad: decimal.NewFromInt(cantidad)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_EntradaIncrementaStock(t *testing.T) {
	runner := buildRunner(map[int64]decimal.Decimal{productoUno: decimal.NewFromInt(10)})
	uc := inventario.NewRegistrarMovimientoUseCase(runner)

	afectados, err := uc.Registrar(context.Background(), requestConDetalles(tipoEntrada, det(productoUno, 5)))
	require.NoError(t, err)

	assert.Equal(t, 1, afectados)
	assert.True(t, runner.productos.stock[productoUno].Equal(decimal.NewFromInt(15)),
		"la entrada debe sumar la cantidad al stock")
	require.Len(t, runner.movs.creados, 1)
	assert.Equal(t, productoUno, runner.movs.creados[0].IDProducto)
	assert.Equal(t, usuarioResp, runner.movs.creados[0].IDUsuarioResponsable)
}

func TestRegistrar_SalidaDecrementaStock(t *testing.T) {
	runner := buildRunner(map[int64]decimal.Decimal{productoUno: decimal.NewFromInt(10)})
	uc := inventario.NewRegistrarMovimientoUseCase(runner)

	afectados, err := uc.Registrar(context.Background(), requestConDetalles(tipoSalida, det(productoUno, 4)))
	require.NoError(t, err)

	assert.Equal(t, 1, afectados)
	assert.True(t, runner.productos.stock[productoUno].Equal(decimal.NewFromInt(6)),
		"la salida debe restar la cantidad del stock")
}

func TestRegistrar_NoAfectaDejaStockIntacto(t *testing.T) {
	runner := buildRunner(map[int64]decimal.Decimal{productoUno: decimal.NewFromInt(10)})
	uc := inventario.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), requestConDetalles(tipoConteo, det(productoUno, 99)))
	require.NoError(t, err)

	assert.True(t, runner.productos.stock[productoUno].Equal(decimal.NewFromInt(10)),
		"No_Afecta registra el movimiento sin tocar el stock")
	assert.Len(t, runner.movs.creados, 1, "el movimiento documental sí se inserta")
}

func TestRegistrar_StockInsuficiente_RevierteLoteCompleto(t *testing.T) {
	runner := buildRunner(map[int64]decimal.Decimal{
		productoUno: decimal.NewFromInt(10),
		productoDos: decimal.NewFromInt(2),
	})
	uc := inventario.NewRegistrarMovimientoUseCase(runner)

	// El primer detalle alcanza, el segundo no: nada debe persistir.
	_, err := uc.Registrar(context.Background(),
		requestConDetalles(tipoSalida, det(productoUno, 5), det(productoDos, 3)))

	var sinStock *domain.StockInsuficienteError
	require.ErrorAs(t, err, &sinStock)
	assert.Equal(t, productoDos, sinStock.ProductoID)
	assert.Equal(t, "Stock insuficiente para el producto 20", err.Error())

	assert.True(t, runner.productos.stock[productoUno].Equal(decimal.NewFromInt(10)),
		"rollback: el stock del primer producto no debe cambiar")
	assert.True(t, runner.productos.stock[productoDos].Equal(decimal.NewFromInt(2)))
	assert.Empty(t, runner.movs.creados, "rollback: ningún movimiento debe quedar insertado")
}

func TestRegistrar_SalidaExacta_DejaStockEnCero(t *testing.T) {
	runner := buildRunner(map[int64]decimal.Decimal{productoUno: decimal.NewFromInt(5)})
	uc := inventario.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), requestConDetalles(tipoSalida, det(productoUno, 5)))
	require.NoError(t, err, "salida por el stock exacto debe permitirse")

	assert.True(t, runner.productos.stock[productoUno].IsZero())
}

func TestRegistrar_ProductoInexistente_Retorna404Tipado(t *testing.T) {
	runner := buildRunner(map[int64]decimal.Decimal{productoUno: decimal.NewFromInt(10)})
	uc := inventario.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), requestConDetalles(tipoSalida, det(999, 1)))

	var noEncontrado *domain.ProductoNoEncontradoError
	require.ErrorAs(t, err, &noEncontrado)
	assert.Equal(t, int64(999), noEncontrado.ProductoID)
	assert.Equal(t, "Producto 999 no encontrado", err.Error())
}

func TestRegistrar_TipoInexistente_RetornaError(t *testing.T) {
	runner := buildRunner(map[int64]decimal.Decimal{productoUno: decimal.NewFromInt(10)})
	uc := inventario.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), requestConDetalles(77, det(productoUno, 1)))
	assert.ErrorIs(t, err, domain.ErrTipoMovimientoInvalido)
}

func TestRegistrar_CantidadNoPositiva_RetornaDetalleInvalido(t *testing.T) {
	runner := buildRunner(map[int64]decimal.Decimal{productoUno: decimal.NewFromInt(10)})
	uc := inventario.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), requestConDetalles(tipoSalida, det(productoUno, 0)))
	assert.ErrorIs(t, err, domain.ErrDetalleInvalido)

	_, err = uc.Registrar(context.Background(), requestConDetalles(tipoSalida, det(productoUno, -3)))
	assert.ErrorIs(t, err, domain.ErrDetalleInvalido)
}

func TestRegistrar_SinDetalles_RetornaEntradaInvalida(t *testing.T) {
	runner := buildRunner(map[int64]decimal.Decimal{})
	uc := inventario.NewRegistrarMovimientoUseCase(runner)

	_, err := uc.Registrar(context.Background(), requestConDetalles(tipoEntrada))
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestRegistrar_FechaInvalida_RetornaEntradaInvalida(t *testing.T) {
	runner := buildRunner(map[int64]decimal.Decimal{productoUno: decimal.NewFromInt(10)})
	uc := inventario.NewRegistrarMovimientoUseCase(runner)

	in := requestConDetalles(tipoEntrada, det(productoUno, 1))
	in.FechaMovimiento = "15/03/2026"
	_, err := uc.Registrar(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestRegistrar_DetallesSeInsertanEnOrdenDeEnvio(t *testing.T) {
	runner := buildRunner(map[int64]decimal.Decimal{
		productoUno: decimal.NewFromInt(10),
		productoDos: decimal.NewFromInt(10),
	})
	uc := inventario.NewRegistrarMovimientoUseCase(runner)

	afectados, err := uc.Registrar(context.Background(),
		requestConDetalles(tipoSalida, det(productoDos, 1), det(productoUno, 2)))
	require.NoError(t, err)

	assert.Equal(t, 2, afectados)
	require.Len(t, runner.movs.creados, 2)
	assert.Equal(t, productoDos, runner.movs.creados[0].IDProducto,
		"el orden de inserción debe ser el orden de envío de los detalles")
	assert.Equal(t, productoUno, runner.movs.creados[1].IDProducto)
}
