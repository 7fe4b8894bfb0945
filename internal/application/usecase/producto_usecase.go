package usecase

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// ProductoUseCase reglas de negocio para productos.
type ProductoUseCase struct {
	productoRepo  repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	marcaRepo     repository.MarcaRepository
}

// NewProductoUseCase construye el caso de uso con los puertos de persistencia.
func NewProductoUseCase(
	productoRepo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	marcaRepo repository.MarcaRepository,
) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo, categoriaRepo: categoriaRepo, marcaRepo: marcaRepo}
}

// Listar devuelve los productos activos con su categoría y marca.
func (uc *ProductoUseCase) Listar() ([]dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.ListarActivos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, aProductoResponse(p))
	}
	return out, nil
}

// ListarCategorias para el selector del formulario de productos.
func (uc *ProductoUseCase) ListarCategorias() ([]dto.CategoriaSimpleResponse, error) {
	categorias, err := uc.categoriaRepo.ListarActivas()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaSimpleResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaSimpleResponse{IDCategoria: c.ID, Nombre: c.Nombre})
	}
	return out, nil
}

// ListarProveedores devuelve solo los nombres de las marcas activas.
func (uc *ProductoUseCase) ListarProveedores() ([]string, error) {
	marcas, err := uc.marcaRepo.ListarActivas()
	if err != nil {
		return nil, err
	}
	nombres := make([]string, 0, len(marcas))
	for _, m := range marcas {
		nombres = append(nombres, m.Nombre)
	}
	return nombres, nil
}

// Crear registra un producto nuevo. La marca llega por nombre y se resuelve
// a id; el lote se genera con el patrón L-<fecha>-<serie>.
func (uc *ProductoUseCase) Crear(in dto.GuardarProductoRequest) (int64, error) {
	marca, err := uc.marcaRepo.GetActivaPorNombre(in.Provider)
	if err != nil {
		return 0, err
	}
	if marca == nil {
		return 0, domain.ErrMarcaNoEncontrada
	}
	stockMinimo := in.StockMinimo
	if stockMinimo.IsZero() {
		stockMinimo = decimal.NewFromInt(5)
	}
	p := &entity.Producto{
		Codigo:         in.SKU,
		Nombre:         in.Name,
		Descripcion:    in.Descripcion,
		PrecioUnitario: in.Price,
		StockActual:    in.Stock,
		StockMinimo:    stockMinimo,
		IDCategoria:    in.IDCategoria,
		IDMarca:        marca.ID,
		Lote:           generarLote(time.Now()),
		Estado:         entity.EstadoActivo,
	}
	return uc.productoRepo.Crear(p)
}

// Actualizar modifica un producto existente mientras no esté Inactivo.
// Nunca cambia Estado: la baja es solo vía Eliminar (soft delete explícito).
func (uc *ProductoUseCase) Actualizar(id int64, in dto.GuardarProductoRequest) error {
	marca, err := uc.marcaRepo.GetActivaPorNombre(in.Provider)
	if err != nil {
		return err
	}
	if marca == nil {
		return domain.ErrMarcaNoEncontrada
	}
	stockMinimo := in.StockMinimo
	if stockMinimo.IsZero() {
		stockMinimo = decimal.NewFromInt(5)
	}
	p := &entity.Producto{
		ID:             id,
		Codigo:         in.SKU,
		Nombre:         in.Name,
		Descripcion:    in.Descripcion,
		PrecioUnitario: in.Price,
		StockActual:    in.Stock,
		StockMinimo:    stockMinimo,
		IDCategoria:    in.IDCategoria,
		IDMarca:        marca.ID,
	}
	ok, err := uc.productoRepo.Actualizar(p)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}

// Eliminar marca el producto como Inactivo.
func (uc *ProductoUseCase) Eliminar(id int64) error {
	ok, err := uc.productoRepo.SoftDelete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	return nil
}

func generarLote(t time.Time) string {
	return fmt.Sprintf("L-%s-%03d", t.Format("20060102"), rand.Intn(1000))
}

func aProductoResponse(p *entity.ProductoListado) dto.ProductoResponse {
	estado := 0
	if p.Estado == entity.EstadoActivo {
		estado = 1
	}
	return dto.ProductoResponse{
		ID:                 p.ID,
		SKU:                p.Codigo,
		Name:               p.Nombre,
		Descripcion:        p.Descripcion,
		Price:              p.PrecioUnitario,
		Provider:           p.NombreMarca,
		Stock:              p.StockActual,
		StockMinimo:        p.StockMinimo,
		Date:               p.FechaCreacion,
		IDCategoria:        p.IDCategoria,
		Estado:             estado,
		CategoriaNombre:    p.NombreCategoria,
		IDMarca:            p.IDMarca,
		Lote:               p.Lote,
		EstadoStock:        p.Producto.Estado,
		EstadoStockDisplay: p.EstadoStockDisplay(),
	}
}
