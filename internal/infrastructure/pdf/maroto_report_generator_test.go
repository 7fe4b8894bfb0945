package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/infrastructure/pdf"
)

var fechaGeneracion = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func productosDePrueba() []*entity.ProductoListado {
	return []*entity.ProductoListado{
		{
			Producto: entity.Producto{
				Codigo:         "PRD-001",
				Nombre:         "Yerba Mate Orgánica 1kg",
				PrecioUnitario: decimal.NewFromFloat(12.50),
				StockActual:    decimal.NewFromInt(48),
			},
			NombreCategoria: "Alimentos",
		},
		{
			Producto: entity.Producto{
				Codigo:         "PRD-002",
				Nombre:         "Termo Acero 1L",
				PrecioUnitario: decimal.NewFromFloat(35.00),
				StockActual:    decimal.NewFromInt(3),
			},
			NombreCategoria: "Accesorios",
		},
	}
}

func TestListadoProductos_GeneraPDF(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	data, err := gen.ListadoProductos(productosDePrueba(), fechaGeneracion)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "la salida debe ser un documento PDF")
}

func TestListadoProductos_SinProductos_GeneraPDFVacio(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	data, err := gen.ListadoProductos(nil, fechaGeneracion)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestTopSalidas_GeneraPDF(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	filas := []*entity.TopSalida{
		{IDProducto: 1, CodigoProducto: "PRD-001", NombreProducto: "Yerba Mate Orgánica 1kg", TotalSalidas: decimal.NewFromInt(120)},
		{IDProducto: 2, CodigoProducto: "PRD-002", NombreProducto: "Termo Acero 1L", TotalSalidas: decimal.NewFromInt(44)},
	}

	data, err := gen.TopSalidas(filas, fechaGeneracion)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
