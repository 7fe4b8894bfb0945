// Package pdf renderiza los reportes que el servidor genera por sí mismo
// usando Maroto v2: listado del inventario activo y top de productos con
// mayor salida. Los reportes que sube el SPA ya llegan como PDF.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/yerbsoft/inventario-api/internal/application/usecase"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.GeneradorReportePDF = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.GeneradorReportePDF usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// ListadoProductos genera el PDF con el inventario activo.
func (g *MarotoReportGenerator) ListadoProductos(productos []*entity.ProductoListado, generadoEn time.Time) ([]byte, error) {
	m := newDoc("Reporte de Productos")

	m.AddRows(headerRow("REPORTE DE PRODUCTOS", generadoEn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(
		cell{"Código", 2, align.Left},
		cell{"Producto", 4, align.Left},
		cell{"Categoría", 2, align.Left},
		cell{"Precio", 1, align.Right},
		cell{"Stock", 1, align.Right},
		cell{"Estado", 2, align.Center},
	))
	for _, p := range productos {
		m.AddRows(row.New(6).Add(
			bodyCell(p.Codigo, 2, align.Left),
			bodyCell(p.Nombre, 4, align.Left),
			bodyCell(p.NombreCategoria, 2, align.Left),
			bodyCell(p.PrecioUnitario.StringFixed(2), 1, align.Right),
			bodyCell(p.StockActual.String(), 1, align.Right),
			bodyCell(p.EstadoStockDisplay(), 2, align.Center),
		))
	}

	m.AddRows(footerRow(fmt.Sprintf("Total de productos activos: %d", len(productos))))
	return generate(m)
}

// TopSalidas genera el PDF con los productos de mayor salida acumulada.
func (g *MarotoReportGenerator) TopSalidas(filas []*entity.TopSalida, generadoEn time.Time) ([]byte, error) {
	m := newDoc("Productos con Mayor Salida")

	m.AddRows(headerRow("PRODUCTOS CON MAYOR SALIDA", generadoEn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(
		cell{"#", 1, align.Center},
		cell{"Código", 3, align.Left},
		cell{"Producto", 5, align.Left},
		cell{"Total salidas", 3, align.Right},
	))
	for i, f := range filas {
		m.AddRows(row.New(6).Add(
			bodyCell(fmt.Sprintf("%d", i+1), 1, align.Center),
			bodyCell(f.CodigoProducto, 3, align.Left),
			bodyCell(f.NombreProducto, 5, align.Left),
			bodyCell(f.TotalSalidas.String(), 3, align.Right),
		))
	}

	m.AddRows(footerRow(fmt.Sprintf("Productos listados: %d", len(filas))))
	return generate(m)
}

func newDoc(titulo string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(titulo string, generadoEn time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sistema de Inventario", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generadoEn.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

type cell struct {
	label string
	size  int
	align align.Type
}

func tableHeaderRow(cells ...cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func bodyCell(valor string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(valor, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func footerRow(resumen string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(resumen, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 4,
		}),
	))
}
