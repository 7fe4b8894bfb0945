package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoResponse fila del listado de productos tal como la consume el SPA.
type ProductoResponse struct {
	ID                 int64           `json:"id"`
	SKU                string          `json:"sku"`
	Name               string          `json:"name"`
	Descripcion        string          `json:"descripcion"`
	Price              decimal.Decimal `json:"price"`
	Provider           string          `json:"provider"`
	Stock              decimal.Decimal `json:"stock"`
	StockMinimo        decimal.Decimal `json:"stockminimo"`
	Date               time.Time       `json:"date"`
	IDCategoria        int64           `json:"idcategoria"`
	Estado             int             `json:"estado"` // 1 = Activo, 0 = Inactivo
	CategoriaNombre    string          `json:"categoria_nombre"`
	IDMarca            int64           `json:"id_marca"`
	Lote               string          `json:"lote"`
	EstadoStock        string          `json:"estado_stock"`
	EstadoStockDisplay string          `json:"estado_stock_display"`
}

// GuardarProductoRequest cuerpo de creación/actualización de producto.
// Provider es el nombre de la marca; se resuelve a id_marca en el caso de uso.
type GuardarProductoRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Descripcion string          `json:"descripcion"`
	Price       decimal.Decimal `json:"price"`
	Provider    string          `json:"provider"`
	Stock       decimal.Decimal `json:"stock"`
	StockMinimo decimal.Decimal `json:"stockminimo"`
	IDCategoria int64           `json:"idcategoria"`
}

// CategoriaSimpleResponse para el selector de categorías del formulario.
type CategoriaSimpleResponse struct {
	IDCategoria int64  `json:"idcategoria"`
	Nombre      string `json:"nombre"`
}
