package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse cifras de GET /api/dashboard/stats.
// ingresos_mes es la valoración del inventario activo (precio × stock);
// salidas_* suman cantidades de movimientos Decrementa del mes.
type DashboardStatsResponse struct {
	IngresosMes         decimal.Decimal `json:"ingresos_mes"`
	IngresosMesAnterior decimal.Decimal `json:"ingresos_mes_anterior"`
	SalidasMes          decimal.Decimal `json:"salidas_mes"`
	SalidasMesAnterior  decimal.Decimal `json:"salidas_mes_anterior"`
	ProductosActivos    int64           `json:"productos_activos"`
	StockCritico        int64           `json:"stock_critico"`
}
