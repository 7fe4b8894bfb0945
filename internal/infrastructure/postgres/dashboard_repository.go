package postgres

import (
	"context"
	"fmt"

	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de lectura para estadísticas.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// ObtenerStats calcula las cifras del dashboard en una sola pasada.
// ingresos_mes es la valorización del inventario activo (precio × stock);
// ingresos_mes_anterior queda fijo en 0, el frontend no lo grafica todavía.
func (r *DashboardRepo) ObtenerStats(ctx context.Context, mesActual, mesAnterior repository.RangoFechas) (*repository.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COALESCE(SUM(p.precio_unitario * p.stock_actual), 0)
			 FROM productos p WHERE p.estado = 'Activo') AS ingresos_mes,
			0::numeric AS ingresos_mes_anterior,
			(SELECT COALESCE(SUM(m.cantidad), 0)
			 FROM movimientos_inventario m
			 INNER JOIN tipos_movimiento tm ON m.id_tipo_movimiento = tm.id_tipo_movimiento
			 WHERE tm.afecta_stock = 'Decrementa'
			   AND m.fecha_movimiento BETWEEN $1 AND $2) AS salidas_mes,
			(SELECT COALESCE(SUM(m.cantidad), 0)
			 FROM movimientos_inventario m
			 INNER JOIN tipos_movimiento tm ON m.id_tipo_movimiento = tm.id_tipo_movimiento
			 WHERE tm.afecta_stock = 'Decrementa'
			   AND m.fecha_movimiento BETWEEN $3 AND $4) AS salidas_mes_anterior,
			(SELECT COUNT(*) FROM productos WHERE estado = 'Activo') AS productos_activos,
			(SELECT COUNT(*) FROM productos WHERE estado = 'Activo' AND stock_actual <= stock_minimo) AS stock_critico`

	var stats repository.DashboardStats
	err := r.q.QueryRow(ctx, query,
		mesActual.Desde, mesActual.Hasta, mesAnterior.Desde, mesAnterior.Hasta).Scan(
		&stats.IngresosMes, &stats.IngresosMesAnterior, &stats.SalidasMes,
		&stats.SalidasMesAnterior, &stats.ProductosActivos, &stats.StockCritico)
	if err != nil {
		return nil, fmt.Errorf("query dashboard stats: %w", err)
	}
	return &stats, nil
}
