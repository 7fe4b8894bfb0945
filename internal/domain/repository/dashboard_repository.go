package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RangoFechas intervalo cerrado de fechas para agregaciones.
type RangoFechas struct {
	Desde time.Time
	Hasta time.Time
}

// DashboardStats cifras agregadas que alimentan el dashboard.
type DashboardStats struct {
	IngresosMes         decimal.Decimal
	IngresosMesAnterior decimal.Decimal
	SalidasMes          decimal.Decimal
	SalidasMesAnterior  decimal.Decimal
	ProductosActivos    int64
	StockCritico        int64
}

// DashboardRepository consultas de solo lectura para las estadísticas.
type DashboardRepository interface {
	ObtenerStats(ctx context.Context, mesActual, mesAnterior RangoFechas) (*DashboardStats, error)
}
