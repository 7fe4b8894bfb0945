// Package analytics contiene el caso de uso de las estadísticas del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// DashboardUseCase calcula las cifras del mes en curso con un cache de slot
// único: dentro de la ventana de vigencia se responde el snapshot sin tocar
// la base de datos.
type DashboardUseCase struct {
	repo  repository.DashboardRepository
	cache *StatsCache
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository, cache *StatsCache) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, cache: cache, now: time.Now}
}

// GetStats devuelve las estadísticas, desde cache si el snapshot sigue fresco.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if s, ok := uc.cache.Get(); ok {
		return s, nil
	}

	ahora := uc.now().UTC()
	actual := rangoMes(ahora)
	anterior := rangoMes(ahora.AddDate(0, -1, 0))

	stats, err := uc.repo.ObtenerStats(ctx, actual, anterior)
	if err != nil {
		return nil, fmt.Errorf("dashboard: obtener stats: %w", err)
	}

	resp := &dto.DashboardStatsResponse{
		IngresosMes:         stats.IngresosMes,
		IngresosMesAnterior: stats.IngresosMesAnterior,
		SalidasMes:          stats.SalidasMes,
		SalidasMesAnterior:  stats.SalidasMesAnterior,
		ProductosActivos:    stats.ProductosActivos,
		StockCritico:        stats.StockCritico,
	}
	uc.cache.Put(resp)
	return resp, nil
}

// rangoMes devuelve [día 1, último día] del mes de t, en UTC. Hasta apunta
// al inicio (00:00) del último día, no a su fin: el corte mensual es el
// mismo que el SPA muestra, y cambiarlo desfasaría ambas cifras.
func rangoMes(t time.Time) repository.RangoFechas {
	primero := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	ultimo := primero.AddDate(0, 1, 0).Add(-24 * time.Hour)
	return repository.RangoFechas{Desde: primero, Hasta: ultimo}
}
