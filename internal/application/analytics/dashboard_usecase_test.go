package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yerbsoft/inventario-api/internal/application/analytics"
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// fakeDashboardRepo cuenta cuántas veces se consulta la base y captura los
// rangos de fecha recibidos.
type fakeDashboardRepo struct {
	llamadas    int
	mesActual   repository.RangoFechas
	mesAnterior repository.RangoFechas
	stats       *repository.DashboardStats
}

func (f *fakeDashboardRepo) ObtenerStats(_ context.Context, mesActual, mesAnterior repository.RangoFechas) (*repository.DashboardStats, error) {
	f.llamadas++
	f.mesActual = mesActual
	f.mesAnterior = mesAnterior
	return f.stats, nil
}

func statsDePrueba() *repository.DashboardStats {
	return &repository.DashboardStats{
		IngresosMes:      decimal.NewFromInt(150000),
		SalidasMes:       decimal.NewFromInt(320),
		ProductosActivos: 42,
		StockCritico:     3,
	}
}

func TestGetStats_MapeaCifrasDelRepositorio(t *testing.T) {
	repo := &fakeDashboardRepo{stats: statsDePrueba()}
	uc := analytics.NewDashboardUseCase(repo, analytics.NewStatsCache(time.Minute))

	resp, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.IngresosMes.Equal(decimal.NewFromInt(150000)))
	assert.True(t, resp.SalidasMes.Equal(decimal.NewFromInt(320)))
	assert.Equal(t, int64(42), resp.ProductosActivos)
	assert.Equal(t, int64(3), resp.StockCritico)
}

func TestGetStats_SegundaLlamadaDentroDelTTL_NoTocaLaBase(t *testing.T) {
	repo := &fakeDashboardRepo{stats: statsDePrueba()}
	uc := analytics.NewDashboardUseCase(repo, analytics.NewStatsCache(time.Minute))

	primero, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	segundo, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.llamadas, "la segunda lectura debe salir del cache")
	assert.Same(t, primero, segundo, "dentro del TTL se devuelve el mismo snapshot")
}

func TestGetStats_RangosDeMesCompletos(t *testing.T) {
	repo := &fakeDashboardRepo{stats: statsDePrueba()}
	uc := analytics.NewDashboardUseCase(repo, analytics.NewStatsCache(time.Minute))

	_, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	actual := repo.mesActual
	assert.Equal(t, 1, actual.Desde.Day(), "el rango del mes empieza el día 1")
	assert.Equal(t, time.UTC, actual.Desde.Location())
	assert.True(t, actual.Hasta.After(actual.Desde))
	assert.Equal(t, actual.Desde.Month(), actual.Hasta.Month(), "Hasta no se sale del mes")
	assert.Equal(t, 1, actual.Hasta.AddDate(0, 0, 1).Day(), "Hasta cae en el último día del mes")
	assert.Zero(t, actual.Hasta.Hour(), "el corte superior es el inicio (00:00) del último día")

	anterior := repo.mesAnterior
	assert.Equal(t, 1, anterior.Desde.Day())
	assert.True(t, anterior.Hasta.Before(actual.Desde),
		"el mes anterior debe terminar antes de que empiece el actual")
}

// ──────────────────────────────────────────────────────────────────────────────
// StatsCache con reloj inyectado
// ──────────────────────────────────────────────────────────────────────────────

func TestStatsCache_ExpiraConElReloj(t *testing.T) {
	ahora := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	cache := analytics.NewStatsCacheConReloj(10*time.Second, func() time.Time { return ahora })

	cache.Put(&dto.DashboardStatsResponse{ProductosActivos: 1})

	_, ok := cache.Get()
	assert.True(t, ok, "recién guardado debe estar vigente")

	ahora = ahora.Add(9 * time.Second)
	_, ok = cache.Get()
	assert.True(t, ok, "a los 9s de un TTL de 10s sigue vigente")

	ahora = ahora.Add(time.Second)
	_, ok = cache.Get()
	assert.False(t, ok, "cumplido el TTL el snapshot expira")
}

func TestStatsCache_VacioNoRetorna(t *testing.T) {
	cache := analytics.NewStatsCache(time.Minute)
	_, ok := cache.Get()
	assert.False(t, ok)
}

func TestStatsCache_PutReiniciaVentana(t *testing.T) {
	ahora := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	cache := analytics.NewStatsCacheConReloj(10*time.Second, func() time.Time { return ahora })

	cache.Put(&dto.DashboardStatsResponse{ProductosActivos: 1})
	ahora = ahora.Add(8 * time.Second)
	cache.Put(&dto.DashboardStatsResponse{ProductosActivos: 2})
	ahora = ahora.Add(8 * time.Second)

	s, ok := cache.Get()
	require.True(t, ok, "el segundo Put debe reiniciar la ventana de vigencia")
	assert.Equal(t, int64(2), s.ProductosActivos)
}
