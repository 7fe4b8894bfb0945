package analytics

import (
	"sync"
	"time"

	"github.com/yerbsoft/inventario-api/internal/application/dto"
)

// StatsCache slot único de estadísticas con TTL fijo. El endpoint de stats no
// recibe parámetros, así que no hay clave: un snapshot y su marca de tiempo.
// Se inyecta como dependencia en lugar de vivir como variable de paquete.
type StatsCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	snapshot *dto.DashboardStatsResponse
	tomadoEn time.Time
}

// NewStatsCache construye el cache con el TTL indicado.
func NewStatsCache(ttl time.Duration) *StatsCache {
	return NewStatsCacheConReloj(ttl, time.Now)
}

// NewStatsCacheConReloj permite inyectar el reloj (tests de expiración).
func NewStatsCacheConReloj(ttl time.Duration, now func() time.Time) *StatsCache {
	return &StatsCache{ttl: ttl, now: now}
}

// Get devuelve el snapshot si sigue vigente.
func (c *StatsCache) Get() (*dto.DashboardStatsResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshot == nil || c.now().Sub(c.tomadoEn) >= c.ttl {
		return nil, false
	}
	return c.snapshot, true
}

// Put reemplaza el snapshot y reinicia la ventana de vigencia.
func (c *StatsCache) Put(s *dto.DashboardStatsResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = s
	c.tomadoEn = c.now()
}
