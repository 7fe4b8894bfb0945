package auth

import "github.com/yerbsoft/inventario-api/pkg/logger"

// TareaAsincrona ejecuta efectos post-login (migración de password, último
// acceso) fuera del camino de la respuesta. Inyectable para que los tests
// puedan ejecutarlos de forma síncrona y determinista.
type TareaAsincrona interface {
	Go(fn func())
}

// GoroutineRunner implementación de producción: goroutine con recover.
type GoroutineRunner struct {
	log *logger.Logger
}

// NewGoroutineRunner construye el runner con el logger para fallos silenciosos.
func NewGoroutineRunner(log *logger.Logger) *GoroutineRunner {
	return &GoroutineRunner{log: log}
}

// Go lanza fn en segundo plano. Un panic en la tarea no tumba el proceso.
func (r *GoroutineRunner) Go(fn func()) {
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				r.log.Error().Interface("panic", rec).Msg("tarea asíncrona de auth falló")
			}
		}()
		fn()
	}()
}
