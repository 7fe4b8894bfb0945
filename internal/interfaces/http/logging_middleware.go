package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/yerbsoft/inventario-api/pkg/logger"
)

// HeaderRequestID header de correlación; se respeta el que mande el cliente.
const HeaderRequestID = "X-Request-ID"

// LoggingMiddleware registra cada request con método, ruta, status y duración,
// correlacionadas por request id.
func LoggingMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)

		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(inicio)).
			Msg("request")
		return err
	}
}
