package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yerbsoft/inventario-api/internal/application/analytics"
	"github.com/yerbsoft/inventario-api/internal/application/dto"
)

// DashboardHandler maneja las estadísticas del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener estadísticas"})
	}
	return c.JSON(out)
}
