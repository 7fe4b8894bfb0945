package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/application/usecase"
	"github.com/yerbsoft/inventario-api/internal/domain"
)

// IncidenciaHandler maneja las peticiones HTTP de incidencias.
type IncidenciaHandler struct {
	uc *usecase.IncidenciaUseCase
}

// NewIncidenciaHandler construye el handler.
func NewIncidenciaHandler(uc *usecase.IncidenciaUseCase) *IncidenciaHandler {
	return &IncidenciaHandler{uc: uc}
}

// ListTipos devuelve los tipos de incidencia activos.
func (h *IncidenciaHandler) ListTipos(c *fiber.Ctx) error {
	out, err := h.uc.ListarTipos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener tipos de incidencia"})
	}
	return c.JSON(out)
}

// List devuelve el historial de incidencias.
func (h *IncidenciaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.QueryInt("limit", 50))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener incidencias"})
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar incidencia
// @Description  Documenta un problema sobre un producto. No modifica stock.
// @Tags         incidencias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarIncidenciaRequest  true  "Datos de la incidencia"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/incidencias [post]
func (h *IncidenciaHandler) Register(c *fiber.Ctx) error {
	var in dto.RegistrarIncidenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Faltan campos requeridos"})
	}
	_, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Faltan campos requeridos"})
		case errors.Is(err, domain.ErrNoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Producto no encontrado"})
		case errors.Is(err, domain.ErrUsuarioInvalido):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Usuario no válido"})
		case errors.Is(err, domain.ErrTipoIncidenciaInvalido):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Tipo de incidencia no válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al registrar la incidencia"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Mensaje: "Incidencia registrada correctamente"})
}
