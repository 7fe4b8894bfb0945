package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/application/inventario"
	"github.com/yerbsoft/inventario-api/internal/application/usecase"
	"github.com/yerbsoft/inventario-api/internal/domain"
)

// MovimientoHandler maneja las peticiones HTTP de movimientos de inventario.
type MovimientoHandler struct {
	registrar *inventario.RegistrarMovimientoUseCase
	lectura   *usecase.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(registrar *inventario.RegistrarMovimientoUseCase, lectura *usecase.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{registrar: registrar, lectura: lectura}
}

// ListTipos devuelve los tipos de movimiento activos.
func (h *MovimientoHandler) ListTipos(c *fiber.Ctx) error {
	out, err := h.lectura.ListarTipos()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener tipos de movimiento"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Historial de movimientos
// @Tags         movimientos
// @Produce      json
// @Param        tipo  query  string  false  "Filtra por efecto: Incrementa, Decrementa, No_Afecta"
// @Success      200   {array}   dto.MovimientoResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	out, err := h.lectura.Listar(c.Query("tipo"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener movimientos"})
	}
	return c.JSON(out)
}

// TopSalidas devuelve los productos con mayor salida acumulada.
func (h *MovimientoHandler) TopSalidas(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	out, err := h.lectura.TopSalidas(limit, c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al obtener top de productos salidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener top de productos salidos"})
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar movimiento de inventario
// @Description  Crea los renglones del movimiento y ajusta stock de forma atómica.
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "Cabecera y detalles del movimiento"
// @Success      201   {object}  dto.MovimientoRegistradoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Register(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Faltan campos requeridos"})
	}
	afectados, err := h.registrar.Registrar(c.Context(), in)
	if err != nil {
		var noEncontrado *domain.ProductoNoEncontradoError
		var sinStock *domain.StockInsuficienteError
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Faltan campos requeridos"})
		case errors.Is(err, domain.ErrTipoMovimientoInvalido):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Tipo de movimiento no válido"})
		case errors.Is(err, domain.ErrDetalleInvalido):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Detalle de movimiento inválido"})
		case errors.As(err, &noEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: noEncontrado.Error()})
		case errors.As(err, &sinStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: sinStock.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al registrar el movimiento"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovimientoRegistradoResponse{
		Mensaje:            "Movimiento registrado exitosamente",
		ProductosAfectados: afectados,
	})
}
