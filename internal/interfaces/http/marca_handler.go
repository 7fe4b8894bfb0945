package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/application/usecase"
	"github.com/yerbsoft/inventario-api/internal/domain"
)

// MarcaHandler maneja las peticiones HTTP de marcas.
type MarcaHandler struct {
	uc *usecase.MarcaUseCase
}

// NewMarcaHandler construye el handler.
func NewMarcaHandler(uc *usecase.MarcaUseCase) *MarcaHandler {
	return &MarcaHandler{uc: uc}
}

// List devuelve las marcas activas.
func (h *MarcaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener marcas"})
	}
	return c.JSON(out)
}

// Create registra una marca nueva.
func (h *MarcaHandler) Create(c *fiber.Ctx) error {
	var in dto.GuardarMarcaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al crear marca"})
	}
	id, err := h.uc.Crear(in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al crear marca"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al crear marca"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Marca creada exitosamente", ID: id})
}

// Update modifica una marca activa.
func (h *MarcaHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	var in dto.GuardarMarcaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al actualizar marca"})
	}
	if err := h.uc.Actualizar(id, in); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Marca no encontrada"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al actualizar marca"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al actualizar marca"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Marca actualizada exitosamente"})
}

// Delete desactiva la marca.
func (h *MarcaHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	if err := h.uc.Eliminar(id); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Marca no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al eliminar marca"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Marca eliminada exitosamente"})
}
