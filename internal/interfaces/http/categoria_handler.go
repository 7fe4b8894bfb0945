package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/application/usecase"
	"github.com/yerbsoft/inventario-api/internal/domain"
)

// CategoriaHandler maneja las peticiones HTTP de categorías.
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// List devuelve las categorías activas.
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener categorías"})
	}
	return c.JSON(out)
}

// Create registra una categoría nueva.
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.GuardarCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al crear categoría"})
	}
	id, err := h.uc.Crear(in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al crear categoría"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al crear categoría"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Categoría creada exitosamente", ID: id})
}

// Update modifica una categoría activa.
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	var in dto.GuardarCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al actualizar categoría"})
	}
	if err := h.uc.Actualizar(id, in); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Categoría no encontrada"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al actualizar categoría"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al actualizar categoría"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Categoría actualizada exitosamente"})
}

// Delete desactiva la categoría.
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	if err := h.uc.Eliminar(id); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al eliminar categoría"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Categoría eliminada exitosamente"})
}
