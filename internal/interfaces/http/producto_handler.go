package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/application/usecase"
	"github.com/yerbsoft/inventario-api/internal/domain"
)

// ProductoHandler maneja las peticiones HTTP de productos.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         productos
// @Produce      json
// @Success      200  {array}   dto.ProductoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener productos"})
	}
	return c.JSON(out)
}

// ListCategorias devuelve las categorías para el selector del formulario.
func (h *ProductoHandler) ListCategorias(c *fiber.Ctx) error {
	out, err := h.uc.ListarCategorias()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener categorías"})
	}
	return c.JSON(out)
}

// ListProveedores devuelve solo los nombres de las marcas activas.
func (h *ProductoHandler) ListProveedores(c *fiber.Ctx) error {
	out, err := h.uc.ListarProveedores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener marcas"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GuardarProductoRequest  true  "Datos del producto"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.GuardarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al guardar producto"})
	}
	id, err := h.uc.Crear(in)
	if err != nil {
		if errors.Is(err, domain.ErrMarcaNoEncontrada) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Marca no encontrada o inactiva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al guardar producto"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Producto guardado exitosamente", ID: id})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.GuardarProductoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	var in dto.GuardarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al actualizar producto"})
	}
	if err := h.uc.Actualizar(id, in); err != nil {
		if errors.Is(err, domain.ErrMarcaNoEncontrada) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Marca no encontrada o inactiva"})
		}
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Producto no encontrado o inactivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al actualizar producto"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Producto actualizado exitosamente"})
}

// Delete godoc
// @Summary      Eliminar producto (soft delete)
// @Tags         productos
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	if err := h.uc.Eliminar(id); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al eliminar producto"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Producto marcado como inactivo exitosamente"})
}
