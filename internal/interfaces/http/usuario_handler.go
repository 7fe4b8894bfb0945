package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/application/usecase"
	"github.com/yerbsoft/inventario-api/internal/domain"
)

// UsuarioHandler maneja las peticiones HTTP de usuarios y roles.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List devuelve los usuarios activos con su rol.
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener usuarios"})
	}
	return c.JSON(out)
}

// ListRoles devuelve los roles activos.
func (h *UsuarioHandler) ListRoles(c *fiber.Ctx) error {
	out, err := h.uc.ListarRoles()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al obtener roles"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearUsuarioRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Todos los campos son obligatorios"})
	}
	id, err := h.uc.Crear(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Todos los campos son obligatorios"})
		case errors.Is(err, domain.ErrEmailYaRegistrado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "El email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al crear usuario"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Mensaje: "Usuario creado exitosamente", ID: id})
}

// Update aplica una actualización parcial del usuario.
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al actualizar usuario"})
	}
	if err := h.uc.Actualizar(id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailYaRegistrado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "El email ya está registrado por otro usuario"})
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Error al actualizar usuario"})
		case errors.Is(err, domain.ErrNoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al actualizar usuario"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Usuario actualizado exitosamente"})
}

// Delete marca el usuario como Inactivo.
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	if err := h.uc.Eliminar(id); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al eliminar usuario"})
	}
	return c.JSON(dto.MensajeResponse{Mensaje: "Usuario eliminado exitosamente"})
}
