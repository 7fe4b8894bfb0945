package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/application/usecase"
	"github.com/yerbsoft/inventario-api/internal/domain"
)

// ReporteHandler maneja el archivo de reportes PDF.
type ReporteHandler struct {
	uc *usecase.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// List devuelve los metadatos de los reportes más recientes.
func (h *ReporteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.QueryInt("limit", 20))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al listar reportes"})
	}
	return c.JSON(out)
}

// Ultimos devuelve los reportes más recientes con filtro por tipo y subtipo.
func (h *ReporteHandler) Ultimos(c *fiber.Ctx) error {
	out, err := h.uc.Ultimos(c.QueryInt("limit", 20), c.Query("tipo"), c.Query("subtipo"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al listar últimos reportes"})
	}
	return c.JSON(out)
}

// Upload godoc
// @Summary      Archivar un PDF generado por el cliente
// @Tags         reportes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubirReporteRequest  true  "filename y dataBase64 (PDF en base64)"
// @Success      201   {object}  dto.ReporteGuardadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reportes/upload [post]
func (h *ReporteHandler) Upload(c *fiber.Ctx) error {
	var in dto.SubirReporteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "filename y dataBase64 son requeridos"})
	}
	id, err := h.uc.Subir(in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "filename y dataBase64 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "No se pudo guardar el reporte"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReporteGuardadoResponse{Mensaje: "Reporte guardado", IDReporte: id})
}

// Generar godoc
// @Summary      Generar un reporte PDF en el servidor
// @Tags         reportes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerarReporteRequest  true  "tipo: Reporte_Productos o Reporte_Productos_Mayor_Salida"
// @Success      201   {object}  dto.ReporteGuardadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reportes/generar [post]
func (h *ReporteHandler) Generar(c *fiber.Ctx) error {
	var in dto.GenerarReporteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Tipo de reporte no válido"})
	}
	id, err := h.uc.Generar(in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Tipo de reporte no válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "No se pudo generar el reporte"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReporteGuardadoResponse{Mensaje: "Reporte generado", IDReporte: id})
}

// DescargarPDF sirve el binario archivado como descarga inline.
func (h *ReporteHandler) DescargarPDF(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Id inválido"})
	}
	pdf, err := h.uc.DescargarPDF(id)
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Reporte no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno"})
	}
	tipoMIME := pdf.TipoMIME
	if tipoMIME == "" {
		tipoMIME = "application/pdf"
	}
	nombre := pdf.NombreArchivo
	if nombre == "" {
		nombre = "reporte.pdf"
	}
	c.Set(fiber.HeaderContentType, tipoMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", nombre))
	return c.Send(pdf.ArchivoPDF)
}
