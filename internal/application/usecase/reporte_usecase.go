package usecase

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/yerbsoft/inventario-api/internal/application/dto"
	"github.com/yerbsoft/inventario-api/internal/domain"
	"github.com/yerbsoft/inventario-api/internal/domain/entity"
	"github.com/yerbsoft/inventario-api/internal/domain/repository"
)

// GeneradorReportePDF renderiza los reportes que el servidor genera por sí
// mismo (sin PDF subido por el cliente).
type GeneradorReportePDF interface {
	ListadoProductos(productos []*entity.ProductoListado, generadoEn time.Time) ([]byte, error)
	TopSalidas(filas []*entity.TopSalida, generadoEn time.Time) ([]byte, error)
}

// ReporteUseCase archivo de reportes PDF: recibe PDFs generados por el SPA,
// genera otros en el servidor y sirve el historial y las descargas.
type ReporteUseCase struct {
	repo         repository.ReporteRepository
	productoRepo repository.ProductoRepository
	movRepo      repository.MovimientoRepository
	generador    GeneradorReportePDF
	now          func() time.Time
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(
	repo repository.ReporteRepository,
	productoRepo repository.ProductoRepository,
	movRepo repository.MovimientoRepository,
	generador GeneradorReportePDF,
) *ReporteUseCase {
	return &ReporteUseCase{
		repo:         repo,
		productoRepo: productoRepo,
		movRepo:      movRepo,
		generador:    generador,
		now:          time.Now,
	}
}

// Subir archiva un PDF generado por el cliente, codificado en base64.
func (uc *ReporteUseCase) Subir(in dto.SubirReporteRequest) (int64, error) {
	if in.Filename == "" || in.DataBase64 == "" {
		return 0, domain.ErrEntradaInvalida
	}
	datos, err := decodificarBase64(in.DataBase64)
	if err != nil {
		return 0, domain.ErrEntradaInvalida
	}
	idUsuario := in.IDUsuarioGenerador
	if idUsuario == 0 {
		idUsuario = 1
	}
	return uc.archivar(normalizarTipo(in.TipoReporte), idUsuario, in.Parametros, in.Filename, datos)
}

// Generar renderiza el PDF en el servidor según el tipo pedido y lo archiva.
func (uc *ReporteUseCase) Generar(in dto.GenerarReporteRequest) (int64, error) {
	ahora := uc.now()
	idUsuario := in.IDUsuarioGenerador
	if idUsuario == 0 {
		idUsuario = 1
	}

	var (
		datos  []byte
		sufijo string
		err    error
	)
	switch normalizarTipo(in.Tipo) {
	case entity.ReporteProductos:
		productos, errL := uc.productoRepo.ListarActivos()
		if errL != nil {
			return 0, errL
		}
		datos, err = uc.generador.ListadoProductos(productos, ahora)
		sufijo = "productos"
	case entity.ReporteProductosMayorSalida:
		filas, errL := uc.movRepo.TopSalidas(10, nil, nil)
		if errL != nil {
			return 0, errL
		}
		datos, err = uc.generador.TopSalidas(filas, ahora)
		sufijo = "mayor_salida"
	default:
		return 0, domain.ErrEntradaInvalida
	}
	if err != nil {
		return 0, fmt.Errorf("reporte: generar PDF: %w", err)
	}

	nombre := fmt.Sprintf("reporte_%s_%s.pdf", sufijo, ahora.Format("20060102_150405"))
	return uc.archivar(normalizarTipo(in.Tipo), idUsuario, in.Parametros, nombre, datos)
}

func (uc *ReporteUseCase) archivar(tipo string, idUsuario int64, parametros []byte, nombre string, datos []byte) (int64, error) {
	suma := sha256.Sum256(datos)
	return uc.repo.Insertar(&entity.Reporte{
		TipoReporte:        tipo,
		IDUsuarioGenerador: idUsuario,
		Parametros:         parametros,
		NombreArchivo:      sanitizarNombre(nombre),
		ArchivoPDF:         datos,
		TipoMIME:           "application/pdf",
		TamanoBytes:        int64(len(datos)),
		HashArchivo:        hex.EncodeToString(suma[:]),
		EstadoGeneracion:   "Completado",
	})
}

// Listar devuelve los metadatos del historial, más recientes primero.
func (uc *ReporteUseCase) Listar(limit int) ([]dto.ReporteResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	filas, err := uc.repo.Listar(limit)
	if err != nil {
		return nil, err
	}
	return aReporteResponses(filas), nil
}

// Ultimos devuelve los reportes más recientes, con filtro opcional por tipo
// y por el subtipo guardado en parametros.
func (uc *ReporteUseCase) Ultimos(limit int, tipo, subtipo string) ([]dto.ReporteResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if tipo != "" {
		tipo = normalizarTipo(tipo)
	}
	filas, err := uc.repo.ListarUltimos(limit, tipo, subtipo)
	if err != nil {
		return nil, err
	}
	return aReporteResponses(filas), nil
}

// DescargarPDF devuelve el binario archivado para servirlo como descarga.
func (uc *ReporteUseCase) DescargarPDF(id int64) (*entity.ReportePDF, error) {
	pdf, err := uc.repo.GetPDF(id)
	if err != nil {
		return nil, err
	}
	if pdf == nil {
		return nil, domain.ErrNoEncontrado
	}
	return pdf, nil
}

func aReporteResponses(filas []*entity.ReporteListado) []dto.ReporteResponse {
	out := make([]dto.ReporteResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.ReporteResponse{
			IDReporte:          f.ID,
			TipoReporte:        f.TipoReporte,
			IDUsuarioGenerador: f.IDUsuarioGenerador,
			Parametros:         f.Parametros,
			FechaGeneracion:    f.FechaGeneracion,
			NombreArchivo:      f.NombreArchivo,
			TamanoBytes:        f.TamanoBytes,
		})
	}
	return out
}

// Etiquetas históricas del SPA mapeadas al enum de la tabla. "Movimientos"
// cae en Reporte_Productos y se distingue por parametros.subtipo.
var tiposLegacy = map[string]string{
	"Inventario Actual":       entity.ReporteProductos,
	"Movimientos":             entity.ReporteProductos,
	"Reporte Estadístico":     entity.ReporteIncidencia,
	"Top Productos (Salidas)": entity.ReporteProductosMayorSalida,
}

// normalizarTipo lleva cualquier etiqueta recibida al enum permitido.
// Un tipo desconocido cae en Reporte_Productos, igual que las versiones
// anteriores del frontend.
func normalizarTipo(tipo string) string {
	switch tipo {
	case entity.ReporteProductos, entity.ReporteIncidencia, entity.ReporteProductosMayorSalida:
		return tipo
	}
	if t, ok := tiposLegacy[tipo]; ok {
		return t
	}
	return entity.ReporteProductos
}

func decodificarBase64(s string) ([]byte, error) {
	// Tolera el prefijo data-URI que mandan algunos navegadores.
	if i := strings.IndexByte(s, ','); i >= 0 && strings.Contains(s[:i], "base64") {
		s = s[i+1:]
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(s))
}

var nombreInseguro = regexp.MustCompile(`[^a-zA-Z0-9_\-.]`)

// sanitizarNombre quita diacríticos y reemplaza todo carácter fuera de
// [a-zA-Z0-9_-.] por guion bajo antes de persistir el nombre del archivo.
func sanitizarNombre(nombre string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if plano, _, err := transform.String(t, nombre); err == nil {
		nombre = plano
	}
	return nombreInseguro.ReplaceAllString(nombre, "_")
}
