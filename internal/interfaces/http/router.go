package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/yerbsoft/inventario-api/internal/application/analytics"
	"github.com/yerbsoft/inventario-api/internal/application/auth"
	"github.com/yerbsoft/inventario-api/internal/application/inventario"
	"github.com/yerbsoft/inventario-api/internal/application/usecase"
)

// DBChecker consulta mínima de conectividad, la satisface *pgxpool.Pool.
type DBChecker interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC   *usecase.ProductoUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	MarcaUC      *usecase.MarcaUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	MovimientoUC *usecase.MovimientoUseCase
	Registrar    *inventario.RegistrarMovimientoUseCase
	IncidenciaUC *usecase.IncidenciaUseCase
	ReporteUC    *usecase.ReporteUseCase
	DashboardUC  *analytics.DashboardUseCase
	AuthUC       *auth.AuthUseCase
	DB           DBChecker
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Backend Yerb Amazon funcionando"})
	})

	// Sonda de conectividad con la base de datos.
	api.Get("/test", func(c *fiber.Ctx) error {
		var result int
		if err := deps.DB.QueryRow(c.Context(), "SELECT 1+1 AS result").Scan(&result); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		return c.JSON(fiber.Map{"result": result, "message": "DB connected"})
	})

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/categorias", productoHandler.ListCategorias)
	productos.Get("/proveedores", productoHandler.ListProveedores)
	productos.Post("/", productoHandler.Create)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Categorías
	categorias := api.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	// Marcas
	marcas := api.Group("/marcas")
	marcaHandler := NewMarcaHandler(deps.MarcaUC)
	marcas.Get("/", marcaHandler.List)
	marcas.Post("/", marcaHandler.Create)
	marcas.Put("/:id", marcaHandler.Update)
	marcas.Delete("/:id", marcaHandler.Delete)

	// Movimientos de inventario
	movimientos := api.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.Registrar, deps.MovimientoUC)
	movimientos.Get("/tipos", movimientoHandler.ListTipos)
	movimientos.Get("/top-salidas", movimientoHandler.TopSalidas)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Post("/", movimientoHandler.Register)

	// Incidencias
	incidencias := api.Group("/incidencias")
	incidenciaHandler := NewIncidenciaHandler(deps.IncidenciaUC)
	incidencias.Get("/tipos", incidenciaHandler.ListTipos)
	incidencias.Get("/", incidenciaHandler.List)
	incidencias.Post("/", incidenciaHandler.Register)

	// Reportes PDF
	reportes := api.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes.Get("/", reporteHandler.List)
	reportes.Get("/ultimos", reporteHandler.Ultimos)
	reportes.Post("/upload", reporteHandler.Upload)
	reportes.Post("/generar", reporteHandler.Generar)
	reportes.Get("/:id/pdf", reporteHandler.DescargarPDF)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)

	// Usuarios. El alias modulo_user se conserva por compatibilidad
	// con el frontend existente.
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	registrarRutasUsuario(api.Group("/usuarios"), usuarioHandler)
	registrarRutasUsuario(api.Group("/modulo_user"), usuarioHandler)
}

func registrarRutasUsuario(g fiber.Router, h *UsuarioHandler) {
	g.Get("/", h.List)
	g.Get("/roles", h.ListRoles)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
