package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	_ "github.com/yerbsoft/inventario-api/docs" // registro swagger generado
	"github.com/yerbsoft/inventario-api/internal/application/analytics"
	"github.com/yerbsoft/inventario-api/internal/application/auth"
	"github.com/yerbsoft/inventario-api/internal/application/inventario"
	"github.com/yerbsoft/inventario-api/internal/application/usecase"
	infrapdf "github.com/yerbsoft/inventario-api/internal/infrastructure/pdf"
	"github.com/yerbsoft/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/yerbsoft/inventario-api/internal/interfaces/http"
	"github.com/yerbsoft/inventario-api/pkg/config"
	"github.com/yerbsoft/inventario-api/pkg/logger"
)

func main() {
	// Los montos y cantidades viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	marcaRepo := postgres.NewMarcaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	tipoMovRepo := postgres.NewTipoMovimientoRepository(pool)
	incidenciaRepo := postgres.NewIncidenciaRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productoUC := usecase.NewProductoUseCase(productoRepo, categoriaRepo, marcaRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	marcaUC := usecase.NewMarcaUseCase(marcaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	movimientoUC := usecase.NewMovimientoUseCase(movimientoRepo, tipoMovRepo)
	registrarUC := inventario.NewRegistrarMovimientoUseCase(txRunner)
	incidenciaUC := usecase.NewIncidenciaUseCase(incidenciaRepo, txRunner)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reporteUC := usecase.NewReporteUseCase(reporteRepo, productoRepo, movimientoRepo, pdfGenerator)

	statsCache := analytics.NewStatsCache(time.Duration(cfg.Dashboard.CacheTTLSeconds) * time.Second)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo, statsCache)

	tareas := auth.NewGoroutineRunner(log)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, tareas, log)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Los PDFs suben en base64 dentro del JSON.
		BodyLimit:    20 * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(httpRouter.LoggingMiddleware(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:   productoUC,
		CategoriaUC:  categoriaUC,
		MarcaUC:      marcaUC,
		UsuarioUC:    usuarioUC,
		MovimientoUC: movimientoUC,
		Registrar:    registrarUC,
		IncidenciaUC: incidenciaUC,
		ReporteUC:    reporteUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		DB:           pool,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
