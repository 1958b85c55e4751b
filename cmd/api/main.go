package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/sobrickz-opname/internal/application/auth"
	"github.com/jhoicas/sobrickz-opname/internal/application/catalog"
	"github.com/jhoicas/sobrickz-opname/internal/application/ledger"
	"github.com/jhoicas/sobrickz-opname/internal/domain/repository"
	"github.com/jhoicas/sobrickz-opname/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/sobrickz-opname/internal/infrastructure/pdf"
	"github.com/jhoicas/sobrickz-opname/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/sobrickz-opname/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/sobrickz-opname/internal/interfaces/http"
	"github.com/jhoicas/sobrickz-opname/pkg/config"
	"github.com/jhoicas/sobrickz-opname/pkg/logger"
)

// repositories implementaciones activas según DB_DRIVER.
type repositories struct {
	items  repository.ItemRepository
	ledger repository.LedgerRepository
	users  repository.UserRepository
	close  func()
}

func openRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &repositories{items: store.Items(), ledger: store.Ledger(), users: store.Users(), close: func() {}}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		return nil, err
	}
	if err := postgres.Bootstrap(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &repositories{
		items:  postgres.NewItemRepository(pool),
		ledger: postgres.NewLedgerRepository(pool),
		users:  postgres.NewUserRepository(pool),
		close:  pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET requerido")
	}

	ctx := context.Background()
	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer repos.close()

	ledgerLog := log.Component("ledger")
	engineUC := ledger.NewEngineUseCase(repos.ledger, ledgerLog)
	reportUC := ledger.NewReportUseCase(repos.ledger, ledgerLog)
	exportUC := ledger.NewExportUseCase(reportUC, map[string]ledger.ReportRenderer{
		ledger.FormatXLSX: infraxlsx.NewRenderer(cfg.Report.Author),
		ledger.FormatPDF:  infrapdf.NewMarotoReportRenderer(cfg.Report.Author),
	}, ledgerLog)
	catalogUC := catalog.NewCatalogUseCase(repos.items, log.Component("catalog"))
	authUC := auth.NewAuthUseCase(repos.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los PDF largos tardan
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sobrickz Opname API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CatalogUC: catalogUC,
		EngineUC:  engineUC,
		ReportUC:  reportUC,
		ExportUC:  exportUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       log.Component("http"),
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
