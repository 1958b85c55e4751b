package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/sobrickz-opname/internal/application/auth"
	"github.com/jhoicas/sobrickz-opname/internal/application/catalog"
	"github.com/jhoicas/sobrickz-opname/internal/application/ledger"
	"github.com/jhoicas/sobrickz-opname/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *catalog.CatalogUseCase
	EngineUC  *ledger.EngineUseCase
	ReportUC  *ledger.ReportUseCase
	ExportUC  *ledger.ExportUseCase
	JWTSecret string
	Log       zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)
	anyOperator := RequireRole(entity.RoleAdmin, entity.RolePetugas)

	// Auth: login público, registro solo admin
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), anyOperator)

	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.CatalogUC, deps.Log)
	items.Get("/", itemHandler.List)
	items.Post("/", adminOnly, itemHandler.Create)
	items.Delete("/:name", adminOnly, itemHandler.Delete)

	// Libro de conteos: /api/ledger/floor/... y /api/ledger/warehouse/...
	lg := protected.Group("/ledger/:stream")
	ledgerHandler := NewLedgerHandler(deps.EngineUC, deps.ReportUC, deps.ExportUC, deps.Log)
	lg.Get("/opening-default", ledgerHandler.OpeningDefault)
	lg.Post("/preview", ledgerHandler.Preview)
	lg.Post("/entries", ledgerHandler.RecordEntry)
	lg.Get("/entries", ledgerHandler.ListEntries)
	lg.Delete("/entries/:id", adminOnly, ledgerHandler.DeleteEntry)
	lg.Get("/export", ledgerHandler.Export)
	lg.Get("/summary", ledgerHandler.Summary)
}
