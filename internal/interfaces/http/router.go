package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/hogar-api/internal/application/category"
	"github.com/jhoicas/hogar-api/internal/application/inventory"
	"github.com/jhoicas/hogar-api/internal/application/records"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *inventory.ItemUseCase
	CabinetUC  *inventory.CabinetUseCase
	TransferUC *inventory.TransferUseCase
	LedgerUC   *inventory.LedgerUseCase
	CategoryUC *category.UseCase
	RecordUC   *records.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Transfers y ledger (protegido)
	transferHandler := NewTransferHandler(deps.TransferUC, deps.LedgerUC)
	protected.Post("/transfers", transferHandler.Transfer)
	items.Get("/:id/stock", transferHandler.GetStock)

	// Cabinets (protegido)
	cabinets := protected.Group("/cabinets")
	cabinetHandler := NewCabinetHandler(deps.CabinetUC)
	cabinets.Post("/", cabinetHandler.Create)
	cabinets.Get("/", cabinetHandler.List)
	cabinets.Get("/:id", cabinetHandler.GetByID)
	cabinets.Put("/:id", cabinetHandler.Update)
	cabinets.Delete("/:id", cabinetHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Records (protegido)
	recordsGroup := protected.Group("/records")
	recordHandler := NewRecordHandler(deps.RecordUC)
	recordsGroup.Get("/", recordHandler.List)
	recordsGroup.Delete("/", recordHandler.Purge)
}
