package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinoteca/cavastock/internal/application/inventory"
	"github.com/vinoteca/cavastock/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	InventoryQueries *inventory.QueryUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Todo el back office requiere Bearer Token;
// registrar movimientos exige además rol admin o bodeguero.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Products (catálogo)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Inventory (motor de movimientos y consultas)
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.InventoryQueries)
	invGroup.Post("/movements", RequireRole("admin", "bodeguero"), inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.RecentMovements)
	invGroup.Get("/stock", inventoryHandler.CurrentStock)
	invGroup.Get("/products/:id/movements", inventoryHandler.ProductMovements)
	invGroup.Get("/products/:id/stock", inventoryHandler.ProductWarehouseStock)
}
