package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vinoteca/cavastock/internal/application/dto"
	"github.com/vinoteca/cavastock/internal/application/inventory"
	"github.com/vinoteca/cavastock/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del motor de inventario (protegido).
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	queries  *inventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterMovementUseCase, queries *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, queries: queries}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, type (entrada|saida|ajuste), quantity, reason?, warehouse_id?"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.register.RegisterMovement(c.Context(), inventory.MovementInput{
		ProductID:    in.ProductID,
		WarehouseID:  in.WarehouseID,
		MovementType: in.Type,
		Quantity:     in.Quantity,
		Reason:       in.Reason,
	})
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// movementError traduce la taxonomía de errores del motor a respuestas HTTP.
// ErrNegativeStock cae en el 500 genérico: es una falla de aserción, no un caso de negocio.
func movementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrWarehouseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "WAREHOUSE_NOT_FOUND", Message: "bodega no encontrada"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno; el movimiento no se aplicó"})
	}
}

// CurrentStock godoc
// @Summary      Stock actual por producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.CurrentStockResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) CurrentStock(c *fiber.Ctx) error {
	out, err := h.queries.CurrentStock(c.Context(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RecentMovements godoc
// @Summary      Movimientos recientes
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite (máx 100)"  default(20)
// @Success      200    {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) RecentMovements(c *fiber.Ctx) error {
	out, err := h.queries.RecentMovements(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProductMovements godoc
// @Summary      Historial de movimientos de un producto (orden de creación)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/inventory/products/{id}/movements [get]
func (h *InventoryHandler) ProductMovements(c *fiber.Ctx) error {
	out, err := h.queries.ProductMovements(c.Context(), c.Params("id"), c.QueryInt("limit", 0), c.QueryInt("offset", 0))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(out)
}

// ProductWarehouseStock godoc
// @Summary      Stock de un producto desglosado por bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.WarehouseStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/stock [get]
func (h *InventoryHandler) ProductWarehouseStock(c *fiber.Ctx) error {
	out, err := h.queries.ProductWarehouseStock(c.Context(), c.Params("id"))
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(out)
}
