package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-tool-api/internal/application/dto"
	"github.com/jhoicas/inventory-tool-api/internal/application/inventory"
	"github.com/jhoicas/inventory-tool-api/internal/domain"
	"github.com/jhoicas/inventory-tool-api/pkg/logger"
)

// InventoryHandler maneja disponibilidad, reservas y recepciones (protegido por x-api-key).
type InventoryHandler struct {
	svc     *inventory.Service
	metrics *Metrics
	log     *logger.Logger
}

// NewInventoryHandler construye el handler. metrics puede ser nil.
func NewInventoryHandler(svc *inventory.Service, metrics *Metrics, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, metrics: metrics, log: log}
}

// GetAvailability godoc
// @Summary      Disponibilidad de un producto
// @Tags         inventory
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del producto (> 0)"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /inventory/{id} [get]
func (h *InventoryHandler) GetAvailability(c *fiber.Ctx) error {
	id, err := productIDParam(c)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	item, err := h.svc.GetAvailability(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err, "producto no encontrado")
	}
	return c.JSON(inventory.ToItemResponse(item))
}

// Reserve godoc
// @Summary      Reservar existencia
// @Tags         inventory
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del producto (> 0)"
// @Param        qty  path  int  true  "Cantidad a reservar (> 0)"
// @Success      200  {object}  dto.StockChangeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /inventory/reserve/{id}/{qty} [post]
func (h *InventoryHandler) Reserve(c *fiber.Ctx) error {
	return h.stockChange(c, "reserved", h.svc.Reserve)
}

// Receive godoc
// @Summary      Registrar recepción de mercancía
// @Tags         inventory
// @Security     ApiKey
// @Produce      json
// @Param        id   path  int  true  "ID del producto (> 0)"
// @Param        qty  path  int  true  "Cantidad recibida (> 0)"
// @Success      200  {object}  dto.StockChangeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /inventory/receive/{id}/{qty} [post]
func (h *InventoryHandler) Receive(c *fiber.Ctx) error {
	return h.stockChange(c, "received", h.svc.ReceiveShipment)
}

func (h *InventoryHandler) stockChange(c *fiber.Ctx, status string, op func(context.Context, int64, int) error) error {
	id, err := productIDParam(c)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	qty, err := strconv.Atoi(c.Params("qty"))
	if err != nil {
		return respondError(c, h.log, domain.ErrInvalidInput, "")
	}
	err = op(c.UserContext(), id, qty)
	h.metrics.ObserveStockChange(status, err)
	if err != nil {
		return respondError(c, h.log, err, "producto no encontrado")
	}
	return c.JSON(dto.StockChangeResponse{Status: status, ProductID: id, Qty: qty})
}

// productIDParam lee :id como entero; cualquier valor no numérico es entrada inválida.
func productIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}
