package handler

import (
	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type WorkOrderHandler struct {
	service service.WorkOrderService
}

func NewWorkOrderHandler(s service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{service: s}
}

// GetOrders returns the partitioned work-order list
// GET /api/v1/workorders?search=
func (h *WorkOrderHandler) GetOrders(c *fiber.Ctx) error {
	view, err := h.service.GetOrders(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(view)
}

// GetOrder returns a single work order
// GET /api/v1/workorders/:id
func (h *WorkOrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	order, err := h.service.GetOrder(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Work order not found"})
	}
	return c.JSON(order)
}

// CreateOrder creates a work order
// POST /api/v1/workorders
func (h *WorkOrderHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.WorkOrder
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateOrder(&order, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Work order created", "data": order})
}

// UpdateOrder updates work order fields (not the status)
// PUT /api/v1/workorders/:id
func (h *WorkOrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	var order model.WorkOrder
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateOrder(id, &order, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Work order updated", "data": updated})
}

// UpdateStatus changes a work order's lifecycle status
// PUT /api/v1/workorders/:id/status
func (h *WorkOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateStatus(id, req.Status, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Status updated", "data": updated})
}

// DeleteOrder removes a work order
// DELETE /api/v1/workorders/:id
func (h *WorkOrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	if err := h.service.DeleteOrder(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Work order deleted"})
}
