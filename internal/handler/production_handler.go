package handler

import (
	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductionHandler struct {
	service service.ProductionService
}

func NewProductionHandler(s service.ProductionService) *ProductionHandler {
	return &ProductionHandler{service: s}
}

// GetOrders returns the partitioned production list
// GET /api/v1/production?search=
func (h *ProductionHandler) GetOrders(c *fiber.Ctx) error {
	view, err := h.service.GetOrders(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(view)
}

// GetOrder returns a single production order
// GET /api/v1/production/:id
func (h *ProductionHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.service.GetOrder(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Production order not found"})
	}
	return c.JSON(order)
}

// CreateOrder creates a production order
// POST /api/v1/production
func (h *ProductionHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.ProductionOrder
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateOrder(&order, getUserID(c), getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Production order created", "data": order})
}

// UpdateOrder updates order fields (not the status)
// PUT /api/v1/production/:id
func (h *ProductionHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var order model.ProductionOrder
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateOrder(id, &order, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Production order updated", "data": updated})
}

// UpdateStatusRequest carries the new pipeline status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an order along the pipeline
// PUT /api/v1/production/:id/status
func (h *ProductionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateStatus(id, req.Status, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Status updated", "data": updated})
}

// DeleteOrder removes a production order
// DELETE /api/v1/production/:id
func (h *ProductionHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	if err := h.service.DeleteOrder(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Production order deleted"})
}

// GetPipeline returns the ordered status catalog for the progress stepper
// GET /api/v1/production/pipeline
func (h *ProductionHandler) GetPipeline(c *fiber.Ctx) error {
	type step struct {
		Status string           `json:"status"`
		Label  string           `json:"label"`
		Color  model.ColorToken `json:"color"`
	}

	steps := make([]step, len(model.ProductionPipeline))
	for i, status := range model.ProductionPipeline {
		steps[i] = step{
			Status: status,
			Label:  model.LabelFor(model.KindProductionOrder, status),
			Color:  model.ColorFor(model.KindProductionOrder, status),
		}
	}
	return c.JSON(steps)
}
