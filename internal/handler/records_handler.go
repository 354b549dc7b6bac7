package handler

import (
	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RecordsHandler struct {
	service service.RecordsService
}

func NewRecordsHandler(s service.RecordsService) *RecordsHandler {
	return &RecordsHandler{service: s}
}

// GetMaintenance returns the partitioned maintenance list
// GET /api/v1/maintenance?search=
func (h *RecordsHandler) GetMaintenance(c *fiber.Ctx) error {
	view, err := h.service.GetMaintenance(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(view)
}

// CreateMaintenance creates a maintenance record
// POST /api/v1/maintenance
func (h *RecordsHandler) CreateMaintenance(c *fiber.Ctx) error {
	var record model.MaintenanceRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateMaintenance(&record, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Maintenance record created", "data": record})
}

// UpdateMaintenanceStatus moves a maintenance record's lifecycle
// PUT /api/v1/maintenance/:id/status
func (h *RecordsHandler) UpdateMaintenanceStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateMaintenanceStatus(id, req.Status, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Status updated", "data": updated})
}

// DeleteMaintenance removes a maintenance record
// DELETE /api/v1/maintenance/:id
func (h *RecordsHandler) DeleteMaintenance(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	if err := h.service.DeleteMaintenance(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Maintenance record deleted"})
}

// GetTraining returns the partitioned training list
// GET /api/v1/training?search=
func (h *RecordsHandler) GetTraining(c *fiber.Ctx) error {
	view, err := h.service.GetTraining(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(view)
}

// CreateTraining creates a training record
// POST /api/v1/training
func (h *RecordsHandler) CreateTraining(c *fiber.Ctx) error {
	var record model.TrainingRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateTraining(&record, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Training record created", "data": record})
}

// UpdateTrainingStatus moves a training record's lifecycle
// PUT /api/v1/training/:id/status
func (h *RecordsHandler) UpdateTrainingStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateTrainingStatus(id, req.Status, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Status updated", "data": updated})
}

// DeleteTraining removes a training record
// DELETE /api/v1/training/:id
func (h *RecordsHandler) DeleteTraining(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	if err := h.service.DeleteTraining(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Training record deleted"})
}
