package handler

import (
	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ScheduleHandler struct {
	service service.ScheduleService
}

func NewScheduleHandler(s service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: s}
}

// GetEvents returns events only, soonest first
// GET /api/v1/events?search=
func (h *ScheduleHandler) GetEvents(c *fiber.Ctx) error {
	events, err := h.service.GetEvents(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(events)
}

// GetCalendar returns the merged events + active work orders timeline
// GET /api/v1/calendar?search=
func (h *ScheduleHandler) GetCalendar(c *fiber.Ctx) error {
	items, err := h.service.GetCalendar(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

// CreateEvent creates an event
// POST /api/v1/events
func (h *ScheduleHandler) CreateEvent(c *fiber.Ctx) error {
	var event model.Event
	if err := c.BodyParser(&event); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateEvent(&event, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Event created", "data": event})
}

// UpdateEvent updates an event
// PUT /api/v1/events/:id
func (h *ScheduleHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid event ID"})
	}

	var event model.Event
	if err := c.BodyParser(&event); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateEvent(id, &event, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Event updated", "data": updated})
}

// DeleteEvent removes an event
// DELETE /api/v1/events/:id
func (h *ScheduleHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid event ID"})
	}

	if err := h.service.DeleteEvent(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Event deleted"})
}
