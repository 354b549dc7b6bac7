package handler

import (
	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BroadcastHandler struct {
	service service.BroadcastService
}

func NewBroadcastHandler(s service.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{service: s}
}

// GetMessages lists broadcast messages, newest first
// GET /api/v1/messages?search=
func (h *BroadcastHandler) GetMessages(c *fiber.Ctx) error {
	messages, err := h.service.GetMessages(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(messages)
}

// GetMessage returns one broadcast message
// GET /api/v1/messages/:id
func (h *BroadcastHandler) GetMessage(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid message ID"})
	}

	message, err := h.service.GetMessage(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Message not found"})
	}
	return c.JSON(message)
}

// SendMessage persists and pushes a broadcast message
// POST /api/v1/messages
func (h *BroadcastHandler) SendMessage(c *fiber.Ctx) error {
	var message model.BroadcastMessage
	if err := c.BodyParser(&message); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.SendMessage(&message, getUserID(c), getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Broadcast sent", "data": message})
}

// DeleteMessage removes a broadcast message
// DELETE /api/v1/messages/:id
func (h *BroadcastHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid message ID"})
	}

	if err := h.service.DeleteMessage(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Message not found"})
	}

	return c.JSON(fiber.Map{"message": "Broadcast message deleted"})
}
