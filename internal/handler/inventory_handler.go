package handler

import (
	"errors"

	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/report"
	"go-glassfloor-ws/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetItems lists inventory items with the derived low-stock flag
// GET /api/v1/inventory?search=
func (h *InventoryHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.service.GetItems(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

// GetItem returns one inventory item
// GET /api/v1/inventory/:id
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Inventory item not found"})
	}
	return c.JSON(item)
}

// CreateItem creates an inventory item
// POST /api/v1/inventory
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var item model.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateItem(&item, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Inventory item created", "data": item})
}

// UpdateItem updates item metadata (stock moves through /adjust)
// PUT /api/v1/inventory/:id
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var item model.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateItem(id, &item, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Inventory item updated", "data": updated})
}

// DeleteItem removes an inventory item
// DELETE /api/v1/inventory/:id
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	if err := h.service.DeleteItem(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Inventory item deleted"})
}

// AdjustStockRequest moves stock by a delta (negative allowed)
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// AdjustStock applies a stock delta and appends one ledger entry
// POST /api/v1/inventory/:id/adjust
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var req AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Delta == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Delta must be non-zero"})
	}

	item, err := h.service.AdjustStock(id, req.Delta, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Stock adjusted", "data": item})
}

// SetStockCountRequest overwrites stock with a physical count result
type SetStockCountRequest struct {
	NewValue int `json:"new_value"`
}

// SetStockCount records a full stock count
// POST /api/v1/inventory/:id/count
func (h *InventoryHandler) SetStockCount(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var req SetStockCountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.SetStockCount(id, req.NewValue, getUserID(c), getUserName(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Stock count recorded", "data": item})
}

// GetItemHistory returns the append-only adjustment ledger for an item
// GET /api/v1/inventory/:id/history
func (h *InventoryHandler) GetItemHistory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	entries, err := h.service.GetItemHistory(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}

// GetGroups lists inventory groups
// GET /api/v1/inventory-groups
func (h *InventoryHandler) GetGroups(c *fiber.Ctx) error {
	groups, err := h.service.GetGroups()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(groups)
}

// CreateGroup creates an inventory group
// POST /api/v1/inventory-groups
func (h *InventoryHandler) CreateGroup(c *fiber.Ctx) error {
	var group model.InventoryGroup
	if err := c.BodyParser(&group); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateGroup(&group, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Group created", "data": group})
}

// BuildReport assembles the inventory report for an optional supplier or
// group filter
// GET /api/v1/inventory/report?supplier=&group_id=&client_name=
func (h *InventoryHandler) BuildReport(c *fiber.Ctx) error {
	filter := service.ReportFilter{
		Supplier:   c.Query("supplier"),
		ClientName: c.Query("client_name"),
	}
	if raw := c.Query("group_id"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid group ID"})
		}
		filter.GroupID = &groupID
	}

	doc, err := h.service.BuildReport(filter)
	if err != nil {
		if errors.Is(err, report.ErrEmptyReport) {
			return c.Status(404).JSON(fiber.Map{"error": "No items match the report filter"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(doc)
}
