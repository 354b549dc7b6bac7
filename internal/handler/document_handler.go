package handler

import (
	"go-glassfloor-ws/internal/model"
	"go-glassfloor-ws/internal/repository"
	"go-glassfloor-ws/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler works straight against the repository; the document
// library has no business rules beyond validation.
type DocumentHandler struct {
	docRepo repository.DocumentRepository
}

func NewDocumentHandler(docRepo repository.DocumentRepository) *DocumentHandler {
	return &DocumentHandler{docRepo: docRepo}
}

// GetDocuments lists documents, optionally by category
// GET /api/v1/documents?category=
func (h *DocumentHandler) GetDocuments(c *fiber.Ctx) error {
	var (
		docs []model.Document
		err  error
	)
	if category := c.Query("category"); category != "" {
		docs, err = h.docRepo.FindByCategory(category)
	} else {
		docs, err = h.docRepo.FindAll()
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch documents"})
	}
	return c.JSON(docs)
}

// CreateDocument stores a document metadata record
// POST /api/v1/documents
func (h *DocumentHandler) CreateDocument(c *fiber.Ctx) error {
	var doc model.Document
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&doc); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + errs[0].FailedField})
	}

	doc.CreatedBy = getUserID(c)
	doc.UpdatedBy = getUserID(c)

	if err := h.docRepo.Create(&doc); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store document"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Document stored", "data": doc})
}

// DeleteDocument removes a document metadata record
// DELETE /api/v1/documents/:id
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document ID"})
	}

	if _, err := h.docRepo.FindByID(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Document not found"})
	}

	if err := h.docRepo.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete document"})
	}

	return c.JSON(fiber.Map{"message": "Document deleted"})
}
