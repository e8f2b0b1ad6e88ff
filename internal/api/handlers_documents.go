package api

import (
	"strings"

	"github.com/brunovieira/advocase/internal/models"
	"github.com/gofiber/fiber/v2"
)

type documentPayload struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	ContentBase64 string `json:"content_base64"`
	CaseID        string `json:"case_id"`
	ClientID      string `json:"client_id"`
}

func (payload *documentPayload) validate() string {
	if strings.TrimSpace(payload.Name) == "" {
		return "name is required"
	}
	if strings.TrimSpace(payload.Type) == "" {
		return "type is required"
	}
	if payload.ContentBase64 == "" {
		return "content_base64 is required"
	}
	return ""
}

func (handler *Handler) CreateDocument(c *fiber.Ctx) error {
	var payload documentPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if message := payload.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	document := models.Document{
		Name:          payload.Name,
		Type:          payload.Type,
		ContentBase64: payload.ContentBase64,
		CaseID:        payload.CaseID,
		ClientID:      payload.ClientID,
	}
	if err := handler.repositories.Documents.Create(&document, currentAccountID(c), handler.now()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create document")
	}
	return c.JSON(document)
}

// ListDocuments supports optional case_id / client_id query filters.
func (handler *Handler) ListDocuments(c *fiber.Ctx) error {
	documents, err := handler.repositories.Documents.ListFiltered(
		currentAccountID(c),
		strings.TrimSpace(c.Query("case_id")),
		strings.TrimSpace(c.Query("client_id")),
	)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list documents")
	}
	return c.JSON(documents)
}

func (handler *Handler) DeleteDocument(c *fiber.Ctx) error {
	if err := handler.repositories.Documents.Delete(currentAccountID(c), c.Params("id")); err != nil {
		return notFoundOr(c, err, "document not found", "failed to delete document")
	}
	return messageResponse(c, "document deleted")
}
