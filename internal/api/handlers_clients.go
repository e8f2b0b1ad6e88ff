package api

import (
	"strings"

	"github.com/brunovieira/advocase/internal/models"
	"github.com/gofiber/fiber/v2"
)

type clientPayload struct {
	Kind    string   `json:"kind"`
	Name    string   `json:"name"`
	TaxID   string   `json:"tax_id"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Notes   string   `json:"notes"`
	Tags    []string `json:"tags"`
}

func (payload *clientPayload) validate() string {
	if strings.TrimSpace(payload.Kind) == "" {
		return "kind is required"
	}
	if strings.TrimSpace(payload.Name) == "" {
		return "name is required"
	}
	if strings.TrimSpace(payload.TaxID) == "" {
		return "tax_id is required"
	}
	return ""
}

func (payload *clientPayload) toModel() models.Client {
	tags := payload.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Client{
		Kind:           payload.Kind,
		Name:           payload.Name,
		TaxID:          payload.TaxID,
		Phone:          payload.Phone,
		Email:          payload.Email,
		Address:        payload.Address,
		Notes:          payload.Notes,
		Tags:           tags,
		ServiceHistory: []models.HistoryEntry{},
	}
}

// historyEntryInput is shared by the client service-history and case
// timeline append endpoints.
type historyEntryInput struct {
	Description string `json:"description"`
}

func (handler *Handler) CreateClient(c *fiber.Ctx) error {
	var payload clientPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if message := payload.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	client := payload.toModel()
	if err := handler.repositories.Clients.Create(&client, currentAccountID(c), handler.now()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create client")
	}
	return c.JSON(client)
}

func (handler *Handler) ListClients(c *fiber.Ctx) error {
	clients, err := handler.repositories.Clients.ListByAccount(currentAccountID(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list clients")
	}
	return c.JSON(clients)
}

func (handler *Handler) GetClient(c *fiber.Ctx) error {
	client, err := handler.repositories.Clients.FindByID(currentAccountID(c), c.Params("id"))
	if err != nil {
		return notFoundOr(c, err, "client not found", "failed to fetch client")
	}
	return c.JSON(client)
}

func (handler *Handler) UpdateClient(c *fiber.Ctx) error {
	var payload clientPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if message := payload.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	client := payload.toModel()
	updated, err := handler.repositories.Clients.Update(currentAccountID(c), c.Params("id"), &client)
	if err != nil {
		return notFoundOr(c, err, "client not found", "failed to update client")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteClient(c *fiber.Ctx) error {
	if err := handler.repositories.Clients.Delete(currentAccountID(c), c.Params("id")); err != nil {
		return notFoundOr(c, err, "client not found", "failed to delete client")
	}
	return messageResponse(c, "client deleted")
}

func (handler *Handler) AddClientServiceHistory(c *fiber.Ctx) error {
	var input historyEntryInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(input.Description) == "" {
		return apiError(c, fiber.StatusBadRequest, "description is required")
	}

	entry := models.HistoryEntry{Description: input.Description, Timestamp: handler.now()}
	if err := handler.repositories.Clients.AppendServiceHistory(currentAccountID(c), c.Params("id"), entry); err != nil {
		return notFoundOr(c, err, "client not found", "failed to record service history")
	}
	return messageResponse(c, "service history entry added")
}
