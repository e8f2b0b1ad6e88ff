package api

import (
	"strings"

	"github.com/brunovieira/advocase/internal/models"
	"github.com/gofiber/fiber/v2"
)

type financialEntryPayload struct {
	Direction   string  `json:"direction"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
	PaymentDate string  `json:"payment_date"`
	CaseID      string  `json:"case_id"`
	ClientID    string  `json:"client_id"`
}

func (payload *financialEntryPayload) validate() string {
	if strings.TrimSpace(payload.Direction) == "" {
		return "direction is required"
	}
	if strings.TrimSpace(payload.Description) == "" {
		return "description is required"
	}
	if strings.TrimSpace(payload.Category) == "" {
		return "category is required"
	}
	if strings.TrimSpace(payload.DueDate) == "" {
		return "due_date is required"
	}
	return ""
}

func (payload *financialEntryPayload) toModel() models.FinancialEntry {
	status := payload.Status
	if status == "" {
		status = models.FinancialStatusPending
	}
	return models.FinancialEntry{
		Direction:   payload.Direction,
		Description: payload.Description,
		Amount:      payload.Amount,
		Category:    payload.Category,
		Status:      status,
		DueDate:     payload.DueDate,
		PaymentDate: payload.PaymentDate,
		CaseID:      payload.CaseID,
		ClientID:    payload.ClientID,
	}
}

func (handler *Handler) CreateFinancialEntry(c *fiber.Ctx) error {
	var payload financialEntryPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if message := payload.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	entry := payload.toModel()
	if err := handler.repositories.FinancialEntries.Create(&entry, currentAccountID(c), handler.now()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create financial entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) ListFinancialEntries(c *fiber.Ctx) error {
	entries, err := handler.repositories.FinancialEntries.ListByAccount(currentAccountID(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list financial entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetFinancialEntry(c *fiber.Ctx) error {
	entry, err := handler.repositories.FinancialEntries.FindByID(currentAccountID(c), c.Params("id"))
	if err != nil {
		return notFoundOr(c, err, "financial entry not found", "failed to fetch financial entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpdateFinancialEntry(c *fiber.Ctx) error {
	var payload financialEntryPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if message := payload.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	entry := payload.toModel()
	updated, err := handler.repositories.FinancialEntries.Update(currentAccountID(c), c.Params("id"), &entry)
	if err != nil {
		return notFoundOr(c, err, "financial entry not found", "failed to update financial entry")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteFinancialEntry(c *fiber.Ctx) error {
	if err := handler.repositories.FinancialEntries.Delete(currentAccountID(c), c.Params("id")); err != nil {
		return notFoundOr(c, err, "financial entry not found", "failed to delete financial entry")
	}
	return messageResponse(c, "financial entry deleted")
}
