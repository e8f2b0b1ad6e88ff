package api

import (
	"strings"

	"github.com/brunovieira/advocase/internal/models"
	"github.com/gofiber/fiber/v2"
)

type casePayload struct {
	Title         string `json:"title"`
	PracticeArea  string `json:"practice_area"`
	ProcessNumber string `json:"process_number"`
	Court         string `json:"court"`
	Division      string `json:"division"`
	District      string `json:"district"`
	Parties       string `json:"parties"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	NextAction    string `json:"next_action"`
	ClientID      string `json:"client_id"`
}

func (payload *casePayload) validate() string {
	if strings.TrimSpace(payload.Title) == "" {
		return "title is required"
	}
	if strings.TrimSpace(payload.PracticeArea) == "" {
		return "practice_area is required"
	}
	if strings.TrimSpace(payload.ClientID) == "" {
		return "client_id is required"
	}
	return ""
}

func (payload *casePayload) toModel() models.Case {
	status := payload.Status
	if status == "" {
		status = models.CaseStatusNew
	}
	priority := payload.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	return models.Case{
		Title:         payload.Title,
		PracticeArea:  payload.PracticeArea,
		ProcessNumber: payload.ProcessNumber,
		Court:         payload.Court,
		Division:      payload.Division,
		District:      payload.District,
		Parties:       payload.Parties,
		Status:        status,
		Priority:      priority,
		NextAction:    payload.NextAction,
		ClientID:      payload.ClientID,
		Timeline:      []models.HistoryEntry{},
		Attachments:   []string{},
	}
}

func (handler *Handler) CreateCase(c *fiber.Ctx) error {
	var payload casePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if message := payload.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	legalCase := payload.toModel()
	if err := handler.repositories.Cases.Create(&legalCase, currentAccountID(c), handler.now()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create case")
	}
	return c.JSON(legalCase)
}

func (handler *Handler) ListCases(c *fiber.Ctx) error {
	cases, err := handler.repositories.Cases.ListByAccount(currentAccountID(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list cases")
	}
	return c.JSON(cases)
}

func (handler *Handler) GetCase(c *fiber.Ctx) error {
	legalCase, err := handler.repositories.Cases.FindByID(currentAccountID(c), c.Params("id"))
	if err != nil {
		return notFoundOr(c, err, "case not found", "failed to fetch case")
	}
	return c.JSON(legalCase)
}

func (handler *Handler) UpdateCase(c *fiber.Ctx) error {
	var payload casePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if message := payload.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	legalCase := payload.toModel()
	updated, err := handler.repositories.Cases.Update(currentAccountID(c), c.Params("id"), &legalCase)
	if err != nil {
		return notFoundOr(c, err, "case not found", "failed to update case")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteCase(c *fiber.Ctx) error {
	if err := handler.repositories.Cases.Delete(currentAccountID(c), c.Params("id")); err != nil {
		return notFoundOr(c, err, "case not found", "failed to delete case")
	}
	return messageResponse(c, "case deleted")
}

func (handler *Handler) AddCaseTimelineEntry(c *fiber.Ctx) error {
	var input historyEntryInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(input.Description) == "" {
		return apiError(c, fiber.StatusBadRequest, "description is required")
	}

	entry := models.HistoryEntry{Description: input.Description, Timestamp: handler.now()}
	if err := handler.repositories.Cases.AppendTimeline(currentAccountID(c), c.Params("id"), entry); err != nil {
		return notFoundOr(c, err, "case not found", "failed to record timeline entry")
	}
	return messageResponse(c, "timeline entry added")
}
