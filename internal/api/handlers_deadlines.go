package api

import (
	"strings"

	"github.com/brunovieira/advocase/internal/models"
	"github.com/gofiber/fiber/v2"
)

type deadlinePayload struct {
	Kind            string `json:"kind"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Description     string `json:"description"`
	CaseID          string `json:"case_id"`
	ClientID        string `json:"client_id"`
	ReminderOffsets []int  `json:"reminder_offsets"`
}

func (payload *deadlinePayload) validate() string {
	if strings.TrimSpace(payload.Kind) == "" {
		return "kind is required"
	}
	if strings.TrimSpace(payload.Title) == "" {
		return "title is required"
	}
	if strings.TrimSpace(payload.Date) == "" {
		return "date is required"
	}
	if strings.TrimSpace(payload.Time) == "" {
		return "time is required"
	}
	return ""
}

func (payload *deadlinePayload) toModel() models.Deadline {
	offsets := payload.ReminderOffsets
	if offsets == nil {
		offsets = models.DefaultReminderOffsets()
	}
	return models.Deadline{
		Kind:            payload.Kind,
		Title:           payload.Title,
		Date:            payload.Date,
		Time:            payload.Time,
		Description:     payload.Description,
		CaseID:          payload.CaseID,
		ClientID:        payload.ClientID,
		ReminderOffsets: offsets,
	}
}

func (handler *Handler) CreateDeadline(c *fiber.Ctx) error {
	var payload deadlinePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if message := payload.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	deadline := payload.toModel()
	if err := handler.repositories.Deadlines.Create(&deadline, currentAccountID(c), handler.now()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create deadline")
	}
	return c.JSON(deadline)
}

func (handler *Handler) ListDeadlines(c *fiber.Ctx) error {
	deadlines, err := handler.repositories.Deadlines.ListByAccount(currentAccountID(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list deadlines")
	}
	return c.JSON(deadlines)
}

func (handler *Handler) GetDeadline(c *fiber.Ctx) error {
	deadline, err := handler.repositories.Deadlines.FindByID(currentAccountID(c), c.Params("id"))
	if err != nil {
		return notFoundOr(c, err, "deadline not found", "failed to fetch deadline")
	}
	return c.JSON(deadline)
}

func (handler *Handler) UpdateDeadline(c *fiber.Ctx) error {
	var payload deadlinePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if message := payload.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	deadline := payload.toModel()
	updated, err := handler.repositories.Deadlines.Update(currentAccountID(c), c.Params("id"), &deadline)
	if err != nil {
		return notFoundOr(c, err, "deadline not found", "failed to update deadline")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteDeadline(c *fiber.Ctx) error {
	if err := handler.repositories.Deadlines.Delete(currentAccountID(c), c.Params("id")); err != nil {
		return notFoundOr(c, err, "deadline not found", "failed to delete deadline")
	}
	return messageResponse(c, "deadline deleted")
}
