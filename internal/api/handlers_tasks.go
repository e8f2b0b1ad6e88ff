package api

import (
	"strings"

	"github.com/brunovieira/advocase/internal/models"
	"github.com/gofiber/fiber/v2"
)

type taskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	CaseID      string `json:"case_id"`
	ClientID    string `json:"client_id"`
}

func (payload *taskPayload) validate() string {
	if strings.TrimSpace(payload.Title) == "" {
		return "title is required"
	}
	return ""
}

func (payload *taskPayload) toModel() models.Task {
	priority := payload.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	status := payload.Status
	if status == "" {
		status = models.TaskStatusTodo
	}
	return models.Task{
		Title:       payload.Title,
		Description: payload.Description,
		Date:        payload.Date,
		Priority:    priority,
		Status:      status,
		CaseID:      payload.CaseID,
		ClientID:    payload.ClientID,
	}
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	var payload taskPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if message := payload.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	task := payload.toModel()
	if err := handler.repositories.Tasks.Create(&task, currentAccountID(c), handler.now()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}
	return c.JSON(task)
}

func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	tasks, err := handler.repositories.Tasks.ListByAccount(currentAccountID(c))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list tasks")
	}
	return c.JSON(tasks)
}

func (handler *Handler) GetTask(c *fiber.Ctx) error {
	task, err := handler.repositories.Tasks.FindByID(currentAccountID(c), c.Params("id"))
	if err != nil {
		return notFoundOr(c, err, "task not found", "failed to fetch task")
	}
	return c.JSON(task)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	var payload taskPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if message := payload.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	task := payload.toModel()
	updated, err := handler.repositories.Tasks.Update(currentAccountID(c), c.Params("id"), &task)
	if err != nil {
		return notFoundOr(c, err, "task not found", "failed to update task")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	if err := handler.repositories.Tasks.Delete(currentAccountID(c), c.Params("id")); err != nil {
		return notFoundOr(c, err, "task not found", "failed to delete task")
	}
	return messageResponse(c, "task deleted")
}
