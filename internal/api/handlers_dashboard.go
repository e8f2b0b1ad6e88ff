package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	stats, err := handler.dashboard.Summarize(currentAccountID(c), handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}
	return c.JSON(stats)
}
