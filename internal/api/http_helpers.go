package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func messageResponse(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

// notFoundOr maps a missing record to 404 and anything else to a generic
// 500 without leaking storage detail.
func notFoundOr(c *fiber.Ctx, err error, notFoundMessage string, failureMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, notFoundMessage)
	}
	return apiError(c, fiber.StatusInternalServerError, failureMessage)
}

func currentAccountID(c *fiber.Ctx) string {
	accountID, _ := c.Locals(contextAccountKey).(string)
	return accountID
}
