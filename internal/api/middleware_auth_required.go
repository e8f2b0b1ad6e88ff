package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired authenticates the Bearer token and stores the account id in
// the request context. Missing, malformed and expired tokens all produce
// the same 401.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rawToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	accountID, err := handler.authService.Authenticate(rawToken)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextAccountKey, accountID)
	return c.Next()
}
