package api

import (
	"errors"
	"strings"

	"github.com/brunovieira/advocase/internal/models"
	"github.com/brunovieira/advocase/internal/services"
	"github.com/gofiber/fiber/v2"
)

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" {
		return apiError(c, fiber.StatusBadRequest, "email is required")
	}
	if input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "password is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	account, token, err := handler.authService.Register(input.Email, input.Password, input.Name, handler.now())
	if errors.Is(err, services.ErrEmailTaken) {
		return apiError(c, fiber.StatusBadRequest, "email already registered")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	return c.JSON(newAuthResponse(account, token))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	account, token, err := handler.authService.Login(strings.TrimSpace(input.Email), input.Password, now)
	if errors.Is(err, services.ErrInvalidCredentials) {
		handler.loginLimiter.recordFailure(limiterKey, now)
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to log in")
	}

	handler.loginLimiter.clear(limiterKey)
	return c.JSON(newAuthResponse(account, token))
}

func newAuthResponse(account models.Account, token string) authResponse {
	return authResponse{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
		Token: token,
	}
}
