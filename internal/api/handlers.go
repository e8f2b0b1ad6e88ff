package api

import (
	"time"

	"github.com/brunovieira/advocase/internal/db"
	"github.com/brunovieira/advocase/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const contextAccountKey = "account_id"

type Handler struct {
	repositories *db.Repositories
	authService  *services.AuthService
	dashboard    *services.DashboardService
	location     *time.Location
	loginLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	repositories := db.NewRepositories(database)
	return &Handler{
		repositories: repositories,
		authService:  services.NewAuthService(repositories.Accounts, []byte(secretKey)),
		dashboard: services.NewDashboardService(
			repositories.Deadlines,
			repositories.Tasks,
			repositories.Cases,
			repositories.FinancialEntries,
		),
		location:     location,
		loginLimiter: newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),
	}
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
