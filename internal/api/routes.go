package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	clients := api.Group("/clients", handler.AuthRequired)
	clients.Post("", handler.CreateClient)
	clients.Get("", handler.ListClients)
	clients.Get("/:id", handler.GetClient)
	clients.Put("/:id", handler.UpdateClient)
	clients.Delete("/:id", handler.DeleteClient)
	clients.Post("/:id/service-history", handler.AddClientServiceHistory)

	cases := api.Group("/cases", handler.AuthRequired)
	cases.Post("", handler.CreateCase)
	cases.Get("", handler.ListCases)
	cases.Get("/:id", handler.GetCase)
	cases.Put("/:id", handler.UpdateCase)
	cases.Delete("/:id", handler.DeleteCase)
	cases.Post("/:id/timeline", handler.AddCaseTimelineEntry)

	deadlines := api.Group("/deadlines", handler.AuthRequired)
	deadlines.Post("", handler.CreateDeadline)
	deadlines.Get("", handler.ListDeadlines)
	deadlines.Get("/:id", handler.GetDeadline)
	deadlines.Put("/:id", handler.UpdateDeadline)
	deadlines.Delete("/:id", handler.DeleteDeadline)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Post("", handler.CreateTask)
	tasks.Get("", handler.ListTasks)
	tasks.Get("/:id", handler.GetTask)
	tasks.Put("/:id", handler.UpdateTask)
	tasks.Delete("/:id", handler.DeleteTask)

	// Documents expose no single-get and no update endpoint.
	documents := api.Group("/documents", handler.AuthRequired)
	documents.Post("", handler.CreateDocument)
	documents.Get("", handler.ListDocuments)
	documents.Delete("/:id", handler.DeleteDocument)

	financial := api.Group("/financial-entries", handler.AuthRequired)
	financial.Post("", handler.CreateFinancialEntry)
	financial.Get("", handler.ListFinancialEntries)
	financial.Get("/:id", handler.GetFinancialEntry)
	financial.Put("/:id", handler.UpdateFinancialEntry)
	financial.Delete("/:id", handler.DeleteFinancialEntry)

	api.Get("/dashboard", handler.AuthRequired, handler.GetDashboard)
}
