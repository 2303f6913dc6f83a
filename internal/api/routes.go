package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the JSON API under /api.
func (handler *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired(), handler.Me)
	auth.Put("/me", handler.AuthRequired(), handler.UpdateMe)

	teams := api.Group("/teams", handler.AuthRequired())
	teams.Post("/", handler.CreateTeam)
	teams.Get("/my", handler.MyTeam)
	teams.Post("/:id/members", handler.AddTeamMember)

	planning := api.Group("/planning", handler.AuthRequired())
	planning.Post("/events", handler.CreateEvent)
	planning.Put("/events/:id", handler.UpdateEvent)
	planning.Delete("/events/:id", handler.DeleteEvent)
	planning.Delete("/week/:year/:week/events", handler.DeleteWeekEvents)
	planning.Post("/tasks", handler.CreateTask)
	planning.Put("/tasks/:id", handler.UpdateTask)
	planning.Delete("/tasks/:id", handler.DeleteTask)
	planning.Get("/week/:year/:week", handler.GetWeekPlanning)
	planning.Get("/month/:year/:month", handler.GetMonthPlanning)
	planning.Get("/earnings/:year/:week", handler.GetWeekEarnings)

	clients := api.Group("/clients", handler.AuthRequired())
	clients.Get("/", handler.ListClients)
	clients.Post("/", handler.CreateClient)
	clients.Put("/:id", handler.UpdateClient)
	clients.Delete("/:id", handler.DeleteClient)

	quotes := api.Group("/quotes", handler.AuthRequired())
	quotes.Get("/", handler.ListQuotes)
	quotes.Post("/", handler.CreateQuote)
	quotes.Put("/:id/status", handler.UpdateQuoteStatus)
	quotes.Get("/:id/document", handler.QuoteDocument)
	quotes.Put("/:id", handler.UpdateQuote)

	invoices := api.Group("/invoices", handler.AuthRequired())
	invoices.Get("/", handler.ListInvoices)
	invoices.Post("/", handler.CreateInvoice)
	invoices.Put("/:id/status", handler.UpdateInvoiceStatus)
	invoices.Get("/:id/document", handler.InvoiceDocument)
	invoices.Put("/:id", handler.UpdateInvoice)

	todos := api.Group("/todos", handler.AuthRequired())
	todos.Get("/", handler.ListTodos)
	todos.Post("/", handler.CreateTodo)
	todos.Put("/:id/toggle", handler.ToggleTodo)
	todos.Put("/:id", handler.UpdateTodo)
	todos.Delete("/:id", handler.DeleteTodo)

	api.Get("/dashboard", handler.AuthRequired(), handler.Dashboard)
}
