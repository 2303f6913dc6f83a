package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/fleemy/internal/models"
	"github.com/terraincognita07/fleemy/internal/services"
)

func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	clientCount, err := handler.repos.Clients.CountByOwner(user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to count clients")
	}
	pendingQuotes, pendingQuoteValue, err := handler.repos.Quotes.CountByOwnerStatus(user.UID, models.QuoteStatusSent)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to count quotes")
	}
	// Overdue invoices are still unpaid.
	unpaidInvoices, unpaidInvoiceValue, err := handler.repos.Invoices.CountByOwnerStatuses(user.UID,
		[]string{models.InvoiceStatusSent, models.InvoiceStatusOverdue})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to count invoices")
	}
	openTodos, err := handler.repos.Todos.CountOpenByOwner(user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to count todos")
	}

	year, week := services.CurrentWeek(handler.now())
	earnings, err := handler.weekEarnings(user, year, week)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute earnings")
	}

	return c.JSON(fiber.Map{
		"clients": fiber.Map{"count": clientCount},
		"quotes": fiber.Map{
			"pending_count": pendingQuotes,
			"pending_value": pendingQuoteValue,
		},
		"invoices": fiber.Map{
			"unpaid_count": unpaidInvoices,
			"unpaid_value": unpaidInvoiceValue,
		},
		"todos": fiber.Map{"open_count": openTodos},
		"week": fiber.Map{
			"year":     year,
			"week":     week,
			"earnings": earnings,
		},
	})
}
