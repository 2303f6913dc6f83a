package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/terraincognita07/fleemy/internal/models"
	"github.com/terraincognita07/fleemy/internal/security"
	"github.com/terraincognita07/fleemy/internal/services"
)

func lineItemsFromPayload(payload []lineItemPayload) ([]models.LineItem, string, bool) {
	items := make([]models.LineItem, 0, len(payload))
	for _, item := range payload {
		description := sanitizeText(item.Description)
		if description == "" {
			return nil, "line item description is required", false
		}
		if item.Quantity < 0 || item.UnitPrice < 0 {
			return nil, "line item amounts cannot be negative", false
		}
		items = append(items, models.LineItem{
			Description: description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return items, "", true
}

func (handler *Handler) documentNumber(prefix string) (string, error) {
	suffix, err := security.DocumentNumberSuffix()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%s", prefix, handler.now().Year(), suffix), nil
}

func (handler *Handler) ListQuotes(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	quotes, err := handler.repos.Quotes.ListByOwner(user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load quotes")
	}
	return c.JSON(quotes)
}

func applyQuotePayload(quote *models.Quote, input quotePayload) (string, bool) {
	title := sanitizeText(input.Title)
	if title == "" {
		return "title is required", false
	}
	items, message, ok := lineItemsFromPayload(input.Items)
	if !ok {
		return message, false
	}

	taxRate := quote.TaxRate
	if taxRate == 0 {
		taxRate = 20
	}
	if input.TaxRate != nil {
		if *input.TaxRate < 0 {
			return "tax rate cannot be negative", false
		}
		taxRate = *input.TaxRate
	}

	quote.Title = title
	quote.ClientID = sanitizeText(input.ClientID)
	quote.ClientName = sanitizeText(input.ClientName)
	quote.ValidUntil = input.ValidUntil
	quote.Items, quote.Subtotal, quote.TaxAmount, quote.Total = services.ComputeDocumentTotals(items, taxRate)
	quote.TaxRate = taxRate
	return "", true
}

func (handler *Handler) CreateQuote(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var input quotePayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	number, err := handler.documentNumber("DEV")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate quote number")
	}

	quote := models.Quote{
		QuoteID:     uuid.NewString(),
		UID:         user.UID,
		QuoteNumber: number,
		Status:      models.QuoteStatusDraft,
	}
	if message, ok := applyQuotePayload(&quote, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Quotes.Create(&quote); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create quote")
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

func (handler *Handler) UpdateQuote(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	quote, found, err := handler.repos.Quotes.FindByQuoteID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load quote")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "quote not found")
	}

	var input quotePayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if message, ok := applyQuotePayload(&quote, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Quotes.Save(&quote); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update quote")
	}
	return c.JSON(quote)
}

func (handler *Handler) UpdateQuoteStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var input statusUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if !models.IsQuoteStatus(input.Status) {
		return apiError(c, fiber.StatusBadRequest, "unknown status")
	}

	updated, err := handler.repos.Quotes.UpdateStatus(c.Params("id"), user.UID, input.Status)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update status")
	}
	if updated == 0 {
		return apiError(c, fiber.StatusNotFound, "quote not found")
	}
	return c.JSON(fiber.Map{"status": input.Status})
}

func (handler *Handler) QuoteDocument(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	quote, found, err := handler.repos.Quotes.FindByQuoteID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load quote")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "quote not found")
	}

	return handler.renderDocument(c, documentView{
		Kind:       "Devis",
		Number:     quote.QuoteNumber,
		IssuerName: user.Name,
		ClientName: quote.ClientName,
		Title:      quote.Title,
		Items:      quote.Items,
		TaxRate:    quote.TaxRate,
		Subtotal:   quote.Subtotal,
		TaxAmount:  quote.TaxAmount,
		Total:      quote.Total,
		Status:     quote.Status,
		IssuedAt:   quote.CreatedAt,
		Deadline:   quote.ValidUntil,
	})
}
