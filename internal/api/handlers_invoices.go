package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/terraincognita07/fleemy/internal/models"
	"github.com/terraincognita07/fleemy/internal/services"
)

func (handler *Handler) ListInvoices(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	invoices, err := handler.repos.Invoices.ListByOwner(user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load invoices")
	}
	return c.JSON(invoices)
}

func applyInvoicePayload(invoice *models.Invoice, input invoicePayload) (string, bool) {
	title := sanitizeText(input.Title)
	if title == "" {
		return "title is required", false
	}
	items, message, ok := lineItemsFromPayload(input.Items)
	if !ok {
		return message, false
	}

	taxRate := invoice.TaxRate
	if taxRate == 0 {
		taxRate = 20
	}
	if input.TaxRate != nil {
		if *input.TaxRate < 0 {
			return "tax rate cannot be negative", false
		}
		taxRate = *input.TaxRate
	}

	invoice.Title = title
	invoice.QuoteID = sanitizeText(input.QuoteID)
	invoice.ClientID = sanitizeText(input.ClientID)
	invoice.ClientName = sanitizeText(input.ClientName)
	invoice.DueDate = input.DueDate
	invoice.Items, invoice.Subtotal, invoice.TaxAmount, invoice.Total = services.ComputeDocumentTotals(items, taxRate)
	invoice.TaxRate = taxRate
	return "", true
}

func (handler *Handler) CreateInvoice(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var input invoicePayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if quoteID := sanitizeText(input.QuoteID); quoteID != "" {
		_, found, err := handler.repos.Quotes.FindByQuoteID(quoteID, user.UID)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load quote")
		}
		if !found {
			return apiError(c, fiber.StatusBadRequest, "unknown quote")
		}
	}

	number, err := handler.documentNumber("FAC")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to generate invoice number")
	}

	invoice := models.Invoice{
		InvoiceID:     uuid.NewString(),
		UID:           user.UID,
		InvoiceNumber: number,
		Status:        models.InvoiceStatusDraft,
	}
	if message, ok := applyInvoicePayload(&invoice, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Invoices.Create(&invoice); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create invoice")
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

func (handler *Handler) UpdateInvoice(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	invoice, found, err := handler.repos.Invoices.FindByInvoiceID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load invoice")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "invoice not found")
	}

	var input invoicePayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if message, ok := applyInvoicePayload(&invoice, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Invoices.Save(&invoice); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update invoice")
	}
	return c.JSON(invoice)
}

func (handler *Handler) UpdateInvoiceStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var input statusUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if !models.IsInvoiceStatus(input.Status) {
		return apiError(c, fiber.StatusBadRequest, "unknown status")
	}

	updated, err := handler.repos.Invoices.UpdateStatus(c.Params("id"), user.UID, input.Status)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update status")
	}
	if updated == 0 {
		return apiError(c, fiber.StatusNotFound, "invoice not found")
	}
	return c.JSON(fiber.Map{"status": input.Status})
}

func (handler *Handler) InvoiceDocument(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	invoice, found, err := handler.repos.Invoices.FindByInvoiceID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load invoice")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "invoice not found")
	}

	return handler.renderDocument(c, documentView{
		Kind:       "Facture",
		Number:     invoice.InvoiceNumber,
		IssuerName: user.Name,
		ClientName: invoice.ClientName,
		Title:      invoice.Title,
		Items:      invoice.Items,
		TaxRate:    invoice.TaxRate,
		Subtotal:   invoice.Subtotal,
		TaxAmount:  invoice.TaxAmount,
		Total:      invoice.Total,
		Status:     invoice.Status,
		IssuedAt:   invoice.CreatedAt,
		Deadline:   invoice.DueDate,
	})
}
