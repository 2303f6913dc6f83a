package api

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func quoteBody() map[string]any {
	return map[string]any{
		"client_name": "ACME",
		"title":       "Website overhaul",
		"tax_rate":    20,
		"items": []map[string]any{
			{"description": "Design", "quantity": 2, "unit_price": 400},
			{"description": "Development", "quantity": 5, "unit_price": 500},
		},
	}
}

func TestCreateQuoteComputesTotalsServerSide(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "biller")

	body := quoteBody()
	// Client-sent totals must be ignored.
	body["subtotal"] = 1.0
	body["total"] = 1.0

	quote := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/quotes/", token, body), fiber.StatusCreated)

	if quote["subtotal"] != 3300.0 || quote["tax_amount"] != 660.0 || quote["total"] != 3960.0 {
		t.Fatalf("unexpected totals: %v %v %v", quote["subtotal"], quote["tax_amount"], quote["total"])
	}
	if quote["status"] != "draft" {
		t.Fatalf("expected draft status, got %v", quote["status"])
	}
	number := quote["quote_number"].(string)
	if !strings.HasPrefix(number, "DEV-") {
		t.Fatalf("expected DEV- prefixed number, got %s", number)
	}
}

func TestDocumentsRejectNegativeTaxRate(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "biller")

	body := quoteBody()
	body["tax_rate"] = -5
	readAPIError(t, app, jsonRequest(t, http.MethodPost, "/api/quotes/", token, body), fiber.StatusBadRequest)
	readAPIError(t, app, jsonRequest(t, http.MethodPost, "/api/invoices/", token, body), fiber.StatusBadRequest)
}

func TestQuoteStatusTransitions(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "biller")

	quote := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/quotes/", token, quoteBody()), fiber.StatusCreated)
	quoteID := quote["id"].(string)

	doJSON(t, app, jsonRequest(t, http.MethodPut, "/api/quotes/"+quoteID+"/status", token,
		map[string]any{"status": "sent"}), fiber.StatusOK)
	readAPIError(t, app, jsonRequest(t, http.MethodPut, "/api/quotes/"+quoteID+"/status", token,
		map[string]any{"status": "paid"}), fiber.StatusBadRequest)
	readAPIError(t, app, jsonRequest(t, http.MethodPut, "/api/quotes/missing/status", token,
		map[string]any{"status": "sent"}), fiber.StatusNotFound)
}

func TestQuoteDocumentRendersHTML(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "biller")

	quote := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/quotes/", token, quoteBody()), fiber.StatusCreated)
	quoteID := quote["id"].(string)
	number := quote["quote_number"].(string)

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/quotes/"+quoteID+"/document", token, nil), -1)
	if err != nil {
		t.Fatalf("document request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	if contentType := response.Header.Get(fiber.HeaderContentType); !strings.Contains(contentType, "text/html") {
		t.Fatalf("expected html content type, got %s", contentType)
	}

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	html := string(raw)
	if !strings.Contains(html, number) || !strings.Contains(html, "ACME") || !strings.Contains(html, "3960.00") {
		t.Fatalf("document missing expected content: %s", html)
	}
}

func TestQuotesAreOwnerScoped(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	ownerToken, _ := registerTestUser(t, app, "owner")
	otherToken, _ := registerTestUser(t, app, "other")

	quote := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/quotes/", ownerToken, quoteBody()), fiber.StatusCreated)
	quoteID := quote["id"].(string)

	readAPIError(t, app, jsonRequest(t, http.MethodGet, "/api/quotes/"+quoteID+"/document", otherToken, nil), fiber.StatusNotFound)
	if quotes := doJSONList(t, app, jsonRequest(t, http.MethodGet, "/api/quotes/", otherToken, nil), fiber.StatusOK); len(quotes) != 0 {
		t.Fatalf("expected no quotes for other user, got %d", len(quotes))
	}
}

func TestCreateInvoiceValidatesQuoteProvenance(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "biller")

	body := quoteBody()
	body["quote_id"] = "no-such-quote"
	readAPIError(t, app, jsonRequest(t, http.MethodPost, "/api/invoices/", token, body), fiber.StatusBadRequest)

	quote := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/quotes/", token, quoteBody()), fiber.StatusCreated)
	body["quote_id"] = quote["id"].(string)
	invoice := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/invoices/", token, body), fiber.StatusCreated)

	if invoice["quote_id"] != quote["id"] {
		t.Fatalf("expected provenance to stick, got %v", invoice["quote_id"])
	}
	if !strings.HasPrefix(invoice["invoice_number"].(string), "FAC-") {
		t.Fatalf("expected FAC- prefixed number, got %v", invoice["invoice_number"])
	}
}

func TestInvoiceStatusTransitions(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "biller")

	invoice := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/invoices/", token, quoteBody()), fiber.StatusCreated)
	invoiceID := invoice["id"].(string)

	doJSON(t, app, jsonRequest(t, http.MethodPut, "/api/invoices/"+invoiceID+"/status", token,
		map[string]any{"status": "paid"}), fiber.StatusOK)
	readAPIError(t, app, jsonRequest(t, http.MethodPut, "/api/invoices/"+invoiceID+"/status", token,
		map[string]any{"status": "accepted"}), fiber.StatusBadRequest)
}
