package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestEarningsEndpointAggregatesWeek(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "worker")

	doJSON(t, app, jsonRequest(t, http.MethodPut, "/api/auth/me", token,
		map[string]any{"hourly_rate": 40}), fiber.StatusOK)

	// 3 hours at an explicit 60/h, paid.
	paid := eventBody("monday", "09:00", "12:00", "paid")
	paid["hourly_rate"] = 60
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/planning/events", token, paid), fiber.StatusCreated)

	// 2 hours at the profile default, unpaid. Minutes are ignored.
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/planning/events", token,
		eventBody("tuesday", "09:30", "11:00", "unpaid")), fiber.StatusCreated)

	// Unparseable range falls back to one hour at the default rate.
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/planning/events", token,
		eventBody("wednesday", "whenever", "11:00", "pending")), fiber.StatusCreated)

	// Not worked is tracked but excluded from the total.
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/planning/events", token,
		eventBody("thursday", "09:00", "10:00", "not_worked")), fiber.StatusCreated)

	// A 2-hour task slot at 25/h, always counted as paid.
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/planning/tasks", token, map[string]any{
		"name":  "Maintenance",
		"price": 25,
		"year":  2025,
		"week":  10,
		"time_slots": []map[string]any{
			{"day": "friday", "start": "10:00", "end": "12:00"},
		},
	}), fiber.StatusCreated)

	summary := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/planning/earnings/2025/10", token, nil), fiber.StatusOK)

	if summary["paid"] != 230.0 {
		t.Fatalf("expected paid 230 (180 event + 50 task), got %v", summary["paid"])
	}
	if summary["unpaid"] != 80.0 {
		t.Fatalf("expected unpaid 80, got %v", summary["unpaid"])
	}
	if summary["pending"] != 40.0 {
		t.Fatalf("expected pending 40 (one-hour fallback), got %v", summary["pending"])
	}
	if summary["not_worked"] != 40.0 {
		t.Fatalf("expected not_worked 40, got %v", summary["not_worked"])
	}
	if summary["total"] != 350.0 {
		t.Fatalf("expected total 350 without not_worked, got %v", summary["total"])
	}
}

func TestEarningsEndpointValidatesWeek(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "worker")

	readAPIError(t, app, jsonRequest(t, http.MethodGet, "/api/planning/earnings/2025/54", token, nil), fiber.StatusBadRequest)
	readAPIError(t, app, jsonRequest(t, http.MethodGet, "/api/planning/earnings/banana/10", token, nil), fiber.StatusBadRequest)
}
