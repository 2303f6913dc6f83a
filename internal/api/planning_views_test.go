package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestWeekViewShowsOnlyCallerWithoutTeam(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	aliceToken, _ := registerTestUser(t, app, "alice")
	bobToken, _ := registerTestUser(t, app, "bob")

	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/planning/events", aliceToken,
		eventBody("monday", "09:00", "12:00", "paid")), fiber.StatusCreated)
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/planning/events", bobToken,
		eventBody("monday", "13:00", "15:00", "paid")), fiber.StatusCreated)

	view := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/planning/week/2025/10", aliceToken, nil), fiber.StatusOK)
	events := view["events"].([]any)
	if len(events) != 1 {
		t.Fatalf("expected only alice's event, got %d", len(events))
	}
}

func TestWeekViewWithTeamMergesMembers(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	aliceToken, _ := registerTestUser(t, app, "alice")
	bobToken, bobUID := registerTestUser(t, app, "bob")

	team := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/teams/", aliceToken,
		map[string]any{"name": "Studio"}), fiber.StatusCreated)
	teamID := team["team_id"].(string)

	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/teams/"+teamID+"/members", aliceToken,
		map[string]any{"uid": bobUID}), fiber.StatusOK)

	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/planning/events", aliceToken,
		eventBody("monday", "09:00", "12:00", "paid")), fiber.StatusCreated)
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/planning/events", bobToken,
		eventBody("tuesday", "13:00", "15:00", "paid")), fiber.StatusCreated)

	view := doJSON(t, app, jsonRequest(t, http.MethodGet,
		"/api/planning/week/2025/10?team_id="+teamID, bobToken, nil), fiber.StatusOK)
	events := view["events"].([]any)
	if len(events) != 2 {
		t.Fatalf("expected both members' events, got %d", len(events))
	}
}

func TestWeekViewRejectsOutsiderAndUnknownTeam(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	aliceToken, _ := registerTestUser(t, app, "alice")
	outsiderToken, _ := registerTestUser(t, app, "mallory")

	team := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/teams/", aliceToken,
		map[string]any{"name": "Studio"}), fiber.StatusCreated)
	teamID := team["team_id"].(string)

	readAPIError(t, app, jsonRequest(t, http.MethodGet,
		"/api/planning/week/2025/10?team_id="+teamID, outsiderToken, nil), fiber.StatusForbidden)
	readAPIError(t, app, jsonRequest(t, http.MethodGet,
		"/api/planning/week/2025/10?team_id=no-such-team", outsiderToken, nil), fiber.StatusForbidden)
}

func TestMonthViewValidatesMonthAndSpansWeeks(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	token, _ := registerTestUser(t, app, "planner")

	readAPIError(t, app, jsonRequest(t, http.MethodGet, "/api/planning/month/2025/13", token, nil), fiber.StatusBadRequest)
	readAPIError(t, app, jsonRequest(t, http.MethodGet, "/api/planning/month/2025/0", token, nil), fiber.StatusBadRequest)

	// December 2020 spills into ISO week 53 of 2020.
	event := eventBody("thursday", "09:00", "11:00", "paid")
	event["year"] = 2020
	event["week"] = 53
	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/planning/events", token, event), fiber.StatusCreated)

	view := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/planning/month/2020/12", token, nil), fiber.StatusOK)
	if events := view["events"].([]any); len(events) != 1 {
		t.Fatalf("expected the week 53 event in december, got %d", len(events))
	}
}

func TestTeamEndpoints(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	aliceToken, aliceUID := registerTestUser(t, app, "alice")
	bobToken, bobUID := registerTestUser(t, app, "bob")

	readAPIError(t, app, jsonRequest(t, http.MethodGet, "/api/teams/my", aliceToken, nil), fiber.StatusNotFound)

	team := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/teams/", aliceToken,
		map[string]any{"name": "Studio"}), fiber.StatusCreated)
	teamID := team["team_id"].(string)
	if team["created_by"] != aliceUID {
		t.Fatalf("expected creator %s, got %v", aliceUID, team["created_by"])
	}

	// Only the creator can add members.
	readAPIError(t, app, jsonRequest(t, http.MethodPost, "/api/teams/"+teamID+"/members", bobToken,
		map[string]any{"uid": bobUID}), fiber.StatusForbidden)
	readAPIError(t, app, jsonRequest(t, http.MethodPost, "/api/teams/"+teamID+"/members", aliceToken,
		map[string]any{"uid": "no-such-user"}), fiber.StatusNotFound)

	updated := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/teams/"+teamID+"/members", aliceToken,
		map[string]any{"uid": bobUID}), fiber.StatusOK)
	members := updated["members"].([]any)
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %v", members)
	}

	bobTeam := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/teams/my", bobToken, nil), fiber.StatusOK)
	if bobTeam["team_id"] != teamID {
		t.Fatalf("expected bob to see team %s, got %v", teamID, bobTeam["team_id"])
	}
}
