package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/terraincognita07/fleemy/internal/models"
	"github.com/terraincognita07/fleemy/internal/services"
)

func (handler *Handler) applyEventPayload(event *models.PlanningEvent, input eventPayload) (string, bool) {
	description := sanitizeText(input.Description)
	if description == "" {
		return "description is required", false
	}
	if !models.IsWeekDay(input.Day) {
		return "unknown day", false
	}
	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.IsEventStatus(status) {
		return "unknown status", false
	}
	if input.HourlyRate < 0 {
		return "hourly rate cannot be negative", false
	}

	year, week := input.Year, input.Week
	if year == 0 || week == 0 {
		year, week = services.CurrentWeek(handler.now())
	}

	event.Description = description
	event.ClientID = sanitizeText(input.ClientID)
	event.ClientName = sanitizeText(input.ClientName)
	event.Day = input.Day
	event.StartTime = input.StartTime
	event.EndTime = input.EndTime
	event.Status = status
	event.HourlyRate = input.HourlyRate
	event.Year = year
	event.Week = week
	return "", true
}

func (handler *Handler) CreateEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var input eventPayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	event := models.PlanningEvent{
		EventID: uuid.NewString(),
		UID:     user.UID,
	}
	if message, ok := handler.applyEventPayload(&event, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Events.Create(&event); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create event")
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (handler *Handler) UpdateEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	event, found, err := handler.repos.Events.FindByEventID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load event")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "event not found")
	}

	var input eventPayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if message, ok := handler.applyEventPayload(&event, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Events.Save(&event); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update event")
	}
	return c.JSON(event)
}

func (handler *Handler) DeleteEvent(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	deleted, err := handler.repos.Events.DeleteByEventID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete event")
	}
	if deleted == 0 {
		return apiError(c, fiber.StatusNotFound, "event not found")
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

func (handler *Handler) DeleteWeekEvents(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	year, week, ok := parseWeekParams(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid year or week")
	}

	deleted, err := handler.repos.Events.DeleteWeek(user.UID, year, week)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete events")
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
