package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/fleemy/internal/models"
	"github.com/terraincognita07/fleemy/internal/services"
)

func parseWeekParams(c *fiber.Ctx) (int, int, bool) {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 1 {
		return 0, 0, false
	}
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil || week < 1 || week > 53 {
		return 0, 0, false
	}
	return year, week, true
}

func (handler *Handler) resolveScope(c *fiber.Ctx, callerUID string) ([]string, error) {
	return services.ResolveScope(callerUID, c.Query("team_id"), handler.repos.Teams)
}

func (handler *Handler) GetWeekPlanning(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	year, week, ok := parseWeekParams(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid year or week")
	}

	scope, err := handler.resolveScope(c, user.UID)
	if errors.Is(err, services.ErrNotAuthorized) {
		return apiError(c, fiber.StatusForbidden, "not authorized")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to resolve team")
	}

	events, err := handler.repos.Events.ListByOwnersWeek(scope, year, week)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load events")
	}
	tasks, err := handler.repos.Tasks.ListByOwnersWeek(scope, year, week)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load tasks")
	}

	return c.JSON(fiber.Map{
		"year":   year,
		"week":   week,
		"events": events,
		"tasks":  tasks,
	})
}

func (handler *Handler) GetMonthPlanning(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid year")
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	weeks, err := services.WeeksInMonth(year, month)
	if errors.Is(err, services.ErrInvalidMonth) {
		return apiError(c, fiber.StatusBadRequest, "month must be between 1 and 12")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to map month")
	}

	scope, err := handler.resolveScope(c, user.UID)
	if errors.Is(err, services.ErrNotAuthorized) {
		return apiError(c, fiber.StatusForbidden, "not authorized")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to resolve team")
	}

	events := make([]models.PlanningEvent, 0)
	tasks := make([]models.WeeklyTask, 0)
	for _, ref := range weeks {
		weekEvents, err := handler.repos.Events.ListByOwnersWeek(scope, ref.Year, ref.Week)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load events")
		}
		weekTasks, err := handler.repos.Tasks.ListByOwnersWeek(scope, ref.Year, ref.Week)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load tasks")
		}
		events = append(events, weekEvents...)
		tasks = append(tasks, weekTasks...)
	}

	return c.JSON(fiber.Map{
		"year":   year,
		"month":  month,
		"weeks":  weeks,
		"events": events,
		"tasks":  tasks,
	})
}

func (handler *Handler) GetWeekEarnings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	year, week, ok := parseWeekParams(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid year or week")
	}

	summary, err := handler.weekEarnings(user, year, week)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute earnings")
	}
	return c.JSON(summary)
}

func (handler *Handler) weekEarnings(user models.User, year int, week int) (services.EarningsSummary, error) {
	events, err := handler.repos.Events.ListByOwnersWeek([]string{user.UID}, year, week)
	if err != nil {
		return services.EarningsSummary{}, err
	}
	tasks, err := handler.repos.Tasks.ListByOwnersWeek([]string{user.UID}, year, week)
	if err != nil {
		return services.EarningsSummary{}, err
	}
	return services.ComputeEarnings(events, tasks, user.HourlyRate), nil
}
