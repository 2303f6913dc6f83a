package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/terraincognita07/fleemy/internal/models"
	"github.com/terraincognita07/fleemy/internal/services"
)

func (handler *Handler) applyTaskPayload(task *models.WeeklyTask, input taskPayload) (string, bool) {
	name := sanitizeName(input.Name)
	if name == "" {
		return "task name is required", false
	}
	if input.Price < 0 {
		return "price cannot be negative", false
	}

	slots := make([]models.TimeSlot, 0, len(input.TimeSlots))
	for _, slot := range input.TimeSlots {
		if !models.IsWeekDay(slot.Day) {
			return "unknown day in time slot", false
		}
		slots = append(slots, models.TimeSlot{Day: slot.Day, Start: slot.Start, End: slot.End})
	}

	year, week := input.Year, input.Week
	if year == 0 || week == 0 {
		year, week = services.CurrentWeek(handler.now())
	}

	task.Name = name
	task.Price = input.Price
	task.Color = input.Color
	task.Icon = input.Icon
	task.TimeSlots = slots
	task.Year = year
	task.Week = week
	return "", true
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var input taskPayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	task := models.WeeklyTask{
		TaskID: uuid.NewString(),
		UID:    user.UID,
	}
	if message, ok := handler.applyTaskPayload(&task, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Tasks.Create(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	task, found, err := handler.repos.Tasks.FindByTaskID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load task")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}

	var input taskPayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if message, ok := handler.applyTaskPayload(&task, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Tasks.Save(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update task")
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	deleted, err := handler.repos.Tasks.DeleteByTaskID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete task")
	}
	if deleted == 0 {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
