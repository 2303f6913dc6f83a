package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/terraincognita07/fleemy/internal/models"
)

func applyTodoPayload(todo *models.Todo, input todoPayload) (string, bool) {
	title := sanitizeText(input.Title)
	if title == "" {
		return "title is required", false
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}
	if !models.IsTodoPriority(priority) {
		return "unknown priority", false
	}

	todo.Title = title
	todo.Description = sanitizeText(input.Description)
	todo.Priority = priority
	todo.DueDate = input.DueDate
	return "", true
}

func (handler *Handler) ListTodos(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	todos, err := handler.repos.Todos.ListByOwner(user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load todos")
	}
	return c.JSON(todos)
}

func (handler *Handler) CreateTodo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var input todoPayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	todo := models.Todo{
		TodoID: uuid.NewString(),
		UID:    user.UID,
	}
	if message, ok := applyTodoPayload(&todo, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Todos.Create(&todo); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create todo")
	}
	return c.Status(fiber.StatusCreated).JSON(todo)
}

func (handler *Handler) UpdateTodo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	todo, found, err := handler.repos.Todos.FindByTodoID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load todo")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "todo not found")
	}

	var input todoPayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if message, ok := applyTodoPayload(&todo, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Todos.Save(&todo); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update todo")
	}
	return c.JSON(todo)
}

func (handler *Handler) ToggleTodo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	todo, found, err := handler.repos.Todos.FindByTodoID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load todo")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "todo not found")
	}

	todo.Completed = !todo.Completed
	if err := handler.repos.Todos.Save(&todo); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update todo")
	}
	return c.JSON(todo)
}

func (handler *Handler) DeleteTodo(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	deleted, err := handler.repos.Todos.DeleteByTodoID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete todo")
	}
	if deleted == 0 {
		return apiError(c, fiber.StatusNotFound, "todo not found")
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
