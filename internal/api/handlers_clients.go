package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/terraincognita07/fleemy/internal/models"
)

func (handler *Handler) ListClients(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	clients, err := handler.repos.Clients.ListByOwner(user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load clients")
	}
	return c.JSON(clients)
}

func applyClientPayload(client *models.Client, input clientPayload) (string, bool) {
	name := sanitizeName(input.Name)
	if name == "" {
		return "client name is required", false
	}
	client.Name = name
	client.Company = sanitizeText(input.Company)
	client.Email = normalizeEmail(input.Email)
	client.Phone = sanitizeText(input.Phone)
	client.Address = sanitizeText(input.Address)
	client.Notes = sanitizeText(input.Notes)
	return "", true
}

func (handler *Handler) CreateClient(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var input clientPayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	client := models.Client{
		ClientID: uuid.NewString(),
		UID:      user.UID,
	}
	if message, ok := applyClientPayload(&client, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Clients.Create(&client); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create client")
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (handler *Handler) UpdateClient(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	client, found, err := handler.repos.Clients.FindByClientID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load client")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	var input clientPayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if message, ok := applyClientPayload(&client, input); !ok {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repos.Clients.Save(&client); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update client")
	}
	return c.JSON(client)
}

func (handler *Handler) DeleteClient(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	deleted, err := handler.repos.Clients.DeleteByClientID(c.Params("id"), user.UID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete client")
	}
	if deleted == 0 {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
