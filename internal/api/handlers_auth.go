package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/terraincognita07/fleemy/internal/models"
)

const minPasswordLength = 8

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	name := sanitizeName(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" {
		return apiError(c, fiber.StatusBadRequest, "name and email are required")
	}
	if len(input.Password) < minPasswordLength {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters")
	}

	_, taken, err := handler.repos.Users.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check email")
	}
	if taken {
		return apiError(c, fiber.StatusConflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		UID:          uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		HourlyRate:   handler.defaultHourlyRate,
	}
	if err := handler.repos.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}

	token, err := handler.buildToken(user.UID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, found, err := handler.repos.Users.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to look up user")
	}
	if !found {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := handler.buildToken(user.UID, handler.now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(user)
}

func (handler *Handler) UpdateMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var input profileUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]any{}
	if input.Name != nil {
		name := sanitizeName(*input.Name)
		if name == "" {
			return apiError(c, fiber.StatusBadRequest, "name cannot be empty")
		}
		updates["name"] = name
		user.Name = name
	}
	if input.HourlyRate != nil {
		if *input.HourlyRate <= 0 {
			return apiError(c, fiber.StatusBadRequest, "hourly rate must be positive")
		}
		updates["hourly_rate"] = *input.HourlyRate
		user.HourlyRate = *input.HourlyRate
	}
	if len(updates) == 0 {
		return c.JSON(user)
	}

	if err := handler.repos.Users.UpdateByUID(user.UID, updates); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}
	return c.JSON(user)
}
