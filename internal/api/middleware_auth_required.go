package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired rejects requests that do not carry a valid bearer token
// and loads the token's user into the request context.
func (handler *Handler) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return apiError(c, fiber.StatusUnauthorized, "missing bearer token")
		}

		uid, err := handler.parseToken(strings.TrimSpace(token))
		if err != nil {
			return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		user, found, err := handler.repos.Users.FindByUID(uid)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load user")
		}
		if !found {
			return apiError(c, fiber.StatusUnauthorized, "unknown user")
		}

		c.Locals(contextUserKey, user)
		return c.Next()
	}
}
