package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/terraincognita07/fleemy/internal/models"
)

func (handler *Handler) CreateTeam(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	var input teamPayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	name := sanitizeName(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "team name is required")
	}

	team := models.Team{
		TeamID:    uuid.NewString(),
		Name:      name,
		CreatedBy: user.UID,
		Members:   []string{user.UID},
	}
	if err := handler.repos.Teams.Create(&team); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create team")
	}
	if err := handler.repos.Users.UpdateByUID(user.UID, map[string]any{"team_id": team.TeamID}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to attach team")
	}

	return c.Status(fiber.StatusCreated).JSON(team)
}

func (handler *Handler) MyTeam(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	team, found, err := handler.repos.Teams.FindForUser(user.UID, user.TeamID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load team")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no team")
	}
	if !team.HasMember(user.UID) {
		return apiError(c, fiber.StatusNotFound, "no team")
	}
	return c.JSON(team)
}

func (handler *Handler) AddTeamMember(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	teamID := c.Params("id")
	team, found, err := handler.repos.Teams.FindByTeamID(teamID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load team")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "team not found")
	}
	if team.CreatedBy != user.UID {
		return apiError(c, fiber.StatusForbidden, "only the team creator can add members")
	}

	var input teamMemberPayload
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	memberUID := sanitizeText(input.UID)
	if memberUID == "" {
		return apiError(c, fiber.StatusBadRequest, "member uid is required")
	}

	member, found, err := handler.repos.Users.FindByUID(memberUID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}

	if !team.HasMember(memberUID) {
		team.Members = append(team.Members, memberUID)
		if err := handler.repos.Teams.Save(&team); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update team")
		}
	}
	if member.TeamID != team.TeamID {
		if err := handler.repos.Users.UpdateByUID(memberUID, map[string]any{"team_id": team.TeamID}); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to attach team")
		}
	}

	return c.JSON(team)
}
