package services

import (
	"errors"

	"github.com/terraincognita07/fleemy/internal/models"
)

// ErrNotAuthorized is returned for every team-scope violation,
// including lookups of team ids that do not exist, so callers cannot
// probe which teams exist.
var ErrNotAuthorized = errors.New("not authorized")

// TeamReader is the single external lookup the visibility resolver needs.
type TeamReader interface {
	FindByTeamID(teamID string) (models.Team, bool, error)
}

// ResolveScope returns the set of owner uids whose records the caller
// may read. Without a team id the scope is the caller alone. With a
// team id the caller must be the team's creator or a member; the scope
// is then every member plus the creator.
func ResolveScope(callerUID string, teamID string, teams TeamReader) ([]string, error) {
	if teamID == "" {
		return []string{callerUID}, nil
	}

	team, found, err := teams.FindByTeamID(teamID)
	if err != nil {
		return nil, err
	}
	if !found || !team.HasMember(callerUID) {
		return nil, ErrNotAuthorized
	}

	scope := make([]string, 0, len(team.Members)+1)
	seen := make(map[string]bool, len(team.Members)+1)
	for _, member := range team.Members {
		if member == "" || seen[member] {
			continue
		}
		seen[member] = true
		scope = append(scope, member)
	}
	if !seen[team.CreatedBy] && team.CreatedBy != "" {
		scope = append(scope, team.CreatedBy)
	}
	return scope, nil
}
