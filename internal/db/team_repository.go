package db

import (
	"errors"

	"github.com/terraincognita07/fleemy/internal/models"
	"gorm.io/gorm"
)

type TeamRepository struct {
	database *gorm.DB
}

func NewTeamRepository(database *gorm.DB) *TeamRepository {
	return &TeamRepository{database: database}
}

// FindByTeamID satisfies services.TeamReader.
func (repo *TeamRepository) FindByTeamID(teamID string) (models.Team, bool, error) {
	var team models.Team
	err := repo.database.Where("team_id = ?", teamID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Team{}, false, nil
	}
	if err != nil {
		return models.Team{}, false, err
	}
	return team, true, nil
}

// FindForUser returns the team the user created or belongs to.
func (repo *TeamRepository) FindForUser(uid string, teamID string) (models.Team, bool, error) {
	if teamID != "" {
		team, found, err := repo.FindByTeamID(teamID)
		if err != nil || found {
			return team, found, err
		}
	}

	var team models.Team
	err := repo.database.Where("created_by = ?", uid).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Team{}, false, nil
	}
	if err != nil {
		return models.Team{}, false, err
	}
	return team, true, nil
}

func (repo *TeamRepository) Create(team *models.Team) error {
	return repo.database.Create(team).Error
}

func (repo *TeamRepository) Save(team *models.Team) error {
	return repo.database.Save(team).Error
}
