package db

import (
	"errors"

	"github.com/terraincognita07/fleemy/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	database *gorm.DB
}

func NewEventRepository(database *gorm.DB) *EventRepository {
	return &EventRepository{database: database}
}

// ListByOwnersWeek fetches events for every uid in scope within one ISO week.
func (repo *EventRepository) ListByOwnersWeek(uids []string, year int, week int) ([]models.PlanningEvent, error) {
	events := make([]models.PlanningEvent, 0)
	if len(uids) == 0 {
		return events, nil
	}
	if err := repo.database.
		Where("uid IN ? AND year = ? AND week = ?", uids, year, week).
		Order("created_at ASC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *EventRepository) FindByEventID(eventID string, ownerUID string) (models.PlanningEvent, bool, error) {
	var event models.PlanningEvent
	err := repo.database.Where("event_id = ? AND uid = ?", eventID, ownerUID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PlanningEvent{}, false, nil
	}
	if err != nil {
		return models.PlanningEvent{}, false, err
	}
	return event, true, nil
}

func (repo *EventRepository) Create(event *models.PlanningEvent) error {
	return repo.database.Create(event).Error
}

func (repo *EventRepository) Save(event *models.PlanningEvent) error {
	return repo.database.Save(event).Error
}

func (repo *EventRepository) DeleteByEventID(eventID string, ownerUID string) (int64, error) {
	result := repo.database.Where("event_id = ? AND uid = ?", eventID, ownerUID).Delete(&models.PlanningEvent{})
	return result.RowsAffected, result.Error
}

// DeleteWeek removes every event the owner scheduled in the given week.
func (repo *EventRepository) DeleteWeek(ownerUID string, year int, week int) (int64, error) {
	result := repo.database.
		Where("uid = ? AND year = ? AND week = ?", ownerUID, year, week).
		Delete(&models.PlanningEvent{})
	return result.RowsAffected, result.Error
}
