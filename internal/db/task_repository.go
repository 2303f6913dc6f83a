package db

import (
	"errors"

	"github.com/terraincognita07/fleemy/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) ListByOwnersWeek(uids []string, year int, week int) ([]models.WeeklyTask, error) {
	tasks := make([]models.WeeklyTask, 0)
	if len(uids) == 0 {
		return tasks, nil
	}
	if err := repo.database.
		Where("uid IN ? AND year = ? AND week = ?", uids, year, week).
		Order("created_at ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByTaskID(taskID string, ownerUID string) (models.WeeklyTask, bool, error) {
	var task models.WeeklyTask
	err := repo.database.Where("task_id = ? AND uid = ?", taskID, ownerUID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WeeklyTask{}, false, nil
	}
	if err != nil {
		return models.WeeklyTask{}, false, err
	}
	return task, true, nil
}

func (repo *TaskRepository) Create(task *models.WeeklyTask) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) Save(task *models.WeeklyTask) error {
	return repo.database.Save(task).Error
}

func (repo *TaskRepository) DeleteByTaskID(taskID string, ownerUID string) (int64, error) {
	result := repo.database.Where("task_id = ? AND uid = ?", taskID, ownerUID).Delete(&models.WeeklyTask{})
	return result.RowsAffected, result.Error
}
