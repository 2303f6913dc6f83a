package db

import (
	"errors"

	"github.com/terraincognita07/fleemy/internal/models"
	"gorm.io/gorm"
)

type TodoRepository struct {
	database *gorm.DB
}

func NewTodoRepository(database *gorm.DB) *TodoRepository {
	return &TodoRepository{database: database}
}

func (repo *TodoRepository) ListByOwner(ownerUID string) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)
	if err := repo.database.
		Where("uid = ?", ownerUID).
		Order("completed ASC, created_at DESC, id DESC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (repo *TodoRepository) FindByTodoID(todoID string, ownerUID string) (models.Todo, bool, error) {
	var todo models.Todo
	err := repo.database.Where("todo_id = ? AND uid = ?", todoID, ownerUID).First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Todo{}, false, nil
	}
	if err != nil {
		return models.Todo{}, false, err
	}
	return todo, true, nil
}

func (repo *TodoRepository) Create(todo *models.Todo) error {
	return repo.database.Create(todo).Error
}

func (repo *TodoRepository) Save(todo *models.Todo) error {
	return repo.database.Save(todo).Error
}

func (repo *TodoRepository) DeleteByTodoID(todoID string, ownerUID string) (int64, error) {
	result := repo.database.Where("todo_id = ? AND uid = ?", todoID, ownerUID).Delete(&models.Todo{})
	return result.RowsAffected, result.Error
}

func (repo *TodoRepository) CountOpenByOwner(ownerUID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Todo{}).
		Where("uid = ? AND completed = ?", ownerUID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
