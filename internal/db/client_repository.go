package db

import (
	"errors"

	"github.com/terraincognita07/fleemy/internal/models"
	"gorm.io/gorm"
)

type ClientRepository struct {
	database *gorm.DB
}

func NewClientRepository(database *gorm.DB) *ClientRepository {
	return &ClientRepository{database: database}
}

func (repo *ClientRepository) ListByOwner(ownerUID string) ([]models.Client, error) {
	clients := make([]models.Client, 0)
	if err := repo.database.
		Where("uid = ?", ownerUID).
		Order("created_at DESC, id DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (repo *ClientRepository) FindByClientID(clientID string, ownerUID string) (models.Client, bool, error) {
	var client models.Client
	err := repo.database.Where("client_id = ? AND uid = ?", clientID, ownerUID).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Client{}, false, nil
	}
	if err != nil {
		return models.Client{}, false, err
	}
	return client, true, nil
}

func (repo *ClientRepository) Create(client *models.Client) error {
	return repo.database.Create(client).Error
}

func (repo *ClientRepository) Save(client *models.Client) error {
	return repo.database.Save(client).Error
}

func (repo *ClientRepository) DeleteByClientID(clientID string, ownerUID string) (int64, error) {
	result := repo.database.Where("client_id = ? AND uid = ?", clientID, ownerUID).Delete(&models.Client{})
	return result.RowsAffected, result.Error
}

func (repo *ClientRepository) CountByOwner(ownerUID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Client{}).Where("uid = ?", ownerUID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
