package db

import (
	"errors"

	"github.com/terraincognita07/fleemy/internal/models"
	"gorm.io/gorm"
)

type QuoteRepository struct {
	database *gorm.DB
}

func NewQuoteRepository(database *gorm.DB) *QuoteRepository {
	return &QuoteRepository{database: database}
}

func (repo *QuoteRepository) ListByOwner(ownerUID string) ([]models.Quote, error) {
	quotes := make([]models.Quote, 0)
	if err := repo.database.
		Where("uid = ?", ownerUID).
		Order("created_at DESC, id DESC").
		Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (repo *QuoteRepository) FindByQuoteID(quoteID string, ownerUID string) (models.Quote, bool, error) {
	var quote models.Quote
	err := repo.database.Where("quote_id = ? AND uid = ?", quoteID, ownerUID).First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Quote{}, false, nil
	}
	if err != nil {
		return models.Quote{}, false, err
	}
	return quote, true, nil
}

func (repo *QuoteRepository) Create(quote *models.Quote) error {
	return repo.database.Create(quote).Error
}

func (repo *QuoteRepository) Save(quote *models.Quote) error {
	return repo.database.Save(quote).Error
}

func (repo *QuoteRepository) UpdateStatus(quoteID string, ownerUID string, status string) (int64, error) {
	result := repo.database.Model(&models.Quote{}).
		Where("quote_id = ? AND uid = ?", quoteID, ownerUID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (repo *QuoteRepository) CountByOwnerStatus(ownerUID string, status string) (int64, float64, error) {
	var count int64
	if err := repo.database.Model(&models.Quote{}).
		Where("uid = ? AND status = ?", ownerUID, status).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var value struct {
		Sum float64 `gorm:"column:sum"`
	}
	if err := repo.database.Model(&models.Quote{}).
		Select("COALESCE(SUM(total), 0) AS sum").
		Where("uid = ? AND status = ?", ownerUID, status).
		Scan(&value).Error; err != nil {
		return 0, 0, err
	}
	return count, value.Sum, nil
}
