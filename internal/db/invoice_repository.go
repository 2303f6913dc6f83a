package db

import (
	"errors"

	"github.com/terraincognita07/fleemy/internal/models"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	database *gorm.DB
}

func NewInvoiceRepository(database *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{database: database}
}

func (repo *InvoiceRepository) ListByOwner(ownerUID string) ([]models.Invoice, error) {
	invoices := make([]models.Invoice, 0)
	if err := repo.database.
		Where("uid = ?", ownerUID).
		Order("created_at DESC, id DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (repo *InvoiceRepository) FindByInvoiceID(invoiceID string, ownerUID string) (models.Invoice, bool, error) {
	var invoice models.Invoice
	err := repo.database.Where("invoice_id = ? AND uid = ?", invoiceID, ownerUID).First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Invoice{}, false, nil
	}
	if err != nil {
		return models.Invoice{}, false, err
	}
	return invoice, true, nil
}

func (repo *InvoiceRepository) Create(invoice *models.Invoice) error {
	return repo.database.Create(invoice).Error
}

func (repo *InvoiceRepository) Save(invoice *models.Invoice) error {
	return repo.database.Save(invoice).Error
}

func (repo *InvoiceRepository) UpdateStatus(invoiceID string, ownerUID string, status string) (int64, error) {
	result := repo.database.Model(&models.Invoice{}).
		Where("invoice_id = ? AND uid = ?", invoiceID, ownerUID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (repo *InvoiceRepository) CountByOwnerStatus(ownerUID string, status string) (int64, float64, error) {
	return repo.CountByOwnerStatuses(ownerUID, []string{status})
}

func (repo *InvoiceRepository) CountByOwnerStatuses(ownerUID string, statuses []string) (int64, float64, error) {
	var count int64
	if err := repo.database.Model(&models.Invoice{}).
		Where("uid = ? AND status IN ?", ownerUID, statuses).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var value struct {
		Sum float64 `gorm:"column:sum"`
	}
	if err := repo.database.Model(&models.Invoice{}).
		Select("COALESCE(SUM(total), 0) AS sum").
		Where("uid = ? AND status IN ?", ownerUID, statuses).
		Scan(&value).Error; err != nil {
		return 0, 0, err
	}
	return count, value.Sum, nil
}
