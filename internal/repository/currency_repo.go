// internal/repository/currency_repo.go
package repository

import (
	"gorm.io/gorm"

	"github.com/mercata/catalog-api/internal/models"
)

type CurrencyRepository interface {
	FindAll() ([]models.Currency, error)
	FindByID(id uint) (*models.Currency, error)
	Create(currency *models.Currency) error
	Update(currency *models.Currency) error
	Delete(id uint) error
	// InUse reports whether any product or product price references the currency.
	InUse(id uint) (bool, error)
}

type currencyRepo struct {
	db *gorm.DB
}

func NewCurrencyRepo(db *gorm.DB) CurrencyRepository {
	return &currencyRepo{db}
}

func (r *currencyRepo) FindAll() ([]models.Currency, error) {
	var currencies []models.Currency
	err := r.db.Find(&currencies).Error
	return currencies, err
}

func (r *currencyRepo) FindByID(id uint) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.First(&currency, id).Error; err != nil {
		return nil, err
	}
	return &currency, nil
}

func (r *currencyRepo) Create(currency *models.Currency) error {
	return r.db.Create(currency).Error
}

func (r *currencyRepo) Update(currency *models.Currency) error {
	return r.db.Save(currency).Error
}

func (r *currencyRepo) Delete(id uint) error {
	return r.db.Delete(&models.Currency{}, id).Error
}

func (r *currencyRepo) InUse(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("currency_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	if err := r.db.Model(&models.ProductPrice{}).Where("currency_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
