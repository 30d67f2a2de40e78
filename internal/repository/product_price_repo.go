// internal/repository/product_price_repo.go
package repository

import (
	"gorm.io/gorm"

	"github.com/mercata/catalog-api/internal/models"
)

type ProductPriceRepository interface {
	FindByProduct(productID uint) ([]models.ProductPrice, error)
	FindByProductAndCurrency(productID, currencyID uint) (*models.ProductPrice, error)
	Create(price *models.ProductPrice) error
}

type productPriceRepo struct {
	db *gorm.DB
}

func NewProductPriceRepo(db *gorm.DB) ProductPriceRepository {
	return &productPriceRepo{db}
}

func (r *productPriceRepo) FindByProduct(productID uint) ([]models.ProductPrice, error) {
	var prices []models.ProductPrice
	err := r.db.
		Preload("Currency").
		Where("product_id = ?", productID).
		Find(&prices).Error
	return prices, err
}

func (r *productPriceRepo) FindByProductAndCurrency(productID, currencyID uint) (*models.ProductPrice, error) {
	var price models.ProductPrice
	err := r.db.
		Where("product_id = ? AND currency_id = ?", productID, currencyID).
		First(&price).Error
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func (r *productPriceRepo) Create(price *models.ProductPrice) error {
	if err := r.db.Create(price).Error; err != nil {
		return err
	}
	return r.db.Preload("Currency").First(price, price.ID).Error
}
