// internal/repository/product_repo.go
package repository

import (
	"gorm.io/gorm"

	"github.com/mercata/catalog-api/internal/database"
	"github.com/mercata/catalog-api/internal/models"
)

type ProductRepository interface {
	FindAll() ([]models.Product, error)
	FindByID(id uint) (*models.Product, error)
	// Create persists the product together with any attached price rows in
	// one transaction.
	Create(product *models.Product) error
	// Update applies the column updates and, when replacePrices is set,
	// atomically swaps the product's price rows for the supplied set.
	Update(id uint, updates map[string]interface{}, prices []models.ProductPrice, replacePrices bool) error
	// Delete removes the product and its price rows in one transaction.
	Delete(id uint) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Preload("Currency").
		Preload("Prices.Currency").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Currency").
		Preload("Prices.Currency").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Create(product *models.Product) error {
	return database.WithTransaction(r.db, func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
}

func (r *productRepo) Update(id uint, updates map[string]interface{}, prices []models.ProductPrice, replacePrices bool) error {
	return database.WithTransaction(r.db, func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		if !replacePrices {
			return nil
		}

		// Full replace: drop every existing row, then insert the new set.
		// Running inside the transaction means a failed insert rolls the
		// delete back instead of leaving the product price-less.
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductPrice{}).Error; err != nil {
			return err
		}

		for i := range prices {
			prices[i].ProductID = id
		}
		if len(prices) > 0 {
			if err := tx.Create(&prices).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productRepo) Delete(id uint) error {
	return database.WithTransaction(r.db, func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductPrice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}
