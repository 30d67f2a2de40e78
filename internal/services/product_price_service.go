// internal/services/product_price_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mercata/catalog-api/internal/models"
	"github.com/mercata/catalog-api/internal/repository"
)

type ProductPriceService struct {
	priceRepo    repository.ProductPriceRepository
	productRepo  repository.ProductRepository
	currencyRepo repository.CurrencyRepository
}

type CreateProductPriceRequest struct {
	CurrencyID uint             `json:"currency_id" validate:"required"`
	Price      *decimal.Decimal `json:"price" validate:"omitempty,min=0"`
}

func NewProductPriceService(priceRepo repository.ProductPriceRepository, productRepo repository.ProductRepository, currencyRepo repository.CurrencyRepository) *ProductPriceService {
	return &ProductPriceService{
		priceRepo:    priceRepo,
		productRepo:  productRepo,
		currencyRepo: currencyRepo,
	}
}

func (s *ProductPriceService) ListPrices(productID uint) ([]models.ProductPrice, error) {
	if err := s.checkProductExists(productID); err != nil {
		return nil, err
	}

	prices, err := s.priceRepo.FindByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	if prices == nil {
		prices = []models.ProductPrice{}
	}
	return prices, nil
}

// CreatePrice rejects a second price for a currency the product is already
// priced in. The read-then-write check produces the friendly message on the
// common path; the unique index on (product_id, currency_id) catches the
// concurrent racer and is reported as the same conflict.
func (s *ProductPriceService) CreatePrice(productID uint, req *CreateProductPriceRequest) (*models.ProductPrice, error) {
	if err := s.checkProductExists(productID); err != nil {
		return nil, err
	}
	if req.Price == nil {
		return nil, ErrPriceRequired
	}

	if _, err := s.currencyRepo.FindByID(req.CurrencyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCurrency
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	_, err := s.priceRepo.FindByProductAndCurrency(productID, req.CurrencyID)
	if err == nil {
		return nil, ErrPriceExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	price := &models.ProductPrice{
		ProductID:  productID,
		CurrencyID: req.CurrencyID,
		Price:      *req.Price,
	}

	if err := s.priceRepo.Create(price); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPriceExists
		}
		return nil, fmt.Errorf("failed to create price: %w", err)
	}
	return price, nil
}

func (s *ProductPriceService) checkProductExists(productID uint) error {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}
	return nil
}
