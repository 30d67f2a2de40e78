// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mercata/catalog-api/internal/models"
	"github.com/mercata/catalog-api/internal/repository"
)

type ProductService struct {
	productRepo  repository.ProductRepository
	currencyRepo repository.CurrencyRepository
}

// ProductPriceInput is one entry of an additional_prices payload.
type ProductPriceInput struct {
	CurrencyID uint             `json:"currency_id" validate:"required"`
	Price      *decimal.Decimal `json:"price" validate:"omitempty,min=0"`
}

type CreateProductRequest struct {
	Name              string              `json:"name" validate:"required,max=255"`
	Description       *string             `json:"description" validate:"required"`
	Price             *decimal.Decimal    `json:"price" validate:"omitempty,min=0"`
	CurrencyID        uint                `json:"currency_id" validate:"required"`
	TaxCost           *decimal.Decimal    `json:"tax_cost" validate:"omitempty,min=0"`
	ManufacturingCost *decimal.Decimal    `json:"manufacturing_cost" validate:"omitempty,min=0"`
	AdditionalPrices  []ProductPriceInput `json:"additional_prices" validate:"omitempty,dive"`
}

// UpdateProductRequest uses pointers so an absent field leaves the column
// untouched. AdditionalPrices must distinguish "key not sent" (nil, keep
// existing rows) from "key sent as []" (replace with nothing), and
// Description additionally distinguishes an explicit null (clear the
// column) from an absent key.
type UpdateProductRequest struct {
	Name              *string              `json:"name" validate:"omitempty,max=255"`
	Description       NullableString       `json:"description"`
	Price             *decimal.Decimal     `json:"price" validate:"omitempty,min=0"`
	CurrencyID        *uint                `json:"currency_id"`
	TaxCost           *decimal.Decimal     `json:"tax_cost" validate:"omitempty,min=0"`
	ManufacturingCost *decimal.Decimal     `json:"manufacturing_cost" validate:"omitempty,min=0"`
	AdditionalPrices  *[]ProductPriceInput `json:"additional_prices" validate:"omitempty,dive"`
}

func NewProductService(productRepo repository.ProductRepository, currencyRepo repository.CurrencyRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		currencyRepo: currencyRepo,
	}
}

func (s *ProductService) ListProducts() ([]models.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	for i := range products {
		normalizeProduct(&products[i])
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if req.Price == nil {
		return nil, ErrPriceRequired
	}
	if err := s.checkCurrencyExists(req.CurrencyID); err != nil {
		return nil, err
	}

	prices, err := s.buildPriceRows(req.AdditionalPrices)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CurrencyID:  req.CurrencyID,
		Prices:      prices,
	}
	if req.TaxCost != nil {
		product.TaxCost = *req.TaxCost
	}
	if req.ManufacturingCost != nil {
		product.ManufacturingCost = *req.ManufacturingCost
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return s.GetProduct(product.ID)
}

func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return normalizeProduct(product), nil
}

func (s *ProductService) UpdateProduct(id uint, req *UpdateProductRequest) (*models.Product, error) {
	if _, err := s.GetProduct(id); err != nil {
		return nil, err
	}

	if req.CurrencyID != nil {
		if err := s.checkCurrencyExists(*req.CurrencyID); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description.Set {
		// An explicit null clears the column.
		updates["description"] = req.Description.Value
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.CurrencyID != nil {
		updates["currency_id"] = *req.CurrencyID
	}
	if req.TaxCost != nil {
		updates["tax_cost"] = *req.TaxCost
	}
	if req.ManufacturingCost != nil {
		updates["manufacturing_cost"] = *req.ManufacturingCost
	}

	var prices []models.ProductPrice
	replacePrices := req.AdditionalPrices != nil
	if replacePrices {
		var err error
		prices, err = s.buildPriceRows(*req.AdditionalPrices)
		if err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Update(id, updates, prices, replacePrices); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return s.GetProduct(id)
}

func (s *ProductService) DeleteProduct(id uint) error {
	if _, err := s.GetProduct(id); err != nil {
		return err
	}

	if err := s.productRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// buildPriceRows validates a bulk price payload and converts it to rows.
// Every referenced currency must exist and each currency may appear once;
// the standalone price endpoint enforces the same invariant, and the bulk
// paths must not silently diverge from it.
func (s *ProductService) buildPriceRows(inputs []ProductPriceInput) ([]models.ProductPrice, error) {
	rows := make([]models.ProductPrice, 0, len(inputs))
	seen := make(map[uint]bool, len(inputs))

	for _, input := range inputs {
		if input.Price == nil {
			return nil, ErrPriceRequired
		}
		if seen[input.CurrencyID] {
			return nil, ErrDuplicatePriceCurrency
		}
		seen[input.CurrencyID] = true

		if err := s.checkCurrencyExists(input.CurrencyID); err != nil {
			return nil, err
		}

		rows = append(rows, models.ProductPrice{
			CurrencyID: input.CurrencyID,
			Price:      *input.Price,
		})
	}
	return rows, nil
}

func (s *ProductService) checkCurrencyExists(id uint) error {
	if _, err := s.currencyRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCurrency
		}
		return fmt.Errorf("database error: %w", err)
	}
	return nil
}

// normalizeProduct keeps the prices list serializable as [] rather than null.
func normalizeProduct(p *models.Product) *models.Product {
	if p.Prices == nil {
		p.Prices = []models.ProductPrice{}
	}
	return p
}
