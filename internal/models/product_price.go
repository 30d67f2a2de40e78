// internal/models/product_price.go
package models

import (
	"github.com/shopspring/decimal"
)

// ProductPrice is a product's price override in one currency. The composite
// unique index keeps at most one row per (product, currency) even when two
// requests race past the application-level existence check.
type ProductPrice struct {
	BaseModel
	ProductID  uint            `json:"product_id" gorm:"not null;uniqueIndex:idx_product_prices_product_currency"`
	CurrencyID uint            `json:"currency_id" gorm:"not null;uniqueIndex:idx_product_prices_product_currency"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`

	// Relationships
	Currency Currency `json:"currency,omitempty" gorm:"foreignKey:CurrencyID"`
}

func (ProductPrice) TableName() string {
	return "product_prices"
}
