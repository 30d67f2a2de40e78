// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog entry denominated in one base currency. It owns its
// per-currency price overrides; deleting a product removes them too.
type Product struct {
	BaseModel
	Name              string          `json:"name" gorm:"size:255;not null"`
	Description       *string         `json:"description" gorm:"type:text"`
	Price             decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CurrencyID        uint            `json:"currency_id" gorm:"not null;index"`
	TaxCost           decimal.Decimal `json:"tax_cost" gorm:"type:decimal(10,2);not null;default:0"`
	ManufacturingCost decimal.Decimal `json:"manufacturing_cost" gorm:"type:decimal(10,2);not null;default:0"`

	// Relationships
	Currency Currency       `json:"currency,omitempty" gorm:"foreignKey:CurrencyID"`
	Prices   []ProductPrice `json:"prices" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string {
	return "products"
}
