// internal/models/currency.go
package models

// Currency is the reference data products and prices are denominated in.
type Currency struct {
	BaseModel
	Code   string `json:"code" gorm:"size:10;not null;index"`
	Name   string `json:"name" gorm:"size:100;not null"`
	Symbol string `json:"symbol" gorm:"size:10;not null"`
}

func (Currency) TableName() string {
	return "currencies"
}
