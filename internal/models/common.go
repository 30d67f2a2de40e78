// internal/models/common.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Price fields serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Base model with common fields
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
